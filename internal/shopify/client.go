package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/config"
	apperrors "github.com/JuanQuenga/Storefront/pkg/errors"
)

// upstreamTimeout bounds the single attempt against the Storefront API.
// There is no retry; expiry surfaces as an ErrUpstream.
const upstreamTimeout = 10 * time.Second

type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the tokenless Storefront GraphQL API.
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	endpoint := fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion)
	return NewClientWithEndpoint(endpoint, logger)
}

// NewClientWithEndpoint creates a client pointed at an explicit GraphQL URL.
func NewClientWithEndpoint(endpoint string, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: upstreamTimeout,
		},
		logger: logger,
	}
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a GraphQL response
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// Execute runs a single GraphQL query against the Storefront endpoint.
// Every failure mode maps to *errors.ErrUpstream; there is exactly one
// attempt per call and no result is memoized.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	reqBody := GraphQLRequest{
		Query:     query,
		Variables: variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Storefront API returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.Int("body_bytes", len(body)),
		)
		return nil, &apperrors.ErrUpstream{
			Status:  resp.StatusCode,
			Body:    string(body),
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var graphQLResp GraphQLResponse
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, &apperrors.ErrUpstream{
			Status:  resp.StatusCode,
			Body:    string(body),
			Message: fmt.Sprintf("failed to unmarshal response: %v", err),
		}
	}

	if len(graphQLResp.Errors) > 0 {
		errorMessages := make([]string, len(graphQLResp.Errors))
		for i, gqlErr := range graphQLResp.Errors {
			errorMessages[i] = gqlErr.Message
		}
		return nil, &apperrors.ErrUpstream{
			Status:  resp.StatusCode,
			Body:    string(body),
			Message: fmt.Sprintf("graphQL errors: %s", strings.Join(errorMessages, "; ")),
		}
	}

	if len(graphQLResp.Data) == 0 || string(graphQLResp.Data) == "null" {
		return nil, &apperrors.ErrUpstream{
			Status:  resp.StatusCode,
			Body:    string(body),
			Message: "response has no data field",
		}
	}

	return &graphQLResp, nil
}
