package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/config"
	"github.com/JuanQuenga/Storefront/internal/domain"
	"github.com/JuanQuenga/Storefront/internal/shopify"
	"github.com/JuanQuenga/Storefront/internal/toolcall"
	apperrors "github.com/JuanQuenga/Storefront/pkg/errors"
)

// Catalog is the read surface the HTTP handlers depend on.
type Catalog interface {
	SearchProducts(ctx context.Context, args toolcall.SearchArgs) (*domain.SearchResult, error)
	GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error)
	CheckInventory(ctx context.Context, variantIDs []string) (*domain.InventoryReport, error)
	ListCollections(ctx context.Context, limit int, cursor string, includeProducts bool) (*domain.CollectionList, error)
}

type catalogService struct {
	client *shopify.Client
	logger *zap.Logger
}

// NewCatalogService creates the catalog service backed by the Storefront API.
func NewCatalogService(cfg config.ShopifyConfig, logger *zap.Logger) Catalog {
	return &catalogService{
		client: shopify.NewClient(cfg, logger),
		logger: logger,
	}
}

// NewCatalogServiceWithClient wires an existing client, used by tests.
func NewCatalogServiceWithClient(client *shopify.Client, logger *zap.Logger) Catalog {
	return &catalogService{client: client, logger: logger}
}

// moneyNode and connection fragments shared by the decode structs.
type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type pageInfoNode struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type imageEdges struct {
	Edges []struct {
		Node struct {
			URL     string `json:"url"`
			AltText string `json:"altText"`
		} `json:"node"`
	} `json:"edges"`
}

type variantEdges struct {
	Edges []struct {
		Node variantNode `json:"node"`
	} `json:"edges"`
}

type variantNode struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	SKU               string    `json:"sku"`
	AvailableForSale  bool      `json:"availableForSale"`
	QuantityAvailable int       `json:"quantityAvailable"`
	Price             moneyNode `json:"price"`
}

func (v variantNode) toDomain() domain.Variant {
	return domain.Variant{
		ID:                v.ID,
		Title:             v.Title,
		SKU:               v.SKU,
		Price:             domain.Money{Amount: v.Price.Amount, CurrencyCode: v.Price.CurrencyCode},
		AvailableForSale:  v.AvailableForSale,
		QuantityAvailable: v.QuantityAvailable,
	}
}

func (s *catalogService) SearchProducts(ctx context.Context, args toolcall.SearchArgs) (*domain.SearchResult, error) {
	variables := map[string]interface{}{
		"query": args.Query,
		"first": args.Limit,
	}
	if args.Cursor != "" {
		variables["after"] = args.Cursor
	}

	resp, err := s.client.Execute(ctx, shopify.ProductSearchQuery, variables)
	if err != nil {
		return nil, err
	}

	var result struct {
		Products struct {
			PageInfo pageInfoNode `json:"pageInfo"`
			Edges    []struct {
				Node struct {
					ID               string `json:"id"`
					Title            string `json:"title"`
					Handle           string `json:"handle"`
					Description      string `json:"description"`
					AvailableForSale bool   `json:"availableForSale"`
					PriceRange       struct {
						MinVariantPrice moneyNode `json:"minVariantPrice"`
					} `json:"priceRange"`
					Images   imageEdges   `json:"images"`
					Variants variantEdges `json:"variants"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, &apperrors.ErrUpstream{Message: fmt.Sprintf("failed to parse product search response: %v", err)}
	}

	products := make([]domain.Product, 0, len(result.Products.Edges))
	for _, edge := range result.Products.Edges {
		node := edge.Node
		p := domain.Product{
			ID:               node.ID,
			Title:            node.Title,
			Handle:           node.Handle,
			Description:      node.Description,
			AvailableForSale: node.AvailableForSale,
			Price: domain.Money{
				Amount:       node.PriceRange.MinVariantPrice.Amount,
				CurrencyCode: node.PriceRange.MinVariantPrice.CurrencyCode,
			},
		}
		if len(node.Images.Edges) > 0 {
			img := node.Images.Edges[0].Node
			p.Image = &domain.Image{URL: img.URL, AltText: img.AltText}
		}
		for _, v := range node.Variants.Edges {
			p.Variants = append(p.Variants, v.Node.toDomain())
		}
		products = append(products, p)
	}

	s.logger.Debug("Product search completed",
		zap.String("query", args.Query),
		zap.Int("limit", args.Limit),
		zap.Int("returned", len(products)),
	)

	return &domain.SearchResult{
		Products: products,
		Pagination: domain.Pagination{
			HasNextPage: result.Products.PageInfo.HasNextPage,
			EndCursor:   result.Products.PageInfo.EndCursor,
			TotalCount:  len(products),
		},
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*domain.ProductDetail, error) {
	gid := shopify.NormalizeGID("Product", id)
	resp, err := s.client.Execute(ctx, shopify.ProductByIDQuery, map[string]interface{}{"id": gid})
	if err != nil {
		return nil, err
	}

	var result struct {
		Node *struct {
			ID               string   `json:"id"`
			Title            string   `json:"title"`
			Handle           string   `json:"handle"`
			Description      string   `json:"description"`
			DescriptionHTML  string   `json:"descriptionHtml"`
			Vendor           string   `json:"vendor"`
			ProductType      string   `json:"productType"`
			Tags             []string `json:"tags"`
			AvailableForSale bool     `json:"availableForSale"`
			PriceRange       struct {
				MinVariantPrice moneyNode `json:"minVariantPrice"`
				MaxVariantPrice moneyNode `json:"maxVariantPrice"`
			} `json:"priceRange"`
			Images      imageEdges   `json:"images"`
			Variants    variantEdges `json:"variants"`
			Collections struct {
				Edges []struct {
					Node struct {
						ID     string `json:"id"`
						Title  string `json:"title"`
						Handle string `json:"handle"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"collections"`
		} `json:"node"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, &apperrors.ErrUpstream{Message: fmt.Sprintf("failed to parse product response: %v", err)}
	}

	// Upstream answers null for unknown or non-product GIDs
	if result.Node == nil || result.Node.ID == "" {
		return nil, &apperrors.ErrNotFound{Resource: "Product", ID: id}
	}

	node := result.Node
	detail := &domain.ProductDetail{
		ID:               node.ID,
		Title:            node.Title,
		Handle:           node.Handle,
		Description:      node.Description,
		DescriptionHTML:  node.DescriptionHTML,
		Vendor:           node.Vendor,
		ProductType:      node.ProductType,
		Tags:             node.Tags,
		AvailableForSale: node.AvailableForSale,
		MinPrice: domain.Money{
			Amount:       node.PriceRange.MinVariantPrice.Amount,
			CurrencyCode: node.PriceRange.MinVariantPrice.CurrencyCode,
		},
		MaxPrice: domain.Money{
			Amount:       node.PriceRange.MaxVariantPrice.Amount,
			CurrencyCode: node.PriceRange.MaxVariantPrice.CurrencyCode,
		},
		Images:   []domain.Image{},
		Variants: []domain.Variant{},
	}
	for _, img := range node.Images.Edges {
		detail.Images = append(detail.Images, domain.Image{URL: img.Node.URL, AltText: img.Node.AltText})
	}
	for _, v := range node.Variants.Edges {
		detail.Variants = append(detail.Variants, v.Node.toDomain())
	}
	for _, coll := range node.Collections.Edges {
		detail.Collections = append(detail.Collections, domain.CollectionRef{
			ID:     coll.Node.ID,
			Title:  coll.Node.Title,
			Handle: coll.Node.Handle,
		})
	}
	return detail, nil
}

func (s *catalogService) CheckInventory(ctx context.Context, variantIDs []string) (*domain.InventoryReport, error) {
	gids := shopify.NormalizeVariantGIDs(variantIDs)
	resp, err := s.client.Execute(ctx, shopify.VariantsByIDQuery, map[string]interface{}{"ids": gids})
	if err != nil {
		return nil, err
	}

	var result struct {
		Nodes []*struct {
			ID                string    `json:"id"`
			Title             string    `json:"title"`
			SKU               string    `json:"sku"`
			AvailableForSale  bool      `json:"availableForSale"`
			QuantityAvailable int       `json:"quantityAvailable"`
			Price             moneyNode `json:"price"`
			Product           struct {
				ID     string `json:"id"`
				Title  string `json:"title"`
				Handle string `json:"handle"`
			} `json:"product"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, &apperrors.ErrUpstream{Message: fmt.Sprintf("failed to parse inventory response: %v", err)}
	}

	report := &domain.InventoryReport{Inventory: []domain.InventoryItem{}}
	for i, node := range result.Nodes {
		if node == nil || node.ID == "" {
			// Unknown GID: report it out of stock rather than dropping it
			requested := ""
			if i < len(gids) {
				requested = gids[i]
			}
			report.Inventory = append(report.Inventory, domain.InventoryItem{
				VariantID: requested,
				Status:    domain.StockOutOfStock,
			})
			report.Summary.OutOfStock++
			continue
		}
		status := domain.StockStatus(node.AvailableForSale, node.QuantityAvailable)
		report.Inventory = append(report.Inventory, domain.InventoryItem{
			VariantID:         node.ID,
			Title:             node.Title,
			SKU:               node.SKU,
			ProductID:         node.Product.ID,
			ProductTitle:      node.Product.Title,
			Price:             domain.Money{Amount: node.Price.Amount, CurrencyCode: node.Price.CurrencyCode},
			AvailableForSale:  node.AvailableForSale,
			QuantityAvailable: node.QuantityAvailable,
			Status:            status,
		})
		switch status {
		case domain.StockInStock:
			report.Summary.InStock++
		case domain.StockLowStock:
			report.Summary.LowStock++
		case domain.StockOutOfStock:
			report.Summary.OutOfStock++
		}
	}
	report.Summary.TotalVariants = len(report.Inventory)
	return report, nil
}

func (s *catalogService) ListCollections(ctx context.Context, limit int, cursor string, includeProducts bool) (*domain.CollectionList, error) {
	query := shopify.CollectionsQuery
	if includeProducts {
		query = shopify.CollectionsWithProductsQuery
	}
	variables := map[string]interface{}{"first": limit}
	if cursor != "" {
		variables["after"] = cursor
	}

	resp, err := s.client.Execute(ctx, query, variables)
	if err != nil {
		return nil, err
	}

	var result struct {
		Collections struct {
			PageInfo pageInfoNode `json:"pageInfo"`
			Edges    []struct {
				Node struct {
					ID          string `json:"id"`
					Title       string `json:"title"`
					Handle      string `json:"handle"`
					Description string `json:"description"`
					Products    struct {
						Edges []struct {
							Node struct {
								ID     string `json:"id"`
								Title  string `json:"title"`
								Handle string `json:"handle"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"products"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"collections"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, &apperrors.ErrUpstream{Message: fmt.Sprintf("failed to parse collections response: %v", err)}
	}

	collections := make([]domain.Collection, 0, len(result.Collections.Edges))
	for _, edge := range result.Collections.Edges {
		node := edge.Node
		coll := domain.Collection{
			ID:          node.ID,
			Title:       node.Title,
			Handle:      node.Handle,
			Description: node.Description,
		}
		for _, p := range node.Products.Edges {
			coll.Products = append(coll.Products, domain.ProductRef{
				ID:     p.Node.ID,
				Title:  p.Node.Title,
				Handle: p.Node.Handle,
			})
		}
		collections = append(collections, coll)
	}

	return &domain.CollectionList{
		Collections: collections,
		Pagination: domain.Pagination{
			HasNextPage: result.Collections.PageInfo.HasNextPage,
			EndCursor:   result.Collections.PageInfo.EndCursor,
			TotalCount:  len(collections),
		},
	}, nil
}
