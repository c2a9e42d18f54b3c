package errors

import "fmt"

// ErrValidation is returned when request input is missing or malformed
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrNotFound is returned when the upstream lookup resolves to nothing
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUpstream is returned when the Storefront API call fails: network error,
// non-2xx status, a GraphQL errors array, or a 2xx payload missing the
// expected data field. Status is 0 when the request never got a response.
type ErrUpstream struct {
	Status  int
	Body    string
	Message string
}

func (e *ErrUpstream) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("storefront API error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("storefront API error: %s", e.Message)
}
