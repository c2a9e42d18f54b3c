package service

import (
	"fmt"
	"strings"

	"github.com/JuanQuenga/Storefront/internal/domain"
)

// SummarizeSearch renders a search result as a customer-friendly multi-line
// text block, used for the text/plain search variant and for tool-call
// results on the GET path.
func SummarizeSearch(result *domain.SearchResult, query string) string {
	if len(result.Products) == 0 {
		if query == "" {
			return "No products found."
		}
		return fmt.Sprintf("No products found for %q.", query)
	}

	var b strings.Builder
	if query == "" {
		fmt.Fprintf(&b, "Found %d products:\n", len(result.Products))
	} else {
		fmt.Fprintf(&b, "Found %d products for %q:\n", len(result.Products), query)
	}
	for i, p := range result.Products {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Title)
		if p.Price.Amount != "" {
			fmt.Fprintf(&b, " - %s %s", p.Price.Amount, p.Price.CurrencyCode)
		}
		if !p.AvailableForSale {
			b.WriteString(" (sold out)")
		}
		b.WriteString("\n")
	}
	if result.Pagination.HasNextPage {
		b.WriteString("More results are available.\n")
	}
	return b.String()
}
