package shopify

import (
	"fmt"
	"strings"
)

// NormalizeGID rewrites a bare identifier to the upstream global-ID form,
// e.g. "123" -> "gid://shopify/ProductVariant/123". Identifiers that already
// carry a gid:// prefix pass through unchanged.
func NormalizeGID(resourceType, id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "gid://") {
		return id
	}
	return fmt.Sprintf("gid://shopify/%s/%s", resourceType, id)
}

// NormalizeVariantGIDs normalizes every ID in order; duplicates are kept.
func NormalizeVariantGIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		out = append(out, NormalizeGID("ProductVariant", id))
	}
	return out
}
