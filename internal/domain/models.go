package domain

// Read-only projections of the Storefront GraphQL responses. None of these
// carry local identity beyond the upstream-assigned ID string and none are
// mutated after construction.

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

type Variant struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	SKU               string `json:"sku,omitempty"`
	Price             Money  `json:"price"`
	AvailableForSale  bool   `json:"availableForSale"`
	QuantityAvailable int    `json:"quantityAvailable"`
}

// Product is the search-result projection: one image, a variant preview.
type Product struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Handle           string    `json:"handle"`
	Description      string    `json:"description,omitempty"`
	AvailableForSale bool      `json:"availableForSale"`
	Price            Money     `json:"price"`
	Image            *Image    `json:"image,omitempty"`
	Variants         []Variant `json:"variants,omitempty"`
}

// ProductDetail is the full by-ID projection.
type ProductDetail struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Handle           string          `json:"handle"`
	Description      string          `json:"description,omitempty"`
	DescriptionHTML  string          `json:"descriptionHtml,omitempty"`
	Vendor           string          `json:"vendor,omitempty"`
	ProductType      string          `json:"productType,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	AvailableForSale bool            `json:"availableForSale"`
	MinPrice         Money           `json:"minPrice"`
	MaxPrice         Money           `json:"maxPrice"`
	Images           []Image         `json:"images"`
	Variants         []Variant       `json:"variants"`
	Collections      []CollectionRef `json:"collections,omitempty"`
}

type CollectionRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

type ProductRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Handle string `json:"handle"`
}

type Collection struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Handle      string       `json:"handle"`
	Description string       `json:"description,omitempty"`
	Products    []ProductRef `json:"products,omitempty"`
}

// Pagination mirrors upstream pageInfo; TotalCount is the size of the
// returned page since the Storefront API exposes no catalog total.
type Pagination struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
	TotalCount  int    `json:"totalCount"`
}

type SearchResult struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

type CollectionList struct {
	Collections []Collection `json:"collections"`
	Pagination  Pagination   `json:"pagination"`
}

// Inventory stock buckets.
const (
	StockInStock    = "in_stock"
	StockLowStock   = "low_stock"
	StockOutOfStock = "out_of_stock"

	// LowStockThreshold is the largest quantity still reported as low stock.
	LowStockThreshold = 5
)

type InventoryItem struct {
	VariantID         string `json:"variantId"`
	Title             string `json:"title"`
	SKU               string `json:"sku,omitempty"`
	ProductID         string `json:"productId,omitempty"`
	ProductTitle      string `json:"productTitle,omitempty"`
	Price             Money  `json:"price"`
	AvailableForSale  bool   `json:"availableForSale"`
	QuantityAvailable int    `json:"quantityAvailable"`
	Status            string `json:"status"`
}

type InventorySummary struct {
	TotalVariants int `json:"totalVariants"`
	InStock       int `json:"inStock"`
	OutOfStock    int `json:"outOfStock"`
	LowStock      int `json:"lowStock"`
}

type InventoryReport struct {
	Inventory []InventoryItem  `json:"inventory"`
	Summary   InventorySummary `json:"summary"`
}

// StockStatus classifies a variant into one of the stock buckets.
func StockStatus(availableForSale bool, quantity int) string {
	switch {
	case !availableForSale || quantity == 0:
		return StockOutOfStock
	case quantity > 0 && quantity <= LowStockThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}
