package product

// Product is the catalog record shown in the storefront. Price is in the
// base currency; Stock bounds how many units a cart may hold.
type Product struct {
	ID          int     `json:"productID"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stockQuantity"`
	Image       *string `json:"image,omitempty"`
	CategoryID  *int    `json:"categoryID,omitempty"`
}
