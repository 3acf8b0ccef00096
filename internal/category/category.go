package category

// Category groups products for storefront browsing.
type Category struct {
	ID    int     `json:"categoryID"`
	Name  string  `json:"name"`
	Image *string `json:"image,omitempty"`
}
