package domain

// Product represents a catalog product owned by the store backend
type Product struct {
	ID          int
	Title       string
	Description string
	Price       float64
	PictureURL  string
}
