package schema

// ProductRequestTable represents the 'product_requests' table
type ProductRequestTable struct {
	Table       string
	ID          string
	UserID      string
	Name        string
	Description string
	Image       string
	CreatedAt   string
}

// ProductRequest is the schema definition for product_requests
var ProductRequest = ProductRequestTable{
	Table:       "product_requests",
	ID:          "id",
	UserID:      "userid",
	Name:        "name",
	Description: "description",
	Image:       "image",
	CreatedAt:   "createdat",
}

// BlogRequestTable represents the 'blog_requests' table
type BlogRequestTable struct {
	Table       string
	ID          string
	UserID      string
	ProductID   string
	Title       string
	Description string
	Image       string
	CreatedAt   string
}

// BlogRequest is the schema definition for blog_requests
var BlogRequest = BlogRequestTable{
	Table:       "blog_requests",
	ID:          "id",
	UserID:      "userid",
	ProductID:   "productid",
	Title:       "title",
	Description: "description",
	Image:       "image",
	CreatedAt:   "createdat",
}
