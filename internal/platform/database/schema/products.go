package schema

// ProductTable represents the 'products' table
type ProductTable struct {
	Table     string
	ID        string
	Image     string
	CreatedAt string
}

// Product is the schema definition for products
var Product = ProductTable{
	Table:     "products",
	ID:        "id",
	Image:     "image",
	CreatedAt: "createdat",
}

// ProductRegionTable represents the 'product_regions' table
type ProductRegionTable struct {
	Table     string
	ID        string
	ProductID string
	Region    string
}

// ProductRegion is the schema definition for product_regions
var ProductRegion = ProductRegionTable{
	Table:     "product_regions",
	ID:        "id",
	ProductID: "productid",
	Region:    "region",
}

// ProductContentTable represents the 'product_contents' table
type ProductContentTable struct {
	Table       string
	ID          string
	ProductID   string
	Language    string
	Name        string
	Description string
}

// ProductContent is the schema definition for product_contents
var ProductContent = ProductContentTable{
	Table:       "product_contents",
	ID:          "id",
	ProductID:   "productid",
	Language:    "language",
	Name:        "name",
	Description: "description",
}
