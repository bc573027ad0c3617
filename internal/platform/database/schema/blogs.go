package schema

// BlogTable represents the 'blogs' table
type BlogTable struct {
	Table     string
	ID        string
	ProductID string
	Image     string
	CreatedAt string
}

// Blog is the schema definition for blogs
var Blog = BlogTable{
	Table:     "blogs",
	ID:        "id",
	ProductID: "productid",
	Image:     "image",
	CreatedAt: "createdat",
}

// BlogContentTable represents the 'blog_contents' table
type BlogContentTable struct {
	Table       string
	ID          string
	BlogID      string
	Language    string
	Title       string
	Description string
}

// BlogContent is the schema definition for blog_contents
var BlogContent = BlogContentTable{
	Table:       "blog_contents",
	ID:          "id",
	BlogID:      "blogid",
	Language:    "language",
	Title:       "title",
	Description: "description",
}

// BlogCommentTable represents the 'blog_comments' table
type BlogCommentTable struct {
	Table     string
	ID        string
	BlogID    string
	UserID    string
	Text      string
	Image     string
	LikeCount string
	CreatedAt string
}

// BlogComment is the schema definition for blog_comments
var BlogComment = BlogCommentTable{
	Table:     "blog_comments",
	ID:        "id",
	BlogID:    "blogid",
	UserID:    "userid",
	Text:      "text",
	Image:     "image",
	LikeCount: "likecount",
	CreatedAt: "createdat",
}
