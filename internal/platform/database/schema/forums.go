package schema

// ForumTable represents the 'forums' table
type ForumTable struct {
	Table  string
	Region string
	Name   string
}

// Forum is the schema definition for forums
var Forum = ForumTable{
	Table:  "forums",
	Region: "region",
	Name:   "name",
}

// ThreadTable represents the 'threads' table
type ThreadTable struct {
	Table       string
	ID          string
	Region      string
	Language    string
	Title       string
	Description string
	CreatedAt   string
}

// Thread is the schema definition for threads
var Thread = ThreadTable{
	Table:       "threads",
	ID:          "id",
	Region:      "region",
	Language:    "language",
	Title:       "title",
	Description: "description",
	CreatedAt:   "createdat",
}

// ThreadCommentTable represents the 'thread_comments' table
type ThreadCommentTable struct {
	Table     string
	ID        string
	ThreadID  string
	UserID    string
	Content   string
	CreatedAt string
}

// ThreadComment is the schema definition for thread_comments
var ThreadComment = ThreadCommentTable{
	Table:     "thread_comments",
	ID:        "id",
	ThreadID:  "threadid",
	UserID:    "userid",
	Content:   "content",
	CreatedAt: "createdat",
}
