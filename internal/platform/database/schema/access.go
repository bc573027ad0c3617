package schema

// ResourceAccessTable represents the 'resource_accesses' table
type ResourceAccessTable struct {
	Table        string
	ID           string
	UserID       string
	ResourceType string
	ResourceID   string
	AccessType   string
	DeviceType   string
	CreatedAt    string
}

// ResourceAccess is the schema definition for resource_accesses
var ResourceAccess = ResourceAccessTable{
	Table:        "resource_accesses",
	ID:           "id",
	UserID:       "userid",
	ResourceType: "resourcetype",
	ResourceID:   "resourceid",
	AccessType:   "accesstype",
	DeviceType:   "devicetype",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t ResourceAccessTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.ResourceType, t.ResourceID,
		t.AccessType, t.DeviceType, t.CreatedAt,
	}
}
