package models

// ThingDB represents a thing record in the database
type ThingDB struct {
	ID     int64   `json:"id" db:"id"`           // Primary key
	Name   string  `json:"name" db:"name"`       // Display name
	Price  float64 `json:"price" db:"price"`     // Price in whole currency units
	UserID int64   `json:"user_id" db:"user_id"` // Owning user
}

// ThingListItem is a row of the public thing list, joined to the owner's name.
type ThingListItem struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Owner string `json:"owner" db:"owner"`
}

// ThingDetail is a single thing with full details, joined to the owner's name.
type ThingDetail struct {
	ID     int64   `json:"id" db:"id"`
	Name   string  `json:"name" db:"name"`
	Price  float64 `json:"price" db:"price"`
	UserID int64   `json:"user_id" db:"user_id"`
	Owner  string  `json:"owner" db:"owner"`
}
