package models

// TeamDB represents a team record in the database. Image columns are
// nullable: a team may have no crest uploaded.
type TeamDB struct {
	Code      string  `json:"code" db:"code"` // Primary key, short team code
	Name      string  `json:"name" db:"name"`
	ImageData []byte  `json:"-" db:"image_data"`
	ImageMime *string `json:"image_mime" db:"image_mime"`
}

// TeamListItem is a row of the home page listing: a team plus its player count.
type TeamListItem struct {
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	PlayerCount int64  `json:"player_count" db:"player_count"`
}

// TeamImage holds the raw image bytes and MIME type served by the
// team-image route.
type TeamImage struct {
	Data []byte `db:"image_data"`
	Mime string `db:"image_mime"`
}

// PlayerDB represents a player record in the database
type PlayerDB struct {
	ID   int64  `json:"id" db:"id"`
	Team string `json:"team" db:"team"` // Foreign key to teams.code
	Name string `json:"name" db:"name"`
}
