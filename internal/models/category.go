package models

// Category is a read-only browse category. Rows are managed outside this
// service; it only ever lists them.
type Category struct {
	ID       string `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name     string `json:"name"`
	ImageURL string `json:"image"`
}

// Slide is a promotional entry for the home-page marquee. Read-only.
type Slide struct {
	ID       string `json:"_id" gorm:"primaryKey;type:varchar(36)"`
	Title    string `json:"title"`
	ImageURL string `json:"image"`
}
