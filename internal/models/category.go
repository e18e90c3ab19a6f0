package models

// Category groups recipes under a label shown on the category page.
type Category struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
