package models

import "time"

// Recipe is a recipe row joined with its category and author names.
type Recipe struct {
	ID                     int64     `json:"id" db:"id"`
	CategoryID             int64     `json:"category_id" db:"category_id"`
	AuthorID               int64     `json:"author_id" db:"author_id"`
	Title                  string    `json:"title" db:"title"`
	Description            string    `json:"description" db:"description"`
	Slug                   string    `json:"slug" db:"slug"`
	PreparationTime        int       `json:"preparation_time" db:"preparation_time"`
	PreparationTimeUnit    string    `json:"preparation_time_unit" db:"preparation_time_unit"`
	Servings               int       `json:"servings" db:"servings"`
	ServingsUnit           string    `json:"servings_unit" db:"servings_unit"`
	PreparationSteps       string    `json:"preparation_steps" db:"preparation_steps"`
	PreparationStepsIsHTML bool      `json:"preparation_steps_is_html" db:"preparation_steps_is_html"`
	IsPublished            bool      `json:"is_published" db:"is_published"`
	CreatedAt              time.Time `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time `json:"updated_at" db:"updated_at"`

	CategoryName    string `json:"category_name" db:"category_name"`         // computed field
	AuthorFirstName string `json:"author_first_name" db:"author_first_name"` // computed field
	AuthorLastName  string `json:"author_last_name" db:"author_last_name"`   // computed field
	AuthorUsername  string `json:"author_username" db:"author_username"`     // computed field
}

// AuthorName is the display name used on recipe cards.
func (r Recipe) AuthorName() string {
	return AuthorDB{
		FirstName: r.AuthorFirstName,
		LastName:  r.AuthorLastName,
		Username:  r.AuthorUsername,
	}.FullName()
}
