package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RegisterAuthorInput carries the fields needed to create an author account.
// swagger:model RegisterAuthorInput
type RegisterAuthorInput struct {
	// example: Ana
	FirstName string `json:"first_name"`
	// example: Maria
	LastName string `json:"last_name"`
	// required: true
	// example: anamaria
	Username string `json:"username"`
	// required: true
	// example: ana@example.com
	Email string `json:"email"`
	// required: true
	// example: secret123
	Password string `json:"password"`
}

func (in RegisterAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validation.Length(0, 150)),
		validation.Field(&in.LastName, validation.Length(0, 150)),
		validation.Field(&in.Username, validation.Required, validation.Length(1, 150), is.PrintableASCII),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.Password, validation.Required, validation.Length(6, 128)),
	)
}

// LoginInput is the body of a login request.
// swagger:model LoginInput
type LoginInput struct {
	// required: true
	// example: anamaria
	Username string `json:"username"`
	// required: true
	// example: secret123
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Username, validation.Required),
		validation.Field(&in.Password, validation.Required),
	)
}

// CreateCategoryInput is the body of a category creation request.
// swagger:model CreateCategoryInput
type CreateCategoryInput struct {
	// required: true
	// example: Desserts
	Name string `json:"name"`
}

func (in CreateCategoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 65)),
	)
}

// CreateRecipeInput is the body of a recipe creation request.
// The author is taken from the bearer token, never from the body.
// swagger:model CreateRecipeInput
type CreateRecipeInput struct {
	// required: true
	// example: 1
	CategoryID int64 `json:"category_id"`
	// required: true
	// example: Carrot cake
	Title string `json:"title"`
	// example: Soft cake with chocolate topping
	Description string `json:"description"`
	// Derived from the title when empty
	// example: carrot-cake
	Slug string `json:"slug"`
	// required: true
	// example: 45
	PreparationTime int `json:"preparation_time"`
	// required: true
	// example: Minutes
	PreparationTimeUnit string `json:"preparation_time_unit"`
	// required: true
	// example: 8
	Servings int `json:"servings"`
	// required: true
	// example: Slices
	ServingsUnit string `json:"servings_unit"`
	// required: true
	PreparationSteps       string `json:"preparation_steps"`
	PreparationStepsIsHTML bool   `json:"preparation_steps_is_html"`
	IsPublished            bool   `json:"is_published"`
}

func (in CreateRecipeInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.CategoryID, validation.Required, validation.Min(int64(1))),
		validation.Field(&in.Title, validation.Required, validation.Length(1, 65)),
		validation.Field(&in.Description, validation.Length(0, 165)),
		validation.Field(&in.Slug, validation.Length(0, 65)),
		validation.Field(&in.PreparationTime, validation.Required, validation.Min(1)),
		validation.Field(&in.PreparationTimeUnit, validation.Required, validation.Length(1, 65)),
		validation.Field(&in.Servings, validation.Required, validation.Min(1)),
		validation.Field(&in.ServingsUnit, validation.Required, validation.Length(1, 65)),
		validation.Field(&in.PreparationSteps, validation.Required),
	)
}
