package model

import (
	"strconv"
	"strings"

	"github.com/deppfellow/expense-categories/internal/validation"
)

const (
	msgNameRequired   = "Category name is required"
	msgIDRequired     = "Category ID is required"
	msgIDInvalid      = "Category ID must be an integer"
	msgIDOrNameNeeded = "Category id or name is required"
)

// requireName trims name in place and rejects a blank result.
func requireName(name *string) error {
	*name = strings.TrimSpace(*name)
	if err := validation.Validator().Var(*name, "notblank"); err != nil {
		return validation.CustomValidationErrors{{Field: "name", Message: msgNameRequired}}
	}
	return nil
}

// HelloRequest is the query of GET /hello.
type HelloRequest struct {
	Name string `query:"name"`
}

func (r *HelloRequest) Validate() error {
	return nil
}

// NameRequest is the body of POST and DELETE /categories.
type NameRequest struct {
	Name string `json:"name"`
}

func (r *NameRequest) Validate() error {
	return requireName(&r.Name)
}

// ListCategoriesRequest carries no parameters.
type ListCategoriesRequest struct{}

func (r *ListCategoriesRequest) Validate() error {
	return nil
}

// GetCategoryRequest is the query of GET /category-db. ID is bound as text
// so that "?id=" counts as missing rather than as zero.
type GetCategoryRequest struct {
	ID string `query:"id"`

	id int64
}

func (r *GetCategoryRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	if err := validation.Validator().Var(r.ID, "notblank"); err != nil {
		return validation.CustomValidationErrors{{Field: "id", Message: msgIDRequired}}
	}

	id, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil {
		return validation.CustomValidationErrors{{Field: "id", Message: msgIDInvalid}}
	}
	r.id = id
	return nil
}

// CategoryID is the parsed id, set by a successful Validate.
func (r *GetCategoryRequest) CategoryID() int64 {
	return r.id
}

// CreateCategoryRequest is the body of POST /categories-db.
type CreateCategoryRequest struct {
	Name   string `json:"name"`
	UserID *int64 `json:"user_id" validate:"omitempty,gt=0"`
}

func (r *CreateCategoryRequest) Validate() error {
	if err := requireName(&r.Name); err != nil {
		return err
	}
	return validation.Validator().Struct(r)
}

// UpdateCategoryRequest is the body of PUT /categories-db.
type UpdateCategoryRequest struct {
	ID     *int64 `json:"id"`
	Name   string `json:"name"`
	UserID *int64 `json:"user_id" validate:"omitempty,gt=0"`
}

func (r *UpdateCategoryRequest) Validate() error {
	if r.ID == nil {
		return validation.CustomValidationErrors{{Field: "id", Message: msgIDRequired}}
	}

	if err := requireName(&r.Name); err != nil {
		return err
	}
	return validation.Validator().Struct(r)
}

// DeleteCategoryRequest is the body of DELETE /categories-db. ID wins over Name.
type DeleteCategoryRequest struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

func (r *DeleteCategoryRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.ID == nil && r.Name == "" {
		return validation.CustomValidationErrors{{Field: "id", Message: msgIDOrNameNeeded}}
	}
	return nil
}
