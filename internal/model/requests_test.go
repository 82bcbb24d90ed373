package model

import (
	"testing"

	"github.com/deppfellow/expense-categories/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func customMessage(t *testing.T, err error) string {
	t.Helper()

	var custom validation.CustomValidationErrors
	require.ErrorAs(t, err, &custom)
	require.Len(t, custom, 1)
	return custom[0].Message
}

func TestNameRequestValidate(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n", "   "} {
		req := &NameRequest{Name: name}
		assert.Equal(t, "Category name is required", customMessage(t, req.Validate()), "name %q", name)
	}

	req := &NameRequest{Name: "  Food "}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Food", req.Name)
}

func TestGetCategoryRequestValidate(t *testing.T) {
	for _, id := range []string{"", " ", "\t"} {
		assert.Equal(t, "Category ID is required", customMessage(t, (&GetCategoryRequest{ID: id}).Validate()), "id %q", id)
	}
	for _, id := range []string{"abc", "1.5", "99999999999999999999"} {
		assert.Equal(t, "Category ID must be an integer", customMessage(t, (&GetCategoryRequest{ID: id}).Validate()), "id %q", id)
	}

	req := &GetCategoryRequest{ID: " 7 "}
	require.NoError(t, req.Validate())
	assert.Equal(t, int64(7), req.CategoryID())
}

func TestCreateCategoryRequestValidate(t *testing.T) {
	assert.Equal(t, "Category name is required", customMessage(t, (&CreateCategoryRequest{Name: " "}).Validate()))

	err := (&CreateCategoryRequest{Name: "Food", UserID: int64Ptr(-1)}).Validate()
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "UserID", validationErrors[0].Field())

	req := &CreateCategoryRequest{Name: " Food ", UserID: int64Ptr(3)}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Food", req.Name)
}

func TestUpdateCategoryRequestValidate(t *testing.T) {
	assert.Equal(t, "Category ID is required", customMessage(t, (&UpdateCategoryRequest{Name: "Food"}).Validate()))
	assert.Equal(t, "Category name is required", customMessage(t, (&UpdateCategoryRequest{ID: int64Ptr(1)}).Validate()))
	assert.NoError(t, (&UpdateCategoryRequest{ID: int64Ptr(1), Name: "Rent"}).Validate())
}

func TestDeleteCategoryRequestValidate(t *testing.T) {
	assert.Equal(t, "Category id or name is required", customMessage(t, (&DeleteCategoryRequest{Name: "  "}).Validate()))
	assert.NoError(t, (&DeleteCategoryRequest{ID: int64Ptr(1)}).Validate())
	assert.NoError(t, (&DeleteCategoryRequest{Name: "Food"}).Validate())
}

func TestCategoryModel(t *testing.T) {
	c := Category{ID: 4, Name: "Food"}

	assert.Equal(t, "common_categories", c.TableName())
	assert.Equal(t, int64(4), c.PrimaryKey())
	assert.Equal(t, []string{"user_id", "name"}, c.Columns())
	assert.Len(t, c.Values(), len(c.Columns()))
}
