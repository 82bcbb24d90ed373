package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/expense-categories/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameService(t *testing.T) {
	svc := NewNameService(repository.NewNameList())
	ctx := context.Background()

	res, err := svc.Add(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, "Category added: Food", res.Message)

	_, err = svc.Add(ctx, "Food")
	requireHTTPError(t, err, http.StatusConflict, "Category already exists: Food")

	assert.Equal(t, []string{"Food"}, svc.List(ctx))

	res, err = svc.Remove(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, "Category removed: Food", res.Message)

	_, err = svc.Remove(ctx, "Food")
	requireHTTPError(t, err, http.StatusNotFound, "Category not found: Food")
	assert.Empty(t, svc.List(ctx))
}
