package handler

import (
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/server"
	"github.com/deppfellow/expense-categories/internal/service"
	"github.com/labstack/echo/v4"
)

// CategoryHandler serves /categories-db and /category-db.
type CategoryHandler struct {
	Handler
	categories *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler:    NewHandler(s),
		categories: categories,
	}
}

func (h *CategoryHandler) ListNames(c echo.Context, _ *model.ListCategoriesRequest) ([]string, error) {
	return h.categories.ListNames(c.Request().Context())
}

func (h *CategoryHandler) Get(c echo.Context, req *model.GetCategoryRequest) (*model.Category, error) {
	return h.categories.Get(c.Request().Context(), req.CategoryID())
}

func (h *CategoryHandler) Create(c echo.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	return h.categories.Create(c.Request().Context(), req)
}

func (h *CategoryHandler) Update(c echo.Context, req *model.UpdateCategoryRequest) (*model.Category, error) {
	return h.categories.Update(c.Request().Context(), req)
}

func (h *CategoryHandler) Delete(c echo.Context, req *model.DeleteCategoryRequest) (*model.Category, error) {
	return h.categories.Delete(c.Request().Context(), req)
}
