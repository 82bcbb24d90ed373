package router

import (
	"net/http"

	"github.com/deppfellow/expense-categories/internal/handler"
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/labstack/echo/v4"
)

func registerGreetingRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Greeting.Root)
	r.GET("/hello", handler.Handle(h.Greeting.Handler, h.Greeting.Hello, http.StatusOK, &model.HelloRequest{}))
}

// registerCategoryRoutes registers the in-memory /categories endpoints and
// the database-backed /categories-db and /category-db endpoints.
func registerCategoryRoutes(r *echo.Echo, h *handler.Handlers) {
	names := h.Names
	r.GET("/categories", handler.Handle(names.Handler, names.List, http.StatusOK, &model.ListCategoriesRequest{}))
	r.POST("/categories", handler.Handle(names.Handler, names.Add, http.StatusCreated, &model.NameRequest{}))
	r.DELETE("/categories", handler.Handle(names.Handler, names.Remove, http.StatusOK, &model.NameRequest{}))

	categories := h.Category
	r.GET("/categories-db", handler.Handle(categories.Handler, categories.ListNames, http.StatusOK, &model.ListCategoriesRequest{}))
	r.POST("/categories-db", handler.Handle(categories.Handler, categories.Create, http.StatusOK, &model.CreateCategoryRequest{}))
	r.PUT("/categories-db", handler.Handle(categories.Handler, categories.Update, http.StatusOK, &model.UpdateCategoryRequest{}))
	r.DELETE("/categories-db", handler.Handle(categories.Handler, categories.Delete, http.StatusOK, &model.DeleteCategoryRequest{}))

	r.GET("/category-db", handler.Handle(categories.Handler, categories.Get, http.StatusOK, &model.GetCategoryRequest{}))
}
