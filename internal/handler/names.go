package handler

import (
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/server"
	"github.com/deppfellow/expense-categories/internal/service"
	"github.com/labstack/echo/v4"
)

// NameHandler serves /categories, backed by the in-memory name list.
type NameHandler struct {
	Handler
	names *service.NameService
}

func NewNameHandler(s *server.Server, names *service.NameService) *NameHandler {
	return &NameHandler{
		Handler: NewHandler(s),
		names:   names,
	}
}

func (h *NameHandler) List(c echo.Context, _ *model.ListCategoriesRequest) ([]string, error) {
	return h.names.List(c.Request().Context()), nil
}

func (h *NameHandler) Add(c echo.Context, req *model.NameRequest) (*model.MessageResponse, error) {
	return h.names.Add(c.Request().Context(), req.Name)
}

func (h *NameHandler) Remove(c echo.Context, req *model.NameRequest) (*model.MessageResponse, error) {
	return h.names.Remove(c.Request().Context(), req.Name)
}
