package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/deppfellow/expense-categories/internal/config"
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/server"
	"github.com/labstack/echo/v4"
)

const defaultGreetingName = "World"

type GreetingHandler struct {
	Handler
}

func NewGreetingHandler(s *server.Server) *GreetingHandler {
	return &GreetingHandler{
		Handler: NewHandler(s),
	}
}

// Root answers GET / with a plain text banner.
func (h *GreetingHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, fmt.Sprintf("Hello, World! This is the %s server running.", config.ServiceName))
}

// Hello answers GET /hello, greeting "World" when name is absent or blank.
func (h *GreetingHandler) Hello(c echo.Context, req *model.HelloRequest) (*model.MessageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultGreetingName
	}

	return &model.MessageResponse{Message: fmt.Sprintf("Hello, %s!", name)}, nil
}
