package handler

import (
	"github.com/deppfellow/expense-categories/internal/server"
	"github.com/deppfellow/expense-categories/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Greeting *GreetingHandler
	Names    *NameHandler
	Category *CategoryHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Greeting: NewGreetingHandler(s),
		Names:    NewNameHandler(s, services.Names),
		Category: NewCategoryHandler(s, services.Categories),
	}
}
