package repository

import (
	"fmt"

	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/server"
)

var _ Store[model.Category] = (*Table[model.Category])(nil)

// Repositories is a container for all repository instances.
type Repositories struct {
	Categories Store[model.Category]
	Names      *NameList
}

// NewRepositories binds the accessors to the server's connection pool.
func NewRepositories(s *server.Server) (*Repositories, error) {
	categories, err := NewTable[model.Category](s.DB.Pool)
	if err != nil {
		return nil, fmt.Errorf("failed to build categories table: %w", err)
	}

	return &Repositories{
		Categories: categories,
		Names:      NewNameList(),
	}, nil
}
