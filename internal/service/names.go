package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/expense-categories/internal/errs"
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/repository"
	"github.com/rs/zerolog"
)

// NameService manages the in-process category name list.
type NameService struct {
	names *repository.NameList
}

func NewNameService(names *repository.NameList) *NameService {
	return &NameService{names: names}
}

func (s *NameService) List(ctx context.Context) []string {
	return s.names.All()
}

func (s *NameService) Add(ctx context.Context, name string) (*model.MessageResponse, error) {
	if !s.names.Add(name) {
		return nil, errs.NewConflictError(fmt.Sprintf("Category already exists: %s", name), true, nil)
	}

	zerolog.Ctx(ctx).Info().Str("name", name).Msg("category added to memory list")

	return &model.MessageResponse{Message: fmt.Sprintf("Category added: %s", name)}, nil
}

func (s *NameService) Remove(ctx context.Context, name string) (*model.MessageResponse, error) {
	if !s.names.Remove(name) {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Category not found: %s", name), true, nil)
	}

	zerolog.Ctx(ctx).Info().Str("name", name).Msg("category removed from memory list")

	return &model.MessageResponse{Message: fmt.Sprintf("Category removed: %s", name)}, nil
}
