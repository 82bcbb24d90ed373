package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/expense-categories/internal/errs"
	"github.com/deppfellow/expense-categories/internal/lib/job"
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/repository"
	"github.com/deppfellow/expense-categories/internal/sqlerr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const nameColumn = "name"

// CategoryService implements the /categories-db and /category-db operations.
//
// Each operation makes at most one existence check and one write. The
// UNIQUE(name) constraint backs the duplicate check, so a racing insert
// still ends in a 409.
type CategoryService struct {
	store  repository.Store[model.Category]
	events EventPublisher
}

// NewCategoryService builds the service. events may be nil.
func NewCategoryService(store repository.Store[model.Category], events EventPublisher) *CategoryService {
	return &CategoryService{store: store, events: events}
}

// ListNames returns the names of all stored categories ordered by id.
func (s *CategoryService) ListNames(ctx context.Context) ([]string, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errs.NewNotFoundError("Category not found", true, nil)
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	existing, err := s.store.FindBy(ctx, nameColumn, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, alreadyExists(req.Name)
	}

	created, err := s.store.Create(ctx, model.Category{UserID: req.UserID, Name: req.Name})
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			return nil, alreadyExists(req.Name)
		}
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("category_id", created.ID).Str("name", created.Name).Msg("category created")
	s.publish(ctx, job.ActionCreated, created)

	return &created, nil
}

func (s *CategoryService) Update(ctx context.Context, req *model.UpdateCategoryRequest) (*model.Category, error) {
	id := *req.ID

	current, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, notFoundByID(id)
	}

	if current.Name != req.Name {
		existing, err := s.store.FindBy(ctx, nameColumn, req.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, alreadyExists(req.Name)
		}
	}

	updated, err := s.store.Update(ctx, model.Category{ID: id, UserID: req.UserID, Name: req.Name})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, notFoundByID(id)
	case sqlerr.ErrCode(err) == sqlerr.UniqueViolation:
		return nil, alreadyExists(req.Name)
	case err != nil:
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("category_id", updated.ID).Str("name", updated.Name).Msg("category updated")
	s.publish(ctx, job.ActionUpdated, updated)

	return &updated, nil
}

// Delete removes a category by id, or by name when no id is given, and
// returns the removed row.
func (s *CategoryService) Delete(ctx context.Context, req *model.DeleteCategoryRequest) (*model.Category, error) {
	var (
		existing *model.Category
		err      error
	)

	if req.ID != nil {
		existing, err = s.store.Get(ctx, *req.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, notFoundByID(*req.ID)
		}
	} else {
		existing, err = s.store.FindBy(ctx, nameColumn, req.Name)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, errs.NewNotFoundError(fmt.Sprintf("Category not found: %s", req.Name), true, nil)
		}
	}

	if err := s.store.Delete(ctx, existing.ID); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("category_id", existing.ID).Str("name", existing.Name).Msg("category deleted")
	s.publish(ctx, job.ActionDeleted, *existing)

	return existing, nil
}

// publish is best effort: the write already succeeded.
func (s *CategoryService) publish(ctx context.Context, action string, c model.Category) {
	if s.events == nil {
		return
	}

	if err := s.events.PublishCategoryChanged(ctx, action, c); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("action", action).
			Int64("category_id", c.ID).
			Msg("failed to publish category change")
	}
}

func alreadyExists(name string) *errs.HTTPError {
	return errs.NewConflictError(fmt.Sprintf("Category already exists: %s", name), true, nil)
}

func notFoundByID(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Category not found: %d", id), true, nil)
}
