// Package repositorytest provides in-memory stand-ins for the repository
// accessors, for tests that exercise services and HTTP routes without Postgres.
package repositorytest

import (
	"context"
	"sort"
	"sync"

	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/repository"
	"github.com/pkg/errors"
)

// CategoryStore is an in-memory repository.Store[model.Category].
//
// It enforces name uniqueness the way the table's UNIQUE constraint does,
// so tests can observe duplicate handling even when a check is bypassed.
// Setting Err makes every call fail with it.
type CategoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Category

	Err error
}

var _ repository.Store[model.Category] = (*CategoryStore)(nil)

// ErrDuplicateName is returned by Create and Update for a name already stored.
var ErrDuplicateName = errors.New("duplicate category name")

func NewCategoryStore(seed ...model.Category) *CategoryStore {
	s := &CategoryStore{nextID: 1, rows: make(map[int64]model.Category)}
	for _, c := range seed {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
		s.rows[c.ID] = c
	}
	return s
}

func (s *CategoryStore) List(ctx context.Context) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]model.Category, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *CategoryStore) Get(ctx context.Context, id int64) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}

	c, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *CategoryStore) FindBy(ctx context.Context, column string, value any) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if column != "name" && column != "user_id" {
		return nil, errors.Wrapf(repository.ErrInvalidIdentifier, "column %q", column)
	}

	var found *model.Category
	for _, c := range s.rows {
		if !matches(c, column, value) {
			continue
		}
		if found == nil || c.ID < found.ID {
			c := c
			found = &c
		}
	}

	return found, nil
}

func (s *CategoryStore) Create(ctx context.Context, c model.Category) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.Category{}, s.Err
	}
	if s.nameTaken(c.Name, 0) {
		return model.Category{}, ErrDuplicateName
	}

	c.ID = s.nextID
	s.nextID++
	s.rows[c.ID] = c
	return c, nil
}

func (s *CategoryStore) Update(ctx context.Context, c model.Category) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return model.Category{}, s.Err
	}
	if _, ok := s.rows[c.ID]; !ok {
		return model.Category{}, repository.ErrNotFound
	}
	if s.nameTaken(c.Name, c.ID) {
		return model.Category{}, ErrDuplicateName
	}

	s.rows[c.ID] = c
	return c, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}

	delete(s.rows, id)
	return nil
}

// Len reports how many rows are stored.
func (s *CategoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *CategoryStore) nameTaken(name string, except int64) bool {
	for id, c := range s.rows {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func matches(c model.Category, column string, value any) bool {
	switch column {
	case "name":
		name, ok := value.(string)
		return ok && c.Name == name
	case "user_id":
		id, ok := value.(int64)
		return ok && c.UserID != nil && *c.UserID == id
	default:
		return false
	}
}
