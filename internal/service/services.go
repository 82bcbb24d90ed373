package service

import (
	"context"

	"github.com/deppfellow/expense-categories/internal/lib/job"
	"github.com/deppfellow/expense-categories/internal/model"
	"github.com/deppfellow/expense-categories/internal/repository"
	"github.com/deppfellow/expense-categories/internal/server"
)

// EventPublisher announces successful category writes. *job.JobService
// implements it.
type EventPublisher interface {
	PublishCategoryChanged(ctx context.Context, action string, c model.Category) error
}

type Services struct {
	Categories *CategoryService
	Names      *NameService
	Job        *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	// A nil *job.JobService must not end up inside the interface.
	var events EventPublisher
	if s.Job != nil {
		events = s.Job
	}

	return &Services{
		Categories: NewCategoryService(repos.Categories, events),
		Names:      NewNameService(repos.Names),
		Job:        s.Job,
	}, nil
}
