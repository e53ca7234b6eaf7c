package api

import (
	"context"

	"github.com/nikmy/interviews/internal/repo/models"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type interviewsAPI interface {
	List(ctx context.Context) ([]models.Interview, error)
	Create(ctx context.Context, date, time *string) (*models.Interview, error)
	Accept(ctx context.Context, id string) (*models.Interview, error)
	Decline(ctx context.Context, id string) (*models.Interview, error)
	Delete(ctx context.Context, id string) error
}

type closer interface {
	Close(ctx context.Context) error
}
