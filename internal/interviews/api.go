package interviews

import (
	"context"

	"github.com/nikmy/interviews/internal/repo/models"
)

type API interface {
	// List returns all interviews, newest first. Never nil.
	List(ctx context.Context) ([]models.Interview, error)

	// Create registers an interview with a freshly generated meeting link.
	// date and time are stored as given, nil is stored as null.
	Create(ctx context.Context, date, time *string) (*models.Interview, error)

	// Accept marks the interview accepted. Returns nil if there is no such interview.
	Accept(ctx context.Context, id string) (*models.Interview, error)

	// Decline marks the interview declined. Returns nil if there is no such interview.
	Decline(ctx context.Context, id string) (*models.Interview, error)

	// Delete removes the interview if present.
	Delete(ctx context.Context, id string) error
}
