package models

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InterviewsRepo interface {
	// List returns every interview, newest first.
	List(ctx context.Context) ([]Interview, error)

	// Create stores a new interview and returns it with the assigned id.
	Create(ctx context.Context, interview Interview) (*Interview, error)

	// SetStatus overwrites the status and returns the updated interview,
	// or nil if there is no interview with such id.
	SetStatus(ctx context.Context, id string, status InterviewStatus) (*Interview, error)

	// Delete completely removes interview object
	Delete(ctx context.Context, id string) (found bool, err error)
}

type Interview struct {
	ID   primitive.ObjectID `json:"id"   bson:"_id,omitempty"`
	Date *string            `json:"date" bson:"date"`
	Time *string            `json:"time" bson:"time"`

	MeetingLink string          `json:"meeting_link" bson:"meeting_link"`
	Status      InterviewStatus `json:"status"       bson:"status"`
	CreatedAt   time.Time       `json:"created_at"   bson:"created_at"`
}

// CreatedAtLayout always keeps milliseconds, zero ones included.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

func (i Interview) MarshalJSON() ([]byte, error) {
	type plain Interview
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"created_at"`
	}{
		plain:     plain(i),
		CreatedAt: i.CreatedAt.UTC().Format(CreatedAtLayout),
	})
}

const (
	InterviewFieldID          = "_id"
	InterviewFieldDate        = "date"
	InterviewFieldTime        = "time"
	InterviewFieldMeetingLink = "meeting_link"
	InterviewFieldStatus      = "status"
	InterviewFieldCreatedAt   = "created_at"
)

type InterviewStatus string

const (
	// InterviewStatusPending is set when interview has been created
	InterviewStatusPending InterviewStatus = "pending"

	// InterviewStatusAccepted is set by accept, whatever the previous status was
	InterviewStatusAccepted InterviewStatus = "accepted"

	// InterviewStatusDeclined is set by decline, whatever the previous status was
	InterviewStatusDeclined InterviewStatus = "declined"
)
