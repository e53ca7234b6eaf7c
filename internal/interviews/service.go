package interviews

import (
	"context"
	"strconv"
	"strings"

	"github.com/nikmy/interviews/internal/repo/models"
	"github.com/nikmy/interviews/pkg/errors"
	"github.com/nikmy/interviews/pkg/logger"
)

func New(log logger.Logger, cfg Config, repo models.InterviewsRepo) API {
	return newService(log, cfg, repo, stdTime{})
}

func newService(log logger.Logger, cfg Config, repo models.InterviewsRepo, clock timeProvider) *service {
	return &service{
		repo:     repo,
		clock:    clock,
		meetings: cfg.Meetings.withDefaults(),
		log:      log.With("interviews"),
	}
}

type service struct {
	repo     models.InterviewsRepo
	clock    timeProvider
	meetings MeetingsConfig
	log      logger.Logger
}

func (s *service) List(ctx context.Context) ([]models.Interview, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.WrapFail(err, "list interviews")
	}

	if all == nil {
		all = []models.Interview{}
	}

	return all, nil
}

func (s *service) Create(ctx context.Context, date, time *string) (*models.Interview, error) {
	now := s.clock.Now()

	created, err := s.repo.Create(ctx, models.Interview{
		Date:        date,
		Time:        time,
		MeetingLink: s.meetingLink(now.UnixMilli()),
		Status:      models.InterviewStatusPending,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create interview")
	}

	s.log.Debugf("created interview %s with meeting %s", created.ID.Hex(), created.MeetingLink)
	return created, nil
}

func (s *service) Accept(ctx context.Context, id string) (*models.Interview, error) {
	return s.setStatus(ctx, id, models.InterviewStatusAccepted)
}

func (s *service) Decline(ctx context.Context, id string) (*models.Interview, error) {
	return s.setStatus(ctx, id, models.InterviewStatusDeclined)
}

func (s *service) Delete(ctx context.Context, id string) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.WrapFail(err, "delete interview")
	}

	if !found {
		s.log.Debugf("nothing to delete by id %s", id)
	}

	return nil
}

func (s *service) setStatus(ctx context.Context, id string, status models.InterviewStatus) (*models.Interview, error) {
	updated, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, errors.WrapFailf(err, "set interview status to %s", status)
	}

	if updated == nil {
		s.log.Debugf("no interview with id %s to set %s", id, status)
	}

	return updated, nil
}

func (s *service) meetingLink(millis int64) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(s.meetings.BaseURL, "/"))
	sb.WriteRune('/')
	sb.WriteString(s.meetings.Prefix)
	sb.WriteString(strconv.FormatInt(millis, 10))
	return sb.String()
}
