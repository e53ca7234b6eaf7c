package repo

import (
	"context"

	"github.com/nikmy/interviews/internal/repo/internal/mongodb"
	"github.com/nikmy/interviews/internal/repo/models"
	"github.com/nikmy/interviews/pkg/errors"
	"github.com/nikmy/interviews/pkg/logger"
)

type Client interface {
	Interviews() models.InterviewsRepo

	Close(ctx context.Context) error
}

func NewMongoClient(ctx context.Context, log logger.Logger, cfg MongoConfig) (Client, error) {
	cfg = cfg.WithDefaults()

	mongoCfg := mongodb.Config{
		URL:            cfg.URL,
		Timeout:        cfg.Timeout,
		ConnectTimeout: cfg.ConnectTimeout,
		Database:       cfg.Database,
		Collection:     cfg.Collection,
	}
	mongoCfg.Auth.Username = cfg.Auth.Username
	mongoCfg.Auth.Password = cfg.Auth.Password
	mongoCfg.Pool.MinSize = cfg.Pool.MinSize
	mongoCfg.Pool.MaxSize = cfg.Pool.MaxSize

	c, err := mongodb.Connect(ctx, log, mongoCfg)
	if err != nil {
		return nil, errors.WrapFail(err, "create mongo client")
	}

	return c, nil
}
