package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/nikmy/interviews/internal/repo/models"
	"github.com/nikmy/interviews/pkg/errors"
	"github.com/nikmy/interviews/pkg/logger"
)

const defaultDatabase = "test"

// Connect builds the client without waiting for the deployment. The first
// ping runs in background and only reports its result to log.
func Connect(ctx context.Context, log logger.Logger, cfg Config) (*Client, error) {
	opts := options.Client().ApplyURI(cfg.URL)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	database, err := databaseName(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		c:          client,
		interviews: NewInterviews(client.Database(database).Collection(cfg.Collection)),
		log:        log.With("mongo_client"),
	}

	go c.ping(ctx)

	return c, nil
}

type Client struct {
	c          *mongo.Client
	interviews Interviews
	log        logger.Logger
}

func (m *Client) Interviews() models.InterviewsRepo {
	return m.interviews
}

func (m *Client) Close(ctx context.Context) error {
	return errors.WrapFail(m.c.Disconnect(ctx), "disconnect from mongo db")
}

func (m *Client) ping(ctx context.Context) {
	err := m.c.Ping(ctx, readpref.Primary())
	if err != nil {
		m.log.Error(errors.WrapFail(err, "ping mongo db"))
		return
	}

	m.log.Infof("mongo db connected")
}

func databaseName(cfg Config) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URL)
	if err != nil {
		return "", errors.WrapFail(err, "parse mongo connection string")
	}

	if cs.Database != "" {
		return cs.Database, nil
	}

	return defaultDatabase, nil
}
