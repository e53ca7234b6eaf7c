package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/nikmy/interviews/internal/repo/models"
	"github.com/nikmy/interviews/pkg/errors"
	"github.com/nikmy/interviews/pkg/logger"
)

const (
	requestIDLocal = "request_id"

	livenessMessage = "🚀 API Running!"
)

// NewServer builds the HTTP server. store is closed on Shutdown after the
// listener stops.
func NewServer(cfg Config, log logger.Logger, interviews interviewsAPI, store closer) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		ProxyHeader:           cfg.Proxy.Header,
		RequestMethods: []string{
			fiber.MethodGet,
			fiber.MethodHead,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodOptions,
		},
	}

	if len(cfg.Proxy.Trusted) > 0 {
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.TrustedProxies = cfg.Proxy.Trusted
	}

	s := &server{
		interviews: interviews,
		store:      store,
		addr:       cfg.HTTP.Addr,
		log:        serveLog,
	}

	fiberCfg.ErrorHandler = s.handleError
	s.http = fiber.New(fiberCfg)
	s.http.Hooks().OnListen(s.onListen)

	s.setupMiddlewares(cfg)
	s.setupRoutes()

	return s
}

type server struct {
	interviews interviewsAPI
	store      closer
	http       *fiber.App
	addr       string
	log        logger.Logger
}

func (s *server) onListen(data fiber.ListenData) error {
	s.log.Infof("listening on %s:%s", data.Host, data.Port)
	return nil
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return errors.WrapFail(err, "listen")
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	if s.store != nil {
		err = s.store.Close(ctx)
		if err != nil {
			errs = append(errs, errors.WrapFail(err, "close store"))
		}
	}

	return errors.Join(errs...)
}

func (s *server) setupMiddlewares(cfg Config) {
	s.http.Use(requestid.New(requestid.Config{ContextKey: requestIDLocal}))
	s.http.Use(recover.New())

	corsCfg := cors.ConfigDefault
	if cfg.CORS.AllowOrigins != "" {
		corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	}
	s.http.Use(cors.New(corsCfg))

	s.http.Use(s.accessLog)
}

func (s *server) setupRoutes() {
	s.http.Get("/", s.handleLiveness)

	s.http.Get("/api/interviews", s.handleList)
	s.http.Post("/api/interviews", s.handleCreate)
	s.http.Put("/api/interviews/:id/accept", s.handleAccept)
	s.http.Put("/api/interviews/:id/decline", s.handleDecline)
	s.http.Delete("/api/interviews/:id", s.handleDelete)
}

func (s *server) handleLiveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": livenessMessage})
}

func (s *server) handleList(c *fiber.Ctx) error {
	all, err := s.interviews.List(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "interviews": all})
}

func (s *server) handleCreate(c *fiber.Ctx) error {
	var req createRequest

	// only JSON bodies are read, anything else is an empty request
	if len(c.Body()) > 0 && c.Is("json") {
		err := c.BodyParser(&req)
		if err != nil {
			return errors.WithKind(errors.WrapFail(err, "parse interview payload"), errors.KindInvalidInput)
		}
	}

	created, err := s.interviews.Create(c.UserContext(), req.Date.value, req.Time.value)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "interview": created})
}

func (s *server) handleAccept(c *fiber.Ctx) error {
	return s.respondInterview(c, s.interviews.Accept)
}

func (s *server) handleDecline(c *fiber.Ctx) error {
	return s.respondInterview(c, s.interviews.Decline)
}

func (s *server) respondInterview(
	c *fiber.Ctx,
	update func(ctx context.Context, id string) (*models.Interview, error),
) error {
	updated, err := update(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "interview": updated})
}

func (s *server) handleDelete(c *fiber.Ctx) error {
	err := s.interviews.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// handleError reports every failure of the routes above as 500. Routing
// errors produced by fiber itself keep their status.
func (s *server) handleError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}

	log := s.log.WithFields(
		"request_id", c.Locals(requestIDLocal),
		"method", c.Method(),
		"path", c.Path(),
		"kind", errors.KindOf(err).String(),
	)

	switch {
	case status < http.StatusInternalServerError:
		log.Debug(err)
	case errors.KindOf(err) == errors.KindInvalidInput, errors.KindOf(err) == errors.KindNotFound:
		log.Warn(err)
	default:
		log.Error(err)
	}

	return s.sendError(c, status, err.Error())
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func (s *server) accessLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = http.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
	}

	s.log.Debugf("%s %s -> %d in %s", c.Method(), c.OriginalURL(), status, time.Since(start))
	return err
}
