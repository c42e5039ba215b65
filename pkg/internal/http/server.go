package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"github.com/almamun2b/portfolio-api/pkg/internal/apperror"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/api"
	"github.com/almamun2b/portfolio-api/pkg/internal/http/exts"
)

type Server struct {
	app *fiber.App
}

func NewServer(controllers *api.Controllers) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Portfolio API",
		ServerHeader:          "portfolio-api",
		DisableStartupMessage: true,
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler:          renderError,
	})

	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("Handled a request.")
		return err
	})

	controllers.MapControllers(app, "/api/v1")

	return &Server{app: app}
}

// renderError maps the closed error-kind set to distinct status codes and
// keeps internal detail out of the body.
func renderError(c *fiber.Ctx, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = fiber.StatusConflict
		}
		return c.Status(status).JSON(exts.Payload{Success: false, Message: appErr.Message})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(exts.Payload{Success: false, Message: fiberErr.Message})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("An error occurred when handling a request...")
	return c.Status(fiber.StatusInternalServerError).JSON(exts.Payload{
		Success: false,
		Message: "an internal error occurred",
	})
}

func (s *Server) Listen(addr string) {
	if err := s.app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying fiber instance for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
