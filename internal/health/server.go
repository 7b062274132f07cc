package health

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"commabot/internal/quiz"
)

// Server exposes the keep-alive endpoints a free-tier host pings. It only
// reads the engine's aggregate counters and never touches business state.
type Server struct {
	app       *fiber.App
	engine    *quiz.Engine
	log       *zap.Logger
	startedAt time.Time
}

func New(engine *quiz.Engine, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		app:       app,
		engine:    engine,
		log:       log,
		startedAt: time.Now(),
	}

	app.Get("/", s.root)
	app.Get("/ping", s.ping)
	app.Get("/health", s.health)

	return s
}

// Run serves until ctx is cancelled, then shuts down.
func (s *Server) Run(ctx context.Context, port int) {
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			s.log.Error("health server shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%d", port)
	s.log.Info("health server listening", zap.String("addr", addr))
	if err := s.app.Listen(addr); err != nil {
		s.log.Error("health server stopped", zap.Error(err))
	}
}

func (s *Server) root(c *fiber.Ctx) error {
	users, exampleCount, totalTests := s.engine.Aggregates()
	return c.SendString(fmt.Sprintf(
		"Тренажёр запятой перед «и»\nПользователей: %d\nПримеров: %d\nТестов пройдено: %d\n",
		users, exampleCount, totalTests))
}

func (s *Server) ping(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (s *Server) health(c *fiber.Ctx) error {
	users, exampleCount, totalTests := s.engine.Aggregates()
	return c.JSON(fiber.Map{
		"status":      "ok",
		"users":       users,
		"examples":    exampleCount,
		"total_tests": totalTests,
		"uptime":      time.Since(s.startedAt).Round(time.Second).String(),
	})
}
