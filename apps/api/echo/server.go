package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/aulahub/academia/core"
	"github.com/aulahub/academia/core/answer"
	"github.com/aulahub/academia/core/enrollment"
	"github.com/aulahub/academia/core/exam"
	"github.com/aulahub/academia/core/grade"
	"github.com/aulahub/academia/core/question"
	"github.com/aulahub/academia/core/student"
	"github.com/aulahub/academia/core/subject"
)

type (
	ServerDeps struct {
		dig.In

		Conf       *core.Config
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator

		StudentSvc    *student.Service
		SubjectSvc    *subject.Service
		EnrollmentSvc *enrollment.Service
		ExamSvc       *exam.Service
		QuestionSvc   *question.Service
		AnswerSvc     *answer.Service
		GradeSvc      *grade.Service
	}

	Server struct {
		conf     *core.Config
		app      *echo.Echo
		auth     *JWTAuth
		registry *prometheus.Registry
		errors   chan error
		shutdown chan os.Signal
	}
)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		conf:     deps.Conf,
		app:      echo.New(),
		auth:     NewJWTAuth(deps.Conf),
		registry: prometheus.NewRegistry(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup(deps)
	return s
}

func (s *Server) setup(deps ServerDeps) {
	s.app.HideBanner = true
	s.app.Debug = s.conf.Debug
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger, deps.Translator, s.SignalShutdown)

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !s.conf.Server.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(newMetrics(s.registry).middleware)

	s.app.GET("/", home)
	s.app.GET("/health", health)
	s.app.GET("/metrics", metricsHandler(s.registry))

	g := s.app.Group("/api")
	jwt := s.auth.Middleware()

	registerAuthenticationAPI(g, jwt, s.auth, deps.StudentSvc, deps.Validate)
	registerStudentAPI(g, deps.StudentSvc, deps.Validate)
	registerSubjectAPI(g, deps.SubjectSvc, deps.Validate)
	registerEnrollmentAPI(g, deps.EnrollmentSvc, deps.Validate)
	registerExamAPI(g, deps.ExamSvc, deps.Validate)
	registerQuestionAPI(g, deps.QuestionSvc, deps.Validate)
	registerAnswerAPI(g, deps.AnswerSvc, deps.Validate)
	registerGradeAPI(g, deps.GradeSvc, deps.Validate)
}

// Start listens on the configured address. Errors are reported on Errors().
func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

// SignalShutdown asks the process to shut down gracefully.
func (s *Server) SignalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Academia API!")
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
