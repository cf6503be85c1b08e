package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/villacare/timekeeper-backend-go/internal/handler/http/middleware"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	patternHandler PatternHandler,
	scheduleHandler ScheduleHandler,
	punchHandler PunchHandler,
	timesheetHandler TimesheetHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timekeeper"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/patterns", func(r chi.Router) {
				r.Get("/", patternHandler.List)
				r.Get("/{id}", patternHandler.Get)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Route("/assignments", func(r chi.Router) {
					r.Post("/", scheduleHandler.Assign)
					r.Get("/", scheduleHandler.ListAssignments)
					r.Get("/active", scheduleHandler.GetActiveAssignment)
				})
				r.Get("/expected", scheduleHandler.GetExpectedRange)
			})

			r.Route("/punches", func(r chi.Router) {
				r.Put("/", punchHandler.Upsert)
				r.Get("/", punchHandler.List)
				r.Get("/{id}", punchHandler.Get)
				r.Delete("/{id}", punchHandler.Delete)
			})

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.GetTimesheet)
				r.Get("/totals", timesheetHandler.GetPeriodTotals)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", reportHandler.GetMonthlyReport)
				r.Get("/monthly/export", reportHandler.ExportMonthlyReport)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
