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
	"github.com/rosterly/rosterly-backend-go/internal/config"
	"github.com/rosterly/rosterly-backend-go/internal/domain/user"
	"github.com/rosterly/rosterly-backend-go/internal/handler/http/middleware"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	appCfg config.AppConfig,
	payRunHandler PayRunHandler,
	rateHandler RateHandler,
	scheduleHandler ScheduleHandler,
	tenantHandler TenantHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rosterly-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appCfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appCfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/payruns", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionViewPayRuns))
				r.Get("/", payRunHandler.List)
				r.Get("/{id}", payRunHandler.Get)
				r.Get("/{id}/changes", payRunHandler.GetChanges)
				r.Get("/{id}/export", payRunHandler.Export)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/preview", payRunHandler.Preview)
					r.Post("/", payRunHandler.Create)
					r.Patch("/{id}/lines/{lineId}", payRunHandler.UpdateLine)
					r.Post("/{id}/submit", payRunHandler.Submit)
					r.Post("/{id}/approve", payRunHandler.Approve)
					r.Post("/{id}/finalise", payRunHandler.Finalise)
					r.Delete("/{id}", payRunHandler.Delete)
				})
			})

			r.Route("/staff/{id}/rates", func(r chi.Router) {
				r.Get("/", rateHandler.GetHistory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", rateHandler.Create)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Delete("/rates/{id}", rateHandler.Delete)
			})

			r.Get("/schedule/conflicts", scheduleHandler.Conflicts)
			r.Post("/shifts/reassign-check", scheduleHandler.ReassignCheck)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/shifts/{id}/reassign", scheduleHandler.Reassign)
			})

			r.Route("/settings/payroll", func(r chi.Router) {
				r.Get("/", tenantHandler.GetPayrollPolicy)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Put("/", tenantHandler.UpdatePayrollPolicy)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	return r
}
