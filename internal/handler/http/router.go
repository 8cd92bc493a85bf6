package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/config"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/user"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/handler/http/middleware"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	overtimeHandler OvertimeHandler,
	holidayHandler HolidayHandler,
	notificationHandler NotificationHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "otms"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Post("/activate", authHandler.ActivateAccount)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.LoginWithGoogle)
				r.Get("/callback/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// SSE stream authenticates via short-lived query token
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/session", authHandler.Session)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
				r.Patch("/{id}/read", notificationHandler.MarkAsRead)
				r.Patch("/read-all", notificationHandler.MarkAllAsRead)
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Create)
				r.Get("/", overtimeHandler.List)
				r.Get("/{id}", overtimeHandler.Get)
				r.Post("/{id}/cancel", overtimeHandler.Cancel)

				r.With(middleware.RequirePermission(user.PermissionVerifyOvertime)).
					Post("/{id}/verify", overtimeHandler.Verify)
				r.With(middleware.RequirePermission(user.PermissionApproveOvertime)).
					Post("/{id}/approve", overtimeHandler.Approve)
				r.With(middleware.RequirePermission(user.PermissionApproveOvertime)).
					Post("/{id}/reject", overtimeHandler.Reject)
				r.With(middleware.RequirePermission(user.PermissionReviewOvertime)).
					Post("/{id}/review", overtimeHandler.Review)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageEmployees))
				r.Post("/", employeeHandler.Create)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Use(middleware.RequireManagement)
				r.Post("/", masterHandler.CreateCompany)
				r.Get("/", masterHandler.ListCompanies)
				r.Get("/{id}", masterHandler.GetCompany)
				r.Put("/{id}", masterHandler.UpdateCompany)
				r.Delete("/{id}", masterHandler.DeleteCompany)
			})

			r.Route("/master", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionManageMasterData))
				r.Route("/departments", func(r chi.Router) {
					r.Post("/", masterHandler.CreateDepartment)
					r.Get("/", masterHandler.ListDepartments)
					r.Put("/{id}", masterHandler.UpdateDepartment)
					r.Delete("/{id}", masterHandler.DeleteDepartment)
				})
				r.Route("/positions", func(r chi.Router) {
					r.Post("/", masterHandler.CreatePosition)
					r.Get("/", masterHandler.ListPositions)
					r.Put("/{id}", masterHandler.UpdatePosition)
					r.Delete("/{id}", masterHandler.DeletePosition)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionManageHolidays))
					r.Post("/", holidayHandler.Create)
					r.Put("/{id}", holidayHandler.Update)
					r.Delete("/{id}", holidayHandler.Delete)
					r.Post("/sync", holidayHandler.Sync)
				})
			})

			r.Route("/thresholds", func(r chi.Router) {
				r.Get("/", holidayHandler.GetThreshold)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionManageThresholds))
					r.Put("/", holidayHandler.UpsertThreshold)
					r.Get("/history", holidayHandler.ThresholdHistory)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionViewReports))
				r.Get("/overtime/monthly", reportHandler.MonthlyOvertime)
				r.Get("/overtime/monthly/csv", reportHandler.MonthlyOvertimeCSV)
				r.Get("/overtime/monthly/pdf", reportHandler.MonthlyOvertimePDF)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", reportHandler.EmployeeDashboard)
				r.With(middleware.RequirePermission(user.PermissionViewReports)).
					Get("/company", reportHandler.CompanyDashboard)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
