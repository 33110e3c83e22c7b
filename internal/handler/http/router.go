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

	"github.com/emptrack/emptrack-backend-go/internal/handler/http/middleware"
	"github.com/emptrack/emptrack-backend-go/internal/pkg/jwt"
)

// RouterOptions carries the environment-dependent parts of the router.
type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	LogLevel       slog.Level
	// UploadsDir is served under /uploads when set.
	UploadsDir string
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	recordHandler RecordHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env == "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       opts.LogLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "emptrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if opts.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			// Open until the first admin exists, then needs an admin token
			r.With(jwtauth.Verifier(JWTService.JWTAuth())).Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication, admin only
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetEmployee)
					r.Post("/status", employeeHandler.UpdateStatus)
					r.Get("/summary", employeeHandler.GetSummary)
					r.Get("/dashboard", dashboardHandler.GetEmployeeDashboard)

					r.Route("/call-logs", func(r chi.Router) {
						r.Get("/", employeeHandler.ListCallLogs)
						r.Post("/", employeeHandler.AddCallLogs)
						r.Delete("/", employeeHandler.ClearCallLogs)
						r.Delete("/{callLogID}", employeeHandler.DeleteCallLog)
					})

					r.Route("/messages", func(r chi.Router) {
						r.Get("/", employeeHandler.ListMessages)
						r.Post("/", employeeHandler.AddMessages)
						r.Delete("/", employeeHandler.ClearMessages)
						r.Delete("/{messageID}", employeeHandler.DeleteMessage)
					})

					r.Route("/attendance", func(r chi.Router) {
						r.Get("/", attendanceHandler.ListAttendance)
						r.Post("/", attendanceHandler.RecordAttendance)
						r.Get("/calendar", attendanceHandler.GetMonthCalendar)
					})

					r.Route("/leaves", func(r chi.Router) {
						r.Get("/", leaveHandler.ListRequests)
						r.Post("/", leaveHandler.CreateRequest)
						r.Put("/{leaveID}/status", leaveHandler.UpdateStatus)
					})

					r.Get("/complaints", recordHandler.ListComplaints)
					r.Get("/salary", recordHandler.GetSalary)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", recordHandler.ListLocations)
				r.Post("/", recordHandler.CreateLocation)
			})
		})
	})
	return r
}
