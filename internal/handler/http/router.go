package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/transwerk/personal-backend-go/internal/handler/http/middleware"
	"github.com/transwerk/personal-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	paymentHandler PaymentHandler,
	documentHandler DocumentHandler,
	leaveHandler LeaveHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "personal-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/mitarbeiter", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Get("/jahresuebersicht", employeeHandler.Jahresuebersicht)
				})
			})

			r.Route("/zahlungen", func(r chi.Router) {
				r.Get("/", paymentHandler.ListByMonth)
				r.Post("/", paymentHandler.Create)
				r.Delete("/{id}", paymentHandler.Delete)
			})

			r.Route("/dokumente", func(r chi.Router) {
				r.Get("/", documentHandler.List)
				r.Post("/", documentHandler.Create)
				r.Get("/{id}/datei", documentHandler.GetFile)
				r.Delete("/{id}", documentHandler.Delete)
			})

			r.Route("/urlaub", func(r chi.Router) {
				r.Get("/", leaveHandler.ListByYear)
				r.Post("/", leaveHandler.Create)
				r.Put("/{id}/status", leaveHandler.UpdateStatus)
				r.Delete("/{id}", leaveHandler.Delete)
			})

			r.Get("/dashboard", dashboardHandler.GetSummary)

			r.Route("/reports", func(r chi.Router) {
				r.Get("/zahlungen.xlsx", reportHandler.YearlyPaymentsXLSX)
				r.Get("/payslip.pdf", reportHandler.PayslipPDF)
			})
		})
	})
	return r
}
