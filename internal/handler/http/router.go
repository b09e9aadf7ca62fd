package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nexhr/hr-panel-go/internal/config"
	"github.com/nexhr/hr-panel-go/internal/handler/http/middleware"
	"github.com/nexhr/hr-panel-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth        AuthHandler
	Attendance  AttendanceHandler
	Employee    EmployeeHandler
	SalarySlip  SalarySlipHandler
	Certificate CertificateHandler
	Catalog     CatalogHandler
	Document    DocumentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-panel"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Public marketing-site surface
		r.Get("/public/services", h.Catalog.List)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Post("/leave", h.Attendance.RequestLeave)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/summary", h.Attendance.MonthlySummary)
				r.Get("/my", h.Attendance.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
					r.Post("/holiday", h.Attendance.MarkHoliday)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Deactivate)
				})

				r.Route("/salary-slips", func(r chi.Router) {
					r.Post("/", h.SalarySlip.CreateDraft)
					r.Get("/", h.SalarySlip.List)
					r.Get("/{id}", h.SalarySlip.Get)
					r.Put("/{id}", h.SalarySlip.UpdateDraft)
					r.Delete("/{id}", h.SalarySlip.DeleteDraft)
					r.Post("/{id}/publish", h.SalarySlip.Publish)
					r.Get("/{id}/pdf", h.SalarySlip.ExportPDF)
				})

				r.Route("/certificates", func(r chi.Router) {
					r.Post("/", h.Certificate.Create)
					r.Get("/", h.Certificate.List)
					r.Get("/{id}", h.Certificate.Get)
					r.Put("/{id}", h.Certificate.Update)
					r.Delete("/{id}", h.Certificate.Delete)
					r.Post("/{id}/issue", h.Certificate.Issue)
				})

				r.Route("/documents", func(r chi.Router) {
					r.Post("/offer-letter", h.Document.OfferLetter)
					r.Post("/experience-letter", h.Document.ExperienceLetter)
				})

				r.Route("/services", func(r chi.Router) {
					r.Post("/", h.Catalog.Create)
					r.Get("/", h.Catalog.List)
					r.Get("/{id}", h.Catalog.Get)
					r.Put("/{id}", h.Catalog.Update)
					r.Delete("/{id}", h.Catalog.Delete)
				})
			})
		})
	})
	return r
}
