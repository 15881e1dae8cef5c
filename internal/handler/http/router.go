package http

import (
	"log/slog"
	"os"

	"github.com/csi515/beautyhub-backend-go/internal/config"
	"github.com/csi515/beautyhub-backend-go/internal/handler/http/middleware"
	"github.com/csi515/beautyhub-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg config.AppConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	staffHandler StaffHandler,
	attendanceHandler AttendanceHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "beautyhub-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Post("/", staffHandler.Create)

				r.Route("/{staffID}", func(r chi.Router) {
					r.Get("/", staffHandler.Get)
					r.Put("/", staffHandler.Update)
					r.Delete("/", staffHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Route("/records", func(r chi.Router) {
					r.Get("/", attendanceHandler.ListRecords)
					r.Post("/", attendanceHandler.CreateRecord)

					r.Route("/{recordID}", func(r chi.Router) {
						r.Get("/", attendanceHandler.GetRecord)
						r.Put("/", attendanceHandler.UpdateRecord)
						r.Delete("/", attendanceHandler.DeleteRecord)
					})
				})

				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)

				r.Route("/status", func(r chi.Router) {
					r.Get("/", attendanceHandler.StatusBoard)
					r.Get("/{staffID}", attendanceHandler.StaffStatus)
				})

				r.Get("/timeline", attendanceHandler.Timeline)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/templates", scheduleHandler.ListTemplates)
				r.Post("/recurring", scheduleHandler.GenerateRecurring)
				r.Post("/apply-template", scheduleHandler.ApplyTemplate)
				r.Post("/bulk-assign", scheduleHandler.BulkAssign)
			})
		})
	})

	return r
}
