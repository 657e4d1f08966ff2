package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hr-records/internal/config"
	"hr-records/internal/handler"
	"hr-records/internal/middleware"
	"hr-records/internal/model"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	employeeHandler *handler.EmployeeHandler,
	uploadsRoot string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusOK, model.Response{Success: true, Message: "hr-records service"})
	})

	// Stored attachments are served back read-only with no auth gate.
	if uploadsRoot != "" {
		fileServer := http.FileServer(http.Dir(uploadsRoot))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	r.Route("/user", func(user chi.Router) {
		user.Use(middleware.Timeout(cfg.RequestTimeout))
		user.Post("/signup", authHandler.Signup)
		user.Post("/login", authHandler.Login)
	})

	r.Route("/emp", func(emp chi.Router) {
		emp.Use(middleware.Timeout(cfg.RequestTimeout))
		emp.Use(authMiddleware.RequireAuth)
		emp.Get("/employees", employeeHandler.List)
		emp.Get("/employees/search", employeeHandler.Search)
		emp.Post("/employees", employeeHandler.Create)
		emp.Get("/employees/{eid}", employeeHandler.Get)
		emp.Put("/employees/{eid}", employeeHandler.Update)
		emp.Delete("/employees", employeeHandler.Delete)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusNotFound, model.Response{Success: false, Message: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusMethodNotAllowed, model.Response{Success: false, Message: "Method Not Allowed"})
	})

	return r
}

func writeBody(w http.ResponseWriter, status int, body model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
