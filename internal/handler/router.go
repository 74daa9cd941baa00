package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/taskboard/taskboard-go/internal/middleware"
)

// NewRouter assembles the API routes. Task routes sit behind the coarse
// bearer gate; the handlers still verify the token themselves.
func NewRouter(auth *AuthHandler, tasks *TaskHandler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth/register", auth.HandleRegister)
	r.Post("/api/auth/login", auth.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireBearer)
		r.Get("/api/tasks", tasks.HandleListTasks)
		r.Post("/api/tasks", tasks.HandleCreateTask)
		r.Put("/api/tasks/{id}", tasks.HandleUpdateTask)
		r.Delete("/api/tasks/{id}", tasks.HandleDeleteTask)
	})

	return r
}
