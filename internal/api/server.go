package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/northflank-guides/go-with-postgres/internal/model"
)

// Store is the database surface the handlers need. *db.DB satisfies it.
type Store interface {
	Insert(ctx context.Context, name string) error
	ReadByName(ctx context.Context, name string) ([]model.Record, error)
	DropTable(ctx context.Context) error
}

type Server struct {
	store  Store
	router *chi.Mux
}

func NewServer(store Store) *Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(recoveryMiddleware()) // responds with the JSON error body
	router.Use(corsMiddleware())

	s := &Server{
		store:  store,
		router: router,
	}
	s.registerHandlers()
	return s
}

func (s *Server) registerHandlers() {
	s.router.Get("/read", s.handleRead)
	s.router.Get("/write", s.handleWrite)
	s.router.Get("/delete", s.handleDelete)
	s.router.NotFound(s.handleNotFound)
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// StartServer serves on addr until ctx is cancelled, then closes the
// listener without draining in-flight requests.
func (s *Server) StartServer(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Println("Listening on: http://" + addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("error starting server: %w", err)
	case <-ctx.Done():
		if err := srv.Close(); err != nil {
			return fmt.Errorf("error closing server: %w", err)
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Panic recovery that answers with the same JSON error body handlers use.
func recoveryMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Printf("recovered from panic: %v", err)
					debug.PrintStack()
					writeResult(w, http.StatusInternalServerError,
						fmt.Sprintf("some error happened while processing the request: %v", err))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// CORS middleware using github.com/rs/cors
func corsMiddleware() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler
}
