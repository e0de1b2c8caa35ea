package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ledgerd/internal/catalog"
	"ledgerd/internal/service"
)

// Server is the JSON transport shell around the ledger operations. Each
// operation is one route; the typed result objects the service produces
// are written back as-is.
type Server struct {
	http.Server
	ledger  *service.Ledger
	catalog *catalog.Catalog
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server.
func NewServer(addr string, ledger *service.Ledger, cat *catalog.Catalog) *Server {
	s := &Server{
		ledger:  ledger,
		catalog: cat,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleReady)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/expenses", s.handleAddExpense)
		r.Get("/expenses", s.handleListExpenses)
		r.Delete("/expenses/{id}", s.handleDeleteExpense)
		r.Post("/expenses/delete", s.handleDeleteExpenses)
		r.Patch("/expenses/{id}", s.handleUpdateExpense)
		r.Get("/summary", s.handleSummarize)
		r.Get("/categories", s.handleGetCategories)
	})

	s.Server = http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

// requestLogger logs one line per request with status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.InfoContext(r.Context(), "Request completed",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"url", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
