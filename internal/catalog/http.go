package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"LaptopStore/pkg/kit"
)

const (
	productsBody = "This is products page"
	laptopBody   = "This is laptop page for laptop "
	notFoundBody = "URL was not found on the server"
)

type Server struct {
	Store *Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", s.products)
	r.HandleFunc("/products", s.products)
	r.HandleFunc("/laptop", s.laptop)

	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func (s *Server) products(w http.ResponseWriter, _ *http.Request) {
	kit.WriteHTML(w, http.StatusOK, productsBody)
}

func (s *Server) laptop(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["id"]
	if len(ids) != 1 {
		notFound(w, r)
		return
	}
	raw := ids[0]

	id, ok := parseID(raw)
	if !ok {
		notFound(w, r)
		return
	}

	p, ok := s.Store.Get(id)
	if !ok {
		if s.Log != nil {
			s.Log.Debug("laptop not found", zap.Int("id", id), zap.Int("products", s.Store.Len()))
		}
		notFound(w, r)
		return
	}

	if s.Log != nil {
		s.Log.Debug("laptop page", zap.Int("id", id), zap.String("laptop", p.LaptopName))
	}
	kit.WriteHTML(w, http.StatusOK, laptopBody+raw)
}

// Only non-negative base-10 integers are identifiers.
func parseID(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	kit.WriteHTML(w, http.StatusNotFound, notFoundBody)
}
