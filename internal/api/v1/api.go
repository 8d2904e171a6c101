// Package v1 implements the moviemagic REST API.
package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vmunix/moviemagic/internal/omdb"
)

// Error codes returned in the "code" field of error bodies.
const (
	codeBadRequest = "BAD_REQUEST"
	codeNotFound   = "NOT_FOUND"
	codeUpstream   = "UPSTREAM_ERROR"
)

const msgInvalidReview = "Invalid review data. 'rating' and 'comment' are required."

// Config holds API server configuration.
type Config struct {
	Version string
}

// Server is the v1 API server.
type Server struct {
	deps     ServerDeps
	cfg      Config
	validate *validator.Validate
	log      *slog.Logger
}

// New creates a new v1 API server.
func New(deps ServerDeps, cfg Config, logger *slog.Logger) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		deps:     deps,
		cfg:      cfg,
		validate: validator.New(),
		log:      logger,
	}, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Movies
	mux.HandleFunc("GET /api/search", s.searchMovies)
	mux.HandleFunc("GET /api/movie/{id}", s.getMovie)

	// Reviews
	mux.HandleFunc("GET /api/review/{id}", s.listReviews)
	mux.HandleFunc("POST /api/review/{id}", s.addReview)

	// System
	mux.HandleFunc("GET /api/status", s.getStatus)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Query parameter is required.")
		return
	}

	results, err := s.deps.Movies.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, omdb.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, codeBadRequest, "Query parameter is required.")
			return
		}
		s.log.Warn("search failed", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, codeUpstream, "Failed to fetch data from OMDb API.")
		return
	}
	if results == nil {
		results = []omdb.Summary{}
	}

	s.log.Debug("search", "query", query, "results", len(results))
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	movie, err := s.deps.Movies.GetMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			writeError(w, http.StatusNotFound, codeNotFound, "Movie not found.")
			return
		}
		s.log.Warn("movie lookup failed", "imdb_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, codeUpstream, "Failed to fetch movie details from OMDb API.")
		return
	}

	// Copy so the upstream document is never mutated in place.
	resp := make(omdb.Document, len(movie)+1)
	for k, v := range movie {
		resp[k] = v
	}
	resp["user_reviews"] = s.deps.Reviews.List(id)

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Reviews.List(r.PathValue("id")))
}

func (s *Server) addReview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req addReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Debug("invalid review body", "imdb_id", id, "error", err)
		writeError(w, http.StatusBadRequest, codeBadRequest, msgInvalidReview)
		return
	}
	if err := s.validate.StructCtx(r.Context(), req); err != nil {
		s.log.Debug("invalid review", "imdb_id", id, "error", err)
		writeError(w, http.StatusBadRequest, codeBadRequest, msgInvalidReview)
		return
	}

	rv, err := req.toReview()
	if err != nil {
		s.log.Debug("invalid review", "imdb_id", id, "error", err)
		writeError(w, http.StatusBadRequest, codeBadRequest, msgInvalidReview)
		return
	}

	s.deps.Reviews.Append(id, rv)
	s.log.Info("review added", "imdb_id", id, "count", s.deps.Reviews.Count(id))

	writeJSON(w, http.StatusCreated, messageResponse{Message: "Review added successfully!"})
}

func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: s.cfg.Version,
		Reviews: s.deps.Reviews.Stats(),
	})
}
