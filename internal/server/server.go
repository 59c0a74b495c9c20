// Package server exposes board operations over HTTP.
//
// Records travel as request and response bodies in the same JSON format the
// CLI reads and writes, so a client keeps the board and the server stays
// stateless:
//
//	POST /boards                          -> new record
//	POST /boards/mark/{point}/{name}      record -> record
//	POST /boards/unmark/{point}           record -> record
//	POST /boards/render                   record -> image/png
//	GET  /healthz                         -> ok
//
// Failures are JSON objects {"code": ..., "message": ...} with a status
// derived from the error code.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ecbingo/ecbingo/pkg/board"
	"github.com/ecbingo/ecbingo/pkg/errors"
	"github.com/ecbingo/ecbingo/pkg/observability"
	"github.com/ecbingo/ecbingo/pkg/render"
)

// DefaultMaxRecordSize bounds request bodies. 24 markers of a few hundred KiB
// each fit comfortably.
const DefaultMaxRecordSize = 32 << 20

// ImageSource resolves an emote name to marker image bytes.
type ImageSource interface {
	Image(ctx context.Context, name string) ([]byte, error)
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger (default log.Default()).
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithRand sets the source of randomness for boards created without a seed.
func WithRand(fn func() *rand.Rand) Option { return func(s *Server) { s.rng = fn } }

// WithMaxRecordSize overrides [DefaultMaxRecordSize].
func WithMaxRecordSize(n int64) Option { return func(s *Server) { s.maxRecord = n } }

// Server handles board requests.
type Server struct {
	pool     []string
	renderer *render.Renderer
	images   ImageSource
	logger   *log.Logger
	rng      func() *rand.Rand

	maxRecord int64
}

// New creates a Server drawing categories from pool.
func New(pool []string, renderer *render.Renderer, images ImageSource, opts ...Option) *Server {
	s := &Server{
		pool:     pool,
		renderer: renderer,
		images:   images,
		logger:   log.Default(),
		rng:      func() *rand.Rand { return board.NewRand(rand.Uint64()) },

		maxRecord: DefaultMaxRecordSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok\n"))
	})
	r.Post("/boards", s.handleNew)
	r.Post("/boards/mark/{point}/{name}", s.handleMark)
	r.Post("/boards/unmark/{point}", s.handleUnmark)
	r.Post("/boards/render", s.handleRender)
	return r
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	rng := s.rng()
	if q := r.URL.Query().Get("seed"); q != "" {
		seed, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "seed"))
			return
		}
		rng = board.NewRand(seed)
	}
	b, err := board.Create(s.pool, rng)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleMark(w http.ResponseWriter, r *http.Request) {
	p, err := board.ParseMutable(chi.URLParam(r, "point"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.decodeBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := chi.URLParam(r, "name")
	blob, err := s.images.Image(r.Context(), name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	replaced := b.Marked(p)
	if replaced {
		loggerFrom(r).Info("replacing marker", "point", p, "emote", name)
	}
	if b, err = b.Mark(p, blob); err != nil {
		s.writeError(w, r, err)
		return
	}
	observability.Board().OnMark(r.Context(), p.String(), name, replaced)
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleUnmark(w http.ResponseWriter, r *http.Request) {
	p, err := board.ParseMutable(chi.URLParam(r, "point"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	b, err := s.decodeBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if b, err = b.Unmark(p); err != nil {
		s.writeError(w, r, err)
		return
	}
	observability.Board().OnUnmark(r.Context(), p.String())
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	b, err := s.decodeBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	start := time.Now()
	img, err := s.renderer.Render(b)
	observability.Board().OnRender(r.Context(), len(b.Markers()), time.Since(start), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, img); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode png"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (*board.Board, error) {
	b, err := board.Decode(http.MaxBytesReader(w, r.Body, s.maxRecord))
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return nil, errors.New(errors.ErrCodeTooLarge, "record exceeds %d bytes", tooLarge.Limit)
	}
	return b, err
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := errors.HTTPStatus(code)
	if status >= http.StatusInternalServerError {
		loggerFrom(r).Error("request failed", "err", err)
	}
	writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
