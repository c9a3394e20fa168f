package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	appscans "github.com/bryanwahyu/scamshield/internal/application/scans"
	"github.com/bryanwahyu/scamshield/internal/application/source"
	domai "github.com/bryanwahyu/scamshield/internal/domain/ai"
	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
	"github.com/bryanwahyu/scamshield/internal/infra/report"
	"github.com/bryanwahyu/scamshield/internal/middleware"
)

// DefaultMaxImageBytes is used when Options.MaxImageBytes is zero.
const DefaultMaxImageBytes = 10 << 20

// Analyzer is the classifier backend served at POST /api/analyze.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (analysis.RawVerdict, error)
}

type Options struct {
	// Analyzer mounts /api/analyze when set.
	Analyzer      Analyzer
	Checkers      map[string]middleware.HealthChecker
	CORSOrigins   []string
	MaxImageBytes int64
}

type Router struct {
	scansSvc *appscans.Service
	analyzer Analyzer
	maxImage int64
}

func NewRouter(scansSvc *appscans.Service, opts Options) http.Handler {
	r := &Router{scansSvc: scansSvc, analyzer: opts.Analyzer, maxImage: opts.MaxImageBytes}
	if r.maxImage <= 0 {
		r.maxImage = DefaultMaxImageBytes
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	mux.Get("/health", middleware.HealthHandler(opts.Checkers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	if r.analyzer != nil {
		mux.Post("/api/analyze", r.handleAnalyze)
	}

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/extract", r.wrap(r.handleExtract))
		rt.Post("/scans", r.wrap(r.handleScan))
		rt.Get("/history", r.wrap(r.handleHistory))
		rt.Delete("/history", r.wrap(r.handleClearHistory))
		rt.Get("/history/export", r.wrap(r.handleExport))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, analysis.ErrEmptyInput):
				writeError(w, http.StatusBadRequest, "no text to analyze")
			case errors.Is(err, domain.ErrInvalidEntry), errors.Is(err, middleware.ErrValidation):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, analysis.ErrClassifierUnavailable):
				writeError(w, http.StatusBadGateway, "classifier unavailable, please try again")
			case errors.Is(err, domai.ErrQuotaExceeded):
				writeError(w, http.StatusTooManyRequests, "ai quota exceeded")
			default:
				log.Printf("req_id=%s handler error: %v", chimw.GetReqID(req.Context()), err)
				writeError(w, http.StatusInternalServerError, "internal error")
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	_ = writeJSON(w, status, map[string]string{"error": msg})
}

// POST /api/analyze
// Body: {"text": "..."}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(io.LimitReader(req.Body, 1<<20)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	v, err := r.analyzer.Analyze(req.Context(), body.Text)
	if errors.Is(err, analysis.ErrEmptyInput) {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}
	if err != nil {
		log.Printf("req_id=%s analyze error: %v", chimw.GetReqID(req.Context()), err)
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	if v.Keywords == nil {
		v.Keywords = []string{}
	}
	_ = writeJSON(w, http.StatusOK, v)
}

type extractResponse struct {
	Text      string `json:"text"`
	Extracted bool   `json:"extracted"`
	Error     string `json:"error,omitempty"`
}

// POST /v1/extract
// Multipart form, field "image".
func (r *Router) handleExtract(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxImage+(1<<20))
	file, hdr, err := req.FormFile("image")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return fmt.Errorf("%w: upload larger than %d bytes (image limit %d)", middleware.ErrValidation, tooBig.Limit, r.maxImage)
		}
		return fmt.Errorf("%w: multipart field \"image\" is required", middleware.ErrValidation)
	}
	defer file.Close()

	if err := middleware.ValidateImage(hdr.Header.Get("Content-Type"), hdr.Size, r.maxImage); err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(file, r.maxImage+1)); err != nil {
		return err
	}
	if int64(buf.Len()) > r.maxImage {
		return fmt.Errorf("%w: image larger than %d bytes", middleware.ErrValidation, r.maxImage)
	}

	middleware.IncrementExtractions()
	ex := r.scansSvc.Extract(req.Context(), buf.Bytes(), hdr.Header.Get("Content-Type"))
	resp := extractResponse{Text: ex.Text, Extracted: ex.Status == source.StatusExtracted}
	if ex.Err != nil {
		middleware.IncrementExtractionsFailed()
		resp.Error = ex.Err.Error()
	}
	return writeJSON(w, http.StatusOK, resp)
}

// POST /v1/scans
// Body: {"text": "...", "type": "text"|"image"}
func (r *Router) handleScan(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text string `json:"text"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(io.LimitReader(req.Body, 1<<20)).Decode(&body); err != nil {
		return fmt.Errorf("%w: invalid JSON body", middleware.ErrValidation)
	}
	typ, err := middleware.ValidateScanType(body.Type)
	if err != nil {
		return err
	}
	if err := middleware.ValidateText(body.Text); err != nil {
		return err
	}

	middleware.IncrementScans()
	start := time.Now()
	res, err := r.scansSvc.Scan(req.Context(), appscans.ScanCommand{Text: body.Text, Type: typ})
	if err != nil {
		middleware.IncrementScansFailed()
		if errors.Is(err, analysis.ErrClassifierUnavailable) {
			middleware.IncrementClassifierDown()
		}
		return err
	}
	log.Printf("req_id=%s scan id=%s type=%s risk=%s score=%d took=%s",
		chimw.GetReqID(req.Context()), res.Record.ID, res.Record.Type, res.Result.RiskLevel, res.Result.Score, time.Since(start))
	return writeJSON(w, http.StatusOK, res)
}

// GET /v1/history?q=
func (r *Router) handleHistory(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query().Get("q")
	if err := middleware.ValidateSearchTerm(q); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, r.scansSvc.SearchHistory(req.Context(), q))
}

// DELETE /v1/history
func (r *Router) handleClearHistory(w http.ResponseWriter, req *http.Request) error {
	if err := r.scansSvc.ClearHistory(req.Context()); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /v1/history/export?q=
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	q := req.URL.Query().Get("q")
	if err := middleware.ValidateSearchTerm(q); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.WriteHistory(&buf, r.scansSvc.SearchHistory(req.Context(), q)); err != nil {
		return err
	}
	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="scamshield-history.xlsx"`)
	_, err := w.Write(buf.Bytes())
	return err
}
