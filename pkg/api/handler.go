package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/numguard/pkg/clientip"
	"github.com/dmitrymomot/numguard/pkg/i18n"
	"github.com/dmitrymomot/numguard/pkg/logger"
	"github.com/dmitrymomot/numguard/pkg/messages"
	"github.com/dmitrymomot/numguard/pkg/metrics"
	"github.com/dmitrymomot/numguard/pkg/numeric"
	"github.com/dmitrymomot/numguard/pkg/ratelimiter"
	"github.com/dmitrymomot/numguard/pkg/requestid"
	"github.com/dmitrymomot/numguard/pkg/validator"
)

const (
	// DefaultMaxBatch caps the number of values in one batch request.
	DefaultMaxBatch = 1000

	maxBodyBytes = 1 << 20
	valueField   = "value"
)

// Handler serves validation requests for a single validator.
type Handler struct {
	validator  *numeric.Validator
	translator *i18n.Translator
	logger     *slog.Logger
	metrics    *metrics.Collector
	limiter    *ratelimiter.Bucket
	ipOptions  []clientip.Option
	maxBatch   int
}

// Option configures a Handler.
type Option func(*Handler)

// WithTranslator localises rejection messages. Without it messages are
// plain English.
func WithTranslator(tr *i18n.Translator) Option {
	return func(h *Handler) { h.translator = tr }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics records verdicts in c and serves it on GET /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(h *Handler) { h.metrics = c }
}

// WithRateLimiter limits validation requests per client address. A batch
// costs one token per value.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(h *Handler) { h.limiter = b }
}

// WithTrustedProxyHeaders resolves the client address from the given
// forwarding headers before falling back to the connection address.
func WithTrustedProxyHeaders(headers ...string) Option {
	return func(h *Handler) {
		h.ipOptions = append(h.ipOptions, clientip.WithTrustedHeaders(headers...))
	}
}

// WithMaxBatch overrides DefaultMaxBatch. Non-positive values are ignored.
func WithMaxBatch(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatch = n
		}
	}
}

// New returns a handler for v. It panics on a nil validator.
func New(v *numeric.Validator, opts ...Option) *Handler {
	if v == nil {
		panic("api.New: nil validator")
	}
	h := &Handler{
		validator: v,
		logger:    logger.Discard(),
		maxBatch:  DefaultMaxBatch,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the routes on a new chi router.
func (h *Handler) Router() chi.Router {
	langs := []string{i18n.DefaultLanguage}
	def := i18n.DefaultLanguage
	if h.translator != nil {
		langs = h.translator.SupportedLanguages()
		def = h.translator.DefaultLanguage()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(h.ipOptions...))
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(langs, def))

	r.Get("/healthz", h.health)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", h.rules)
		r.Get("/validate", h.validateQuery)
		r.Post("/validate", h.validateBody)
		r.Post("/validate/batch", h.validateBatch)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) rules(w http.ResponseWriter, r *http.Request) {
	cfg := h.validator.Config()
	writeJSON(w, http.StatusOK, RulesResponse{
		Precision:    cfg.Precision,
		Scale:        cfg.Scale,
		OnlyPositive: cfg.OnlyPositive,
	})
}

func (h *Handler) validateQuery(w http.ResponseWriter, r *http.Request) {
	var value *string
	if values, ok := r.URL.Query()[valueField]; ok && len(values) > 0 {
		value = &values[0]
	}
	if !h.allow(w, r, 1) {
		return
	}
	writeJSON(w, http.StatusOK, h.check(r, value))
}

func (h *Handler) validateBody(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !h.allow(w, r, 1) {
		return
	}
	writeJSON(w, http.StatusOK, h.check(r, req.Value))
}

func (h *Handler) validateBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := validator.Apply(validator.MaxNum("values", len(req.Values), h.maxBatch)); err != nil {
		h.logger.WarnContext(r.Context(), "batch rejected", logger.Count(len(req.Values)))
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
			Error: fmt.Sprintf("%s: at most %d values allowed", ErrBatchTooLarge, h.maxBatch),
		})
		return
	}

	if !h.allow(w, r, max(len(req.Values), 1)) {
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveBatch(len(req.Values))
	}

	out := BatchResult{Results: make([]Result, 0, len(req.Values))}
	for _, value := range req.Values {
		res := h.check(r, value)
		if res.Valid {
			out.Valid++
		} else {
			out.Invalid++
		}
		out.Results = append(out.Results, res)
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) check(r *http.Request, value *string) Result {
	err := h.validator.CheckPtr(value)
	reason := numeric.Reason(err)

	h.logger.DebugContext(r.Context(), "number checked",
		logger.Input(value),
		logger.Verdict(err == nil),
		logger.Reason(reason),
	)

	if h.metrics != nil {
		h.metrics.ObserveCheck(reason)
	}

	res := Result{Value: value, Valid: err == nil}
	if err != nil {
		res.Reason = reason
		res.Message = messages.Localize(h.translator, i18n.GetLocale(r.Context()),
			h.validator.ValidationError(valueField, err))
	}
	return res
}

// allow charges cost tokens to the client. On denial it writes the
// response and returns false.
func (h *Handler) allow(w http.ResponseWriter, r *http.Request, cost int) bool {
	if h.limiter == nil {
		return true
	}

	res, err := h.limiter.AllowN(r.Context(), clientip.FromContext(r.Context()), cost)
	switch {
	case errors.Is(err, ratelimiter.ErrInvalidTokenCount):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
			Error: fmt.Sprintf("%s: at most %d values per request", ErrBatchTooLarge, h.limiter.Config().Capacity),
		})
		return false
	case err != nil:
		h.logger.ErrorContext(r.Context(), "rate limiter failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return false
	}

	ratelimiter.SetHeaders(w, res)
	if !res.Allowed {
		h.logger.InfoContext(r.Context(), "rate limited", logger.Count(cost))
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: ErrRateLimited.Error()})
		return false
	}
	return true
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.InfoContext(r.Context(), "bad request", logger.Error(err))
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// decode reads exactly one JSON value from the body. Anything but
// whitespace after it is an error.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.Join(ErrInvalidRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.Join(ErrInvalidRequest, errTrailingData)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
