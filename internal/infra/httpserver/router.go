package httpserver

import (
    "encoding/json"
    "errors"
    "net/http"
    "time"

    "github.com/apex/log"
    "github.com/go-chi/chi/v5"
    "github.com/go-chi/cors"

    appai "github.com/medicode-ai/medicode/internal/application/ai"
    domai "github.com/medicode-ai/medicode/internal/domain/ai"
    "github.com/medicode-ai/medicode/internal/middleware"
)

type Router struct {
	aiSvc *appai.Service
	log   log.Interface
}

// NewRouter wires the proxy endpoints consumed by the browser app and the CLI:
// POST /api/analyze-image and POST /api/chat, plus health and metrics.
func NewRouter(aiSvc *appai.Service, upstreamKey string, logger log.Interface) http.Handler {
	if logger == nil {
		logger = log.Log
	}
	r := &Router{aiSvc: aiSvc, log: logger}
	mux := chi.NewRouter()

	// Browser clients call the proxy cross-origin.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware(logger))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 1))

	mux.Get("/health", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"upstream": &middleware.UpstreamConfigChecker{APIKey: upstreamKey},
	}))
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/api", func(rt chi.Router) {
		rt.Post("/analyze-image", r.wrap(r.handleAnalyzeImage))
		rt.Post("/chat", r.wrap(r.handleChat))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// badRequestError marks client-side input problems so wrap can answer 400.
type badRequestError struct{ err error }

func (e badRequestError) Error() string { return e.err.Error() }

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
    return func(w http.ResponseWriter, req *http.Request) {
        if err := h(w, req); err != nil {
            var bad badRequestError
            if errors.As(err, &bad) {
                writeError(w, http.StatusBadRequest, bad.Error())
                return
            }
            if errors.Is(err, domai.ErrQuotaExceeded) {
                writeError(w, http.StatusTooManyRequests, "ai quota exceeded")
                return
            }
            r.log.WithError(err).Error("request failed")
            writeError(w, http.StatusInternalServerError, "Failed to process your request.")
        }
    }
}

// Errors go out as `{"error": "..."}` per the proxy contract.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// POST /api/analyze-image
// Body: {"imageData": "<data-URI>"}
func (r *Router) handleAnalyzeImage(w http.ResponseWriter, req *http.Request) error {
    var body struct {
        ImageData string `json:"imageData"`
    }
    if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
        return badRequestError{err}
    }
    if err := middleware.ValidateImageData(body.ImageData); err != nil {
        return badRequestError{err}
    }

    middleware.IncrementAnalyses()
    res, err := r.aiSvc.AnalyzeImage(req.Context(), body.ImageData)
    if err != nil {
        middleware.IncrementAnalysesFailed()
        return err
    }

    w.Header().Set("Content-Type", "application/json")
    return json.NewEncoder(w).Encode(res)
}

// POST /api/chat
// Body: {"userMessage": "<free text>"}
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) error {
    var body struct {
        UserMessage string `json:"userMessage"`
    }
    if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
        return badRequestError{err}
    }
    if err := middleware.ValidateChatMessage(body.UserMessage); err != nil {
        return badRequestError{err}
    }

    middleware.IncrementChats()
    res, err := r.aiSvc.Chat(req.Context(), middleware.SanitizeString(body.UserMessage))
    if err != nil {
        middleware.IncrementChatsFailed()
        return err
    }

    resp := map[string]any{
        "result":      res.Result,
        "tamilResult": res.TamilResult,
        "hindiResult": res.HindiResult,
        "timestamp":   time.Now().UTC(),
    }
    w.Header().Set("Content-Type", "application/json")
    return json.NewEncoder(w).Encode(resp)
}
