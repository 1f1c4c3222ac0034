package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/webtools/pkg/logger"
	"github.com/dmitrymomot/webtools/pkg/useragent"
)

// BatchRequest is the body of POST /v1/classify.
type BatchRequest struct {
	UserAgents []string `json:"user_agents"`
}

// classifyOne handles GET /v1/classify?ua=. Without the parameter the
// caller's own User-Agent header is classified.
func (a *API) classifyOne(w http.ResponseWriter, r *http.Request) {
	raw := r.UserAgent()
	if r.URL.Query().Has("ua") {
		raw = r.URL.Query().Get("ua")
	}
	if err := a.checkLength(raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_user_agent", err)
		return
	}
	writeData(w, a.classifier.Parse(raw).View())
}

// classifyBatch handles POST /v1/classify. Results keep the request order.
func (a *API) classifyBatch(w http.ResponseWriter, r *http.Request) {
	if a.cfg.MaxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxBodyBytes)
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_body", ErrInvalidBody)
		return
	}

	switch {
	case len(req.UserAgents) == 0:
		writeError(w, http.StatusBadRequest, "empty_batch", ErrEmptyBatch)
		return
	case a.cfg.MaxBatchSize > 0 && len(req.UserAgents) > a.cfg.MaxBatchSize:
		writeError(w, http.StatusBadRequest, "batch_too_large",
			errors.Join(ErrBatchTooLarge, fmt.Errorf("got %d, limit %d", len(req.UserAgents), a.cfg.MaxBatchSize)))
		return
	}

	views := make([]useragent.View, len(req.UserAgents))
	for i, raw := range req.UserAgents {
		if err := a.checkLength(raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_user_agent", fmt.Errorf("user_agents[%d]: %w", i, err))
			return
		}
		views[i] = a.classifier.Parse(raw).View()
	}
	writeData(w, views)
}

// whoami returns the classification stored by the user agent middleware.
func (a *API) whoami(w http.ResponseWriter, r *http.Request) {
	ua, ok := useragent.FromContext(r.Context())
	if !ok {
		ua = a.classifier.Parse(r.UserAgent())
	}
	writeData(w, ua.View())
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	snap, err := a.recorder.Snapshot(r.Context())
	if err != nil {
		a.log.ErrorContext(r.Context(), "failed to read stats", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, "stats_unavailable", errStatsUnavailable)
		return
	}
	writeData(w, snap)
}

func (a *API) checkLength(raw string) error {
	if a.cfg.MaxUserAgentLength > 0 && len(raw) > a.cfg.MaxUserAgentLength {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLong, len(raw), a.cfg.MaxUserAgentLength)
	}
	return nil
}
