// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/relief-activity-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/activity"
	"github.com/jsamuelsen11/relief-activity-service/internal/domain/validation"
	"github.com/jsamuelsen11/relief-activity-service/internal/platform/i18n"
	"github.com/jsamuelsen11/relief-activity-service/internal/ports"
)

const (
	defaultMaxBatchSize = 100
	batchLocation       = "body.activities"
)

// ActivityHandler serves the activity dry-run and submission endpoints.
type ActivityHandler struct {
	svc          ports.ActivityService
	catalog      *i18n.Catalog
	maxBatchSize int
	maxBodyBytes int64
}

// ActivityHandlerOption configures an ActivityHandler.
type ActivityHandlerOption func(*ActivityHandler)

// WithMaxBatchSize bounds the number of activities in one batch request.
func WithMaxBatchSize(n int) ActivityHandlerOption {
	return func(h *ActivityHandler) {
		if n > 0 {
			h.maxBatchSize = n
		}
	}
}

// WithMaxBodyBytes bounds the size of request bodies.
func WithMaxBodyBytes(n int64) ActivityHandlerOption {
	return func(h *ActivityHandler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewActivityHandler creates an ActivityHandler. Messages are rendered from
// catalog in the request's negotiated locale.
func NewActivityHandler(svc ports.ActivityService, catalog *i18n.Catalog, opts ...ActivityHandlerOption) *ActivityHandler {
	h := &ActivityHandler{
		svc:          svc,
		catalog:      catalog,
		maxBatchSize: defaultMaxBatchSize,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Validate handles POST /api/v1/activities/validate. Rule failures are a
// 200 response with valid=false.
func (h *ActivityHandler) Validate(w http.ResponseWriter, r *http.Request) {
	l := localizerFor(r, h.catalog)

	var body dto.ActivityRequest
	if !decodeBody(w, r, h.maxBodyBytes, &body, l) {
		return
	}

	res, err := h.svc.Validate(r.Context(), body.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, l)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToValidationResponse(res, l))
}

// ValidateBatch handles POST /api/v1/activities/validate/batch.
func (h *ActivityHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	l := localizerFor(r, h.catalog)

	var body dto.BatchActivityRequest
	if !decodeBody(w, r, h.maxBodyBytes, &body, l) {
		return
	}

	switch n := len(body.Activities); {
	case n == 0:
		h.writeBatchSizeProblem(w, r, l, validation.CodeCollectionEmpty, "batch_empty")
		return
	case n > h.maxBatchSize:
		h.writeBatchSizeProblem(w, r, l, validation.CodeCollectionTooLarge, "batch_too_large")
		return
	}

	reqs := make([]*activity.Request, len(body.Activities))
	for i, a := range body.Activities {
		reqs[i] = a.ToDomain()
	}

	items := h.svc.ValidateBatch(r.Context(), reqs)

	results := make([]*validation.Result, len(items))
	for i, item := range items {
		// Item errors are request-wide (misconfiguration, cancellation), so the
		// first one fails the whole batch.
		if item.Err != nil {
			dto.WriteErrorResponse(w, r, item.Err, l)
			return
		}
		results[i] = item.Result
	}

	writeJSON(w, r, http.StatusOK, dto.ToBatchResponse(results, l))
}

// Submit handles POST /api/v1/activities. Accepted proposals are queued for
// moderation and answered with 202; rejections are a 400 problem listing
// every failed rule.
func (h *ActivityHandler) Submit(w http.ResponseWriter, r *http.Request) {
	l := localizerFor(r, h.catalog)

	var body dto.ActivityRequest
	if !decodeBody(w, r, h.maxBodyBytes, &body, l) {
		return
	}

	sub, err := h.svc.Submit(r.Context(), body.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err, l)
		return
	}

	writeJSON(w, r, http.StatusAccepted, dto.ToSubmissionResponse(sub))
}

func (h *ActivityHandler) writeBatchSizeProblem(w http.ResponseWriter, r *http.Request, l dto.Localizer, code validation.Code, key string) {
	params := map[string]any{"max": h.maxBatchSize}
	msg := l.Error(key, params)

	dto.WriteProblem(w, r, dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusBadRequest),
		Status:   http.StatusBadRequest,
		Detail:   msg,
		Instance: r.URL.Path,
		Errors: []dto.ErrorDetail{{
			Location: batchLocation,
			Code:     code.String(),
			Message:  msg,
			Params:   params,
		}},
	})
}
