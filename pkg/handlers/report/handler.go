package report

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/de-tools/offer-atlas/pkg/adapters"
	"github.com/de-tools/offer-atlas/pkg/models/api"
	"github.com/de-tools/offer-atlas/pkg/models/domain"
	"github.com/de-tools/offer-atlas/pkg/render"
	"github.com/de-tools/offer-atlas/pkg/services/consolidate"
	"github.com/de-tools/offer-atlas/pkg/services/directory"
	"github.com/de-tools/offer-atlas/pkg/services/normalize"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

type Handler struct {
	controller *consolidate.Controller
	resolver   directory.Resolver
}

// NewHandler wires the consolidation engine and an optional directory
// resolver. A nil resolver disables contact enrichment; pending owners are
// then reported by raw identifier.
func NewHandler(controller *consolidate.Controller, resolver directory.Resolver) *Handler {
	return &Handler{
		controller: controller,
		resolver:   resolver,
	}
}

func (h *Handler) Consolidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ConsolidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("malformed consolidate request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	offers := make([]domain.RawRecord, 0, len(req.Offers))
	for _, rec := range req.Offers {
		offers = append(offers, domain.RawRecord(rec))
	}
	updates := make([]domain.RawRecord, 0, len(req.Updates))
	for _, rec := range req.Updates {
		updates = append(updates, domain.RawRecord(rec))
	}

	report, err := h.controller.Consolidate(ctx, offers, updates)
	if err != nil {
		logger.Error().Err(err).Msg("consolidation failed")
		writeError(w, http.StatusInternalServerError, "consolidation failed")
		return
	}

	contacts := h.resolveContacts(ctx, report.Response.Pending)

	response := adapters.MapReportDomainToApi(report, contacts)

	card, err := render.Card(report)
	if err != nil {
		logger.Error().Err(err).Str("run_id", report.RunID).Msg("failed to render report card")
	} else {
		response.CardHTML = card
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("run_id", report.RunID).
			Msg("failed to encode consolidated report")
	}
}

func (h *Handler) Normalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn().Err(err).Msg("malformed normalize request")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	raw := make([]domain.RawRecord, 0, len(req.Offers))
	for _, rec := range req.Offers {
		raw = append(raw, domain.RawRecord(rec))
	}

	schema := normalize.ResolveSchema(raw)
	normalized := normalize.NormalizeOffers(raw, schema)

	response := make([]api.NormalizedRecord, 0, len(normalized))
	for _, rec := range normalized {
		response = append(response, adapters.MapRecordDomainToApi(rec))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode normalized records")
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	response := api.HealthResponse{
		Status:    "healthy",
		Version:   version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode health response")
	}
}

// resolveContacts looks up each pending owner in the directory. Lookups are
// best effort; a failed lookup leaves the owner out of the map and the
// adapter falls back to the raw identifier.
func (h *Handler) resolveContacts(ctx context.Context, owners []string) map[string]domain.Contact {
	if h.resolver == nil || len(owners) == 0 {
		return nil
	}
	logger := zerolog.Ctx(ctx)

	contacts := make(map[string]domain.Contact, len(owners))
	for _, owner := range owners {
		contact, err := h.resolver.ResolveOwner(ctx, owner)
		if err != nil {
			logger.Warn().Err(err).Str("owner", owner).Msg("directory lookup failed")
			continue
		}
		contacts[owner] = contact
	}
	return contacts
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Status: "error", Error: msg})
}
