package handler

import (
	"net/http"
	"strings"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PartyHandler serves the per-party read views
type PartyHandler struct {
	projectionService *service.ProjectionService
	logger            *zap.Logger
}

// NewPartyHandler creates a new PartyHandler instance
func NewPartyHandler(projectionService *service.ProjectionService, logger *zap.Logger) *PartyHandler {
	return &PartyHandler{
		projectionService: projectionService,
		logger:            logger,
	}
}

// partyID resolves the {partyId} path parameter, where "me" stands for the caller
func (h *PartyHandler) partyID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "partyId"))
	if id == "" || id == "me" {
		party, ok := auth.FromContext(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, domain.ErrorTypeUnauthorized, "Authentication required")
			return "", false
		}
		return party.PartyID, true
	}
	return id, true
}

// Negotiations godoc
// @Summary List active negotiations
// @Description Open bids on active campaigns where the party is the bidder or the campaign creator
// @Tags Parties
// @Produce json
// @Param partyId path string true "Party ID, or me for the caller"
// @Success 200 {array} domain.BidDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /parties/{partyId}/negotiations [get]
func (h *PartyHandler) Negotiations(w http.ResponseWriter, r *http.Request) {
	partyID, ok := h.partyID(w, r)
	if !ok {
		return
	}

	bids, err := h.projectionService.ActiveNegotiations(r.Context(), partyID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list negotiations")
		return
	}
	respondJSON(w, http.StatusOK, bids)
}

// Contracts godoc
// @Summary List party contracts
// @Description Every contract where the party is the farmer or the buyer
// @Tags Parties
// @Produce json
// @Param partyId path string true "Party ID, or me for the caller"
// @Success 200 {array} domain.ContractDTO
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /parties/{partyId}/contracts [get]
func (h *PartyHandler) Contracts(w http.ResponseWriter, r *http.Request) {
	partyID, ok := h.partyID(w, r)
	if !ok {
		return
	}

	contracts, err := h.projectionService.ContractsFor(r.Context(), partyID)
	if err != nil {
		respondServiceError(w, h.logger, err, "list party contracts")
		return
	}
	respondJSON(w, http.StatusOK, contracts)
}

// Stats godoc
// @Summary Marketplace statistics
// @Description Campaign, bid and contract counters, optionally limited to one party
// @Tags Parties
// @Produce json
// @Param partyId query string false "Limit to this party"
// @Success 200 {object} domain.StatsDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *PartyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	var partyID string
	if p := optionalString(r, "partyId"); p != nil {
		partyID = *p
	}

	stats, err := h.projectionService.Stats(r.Context(), partyID)
	if err != nil {
		respondServiceError(w, h.logger, err, "get stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
