package handler

import (
	"net/http"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BidHandler handles HTTP requests for bids and negotiation actions
type BidHandler struct {
	negotiationService *service.NegotiationService
	contractService    *service.ContractService
	logger             *zap.Logger
}

// NewBidHandler creates a new BidHandler instance
func NewBidHandler(negotiationService *service.NegotiationService, contractService *service.ContractService, logger *zap.Logger) *BidHandler {
	return &BidHandler{
		negotiationService: negotiationService,
		contractService:    contractService,
		logger:             logger,
	}
}

// List godoc
// @Summary List bids
// @Tags Bids
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param campaignId query string false "Filter by campaign" format(uuid)
// @Param bidderId query string false "Filter by bidder party ID"
// @Param bidderRole query string false "Filter by bidder role" Enums(farmer, buyer)
// @Param status query string false "Filter by status" Enums(pending, counter_offered, accepted, rejected)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.BidDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /bids [get]
func (h *BidHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.BidFilters{BidderID: optionalString(r, "bidderId")}
	if campaignID := optionalString(r, "campaignId"); campaignID != nil {
		id, err := uuid.Parse(*campaignID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "Invalid campaignId format")
			return
		}
		filters.CampaignID = &id
	}
	if role := optionalString(r, "bidderRole"); role != nil {
		pr := domain.PartyRole(*role)
		if !pr.IsValid() {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid bidderRole: must be farmer or buyer")
			return
		}
		filters.BidderRole = &pr
	}
	if status := optionalString(r, "status"); status != nil {
		s := domain.BidStatus(*status)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid status: must be one of pending, counter_offered, accepted, rejected")
			return
		}
		filters.Status = &s
	}

	result, err := h.negotiationService.ListBids(r.Context(), page, pageSize, filters)
	if err != nil {
		respondServiceError(w, h.logger, err, "list bids")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get bid
// @Tags Bids
// @Produce json
// @Param id path string true "Bid ID" format(uuid)
// @Success 200 {object} domain.BidDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /bids/{id} [get]
func (h *BidHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "bid")
	if !ok {
		return
	}

	bid, err := h.negotiationService.GetBid(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get bid")
		return
	}
	respondJSON(w, http.StatusOK, bid)
}

// History godoc
// @Summary Get bid history
// @Description Every action recorded on the bid, oldest first
// @Tags Bids
// @Produce json
// @Param id path string true "Bid ID" format(uuid)
// @Success 200 {array} domain.BidEventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /bids/{id}/history [get]
func (h *BidHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "bid")
	if !ok {
		return
	}

	events, err := h.negotiationService.BidHistory(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get bid history")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// Contract godoc
// @Summary Get contract created from bid
// @Tags Bids
// @Produce json
// @Param id path string true "Bid ID" format(uuid)
// @Success 200 {object} domain.ContractDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /bids/{id}/contract [get]
func (h *BidHandler) Contract(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "bid")
	if !ok {
		return
	}

	contract, err := h.contractService.GetBySourceBid(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get contract for bid")
		return
	}
	respondJSON(w, http.StatusOK, contract)
}

// Act godoc
// @Summary Act on bid
// @Description Counter, accept or reject the standing offer of a bid. Accepting completes the campaign and returns the new contract with status 201.
// @Tags Bids
// @Accept json
// @Produce json
// @Param id path string true "Bid ID" format(uuid)
// @Param request body domain.ActOnBidRequest true "Action"
// @Success 200 {object} domain.ActOnBidResult
// @Success 201 {object} domain.ActOnBidResult
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /bids/{id}/actions [post]
func (h *BidHandler) Act(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "bid")
	if !ok {
		return
	}

	var req domain.ActOnBidRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.negotiationService.ActOnBid(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "act on bid")
		return
	}

	if result.Contract != nil {
		w.Header().Set("Location", "/api/v1/contracts/"+result.Contract.ID.String())
		respondJSON(w, http.StatusCreated, result)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
