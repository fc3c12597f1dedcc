package handler

import (
	"net/http"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/service"
	"go.uber.org/zap"
)

// CampaignHandler handles HTTP requests for campaigns and the bids placed on them
type CampaignHandler struct {
	campaignService    *service.CampaignService
	negotiationService *service.NegotiationService
	projectionService  *service.ProjectionService
	logger             *zap.Logger
}

// NewCampaignHandler creates a new CampaignHandler instance
func NewCampaignHandler(
	campaignService *service.CampaignService,
	negotiationService *service.NegotiationService,
	projectionService *service.ProjectionService,
	logger *zap.Logger,
) *CampaignHandler {
	return &CampaignHandler{
		campaignService:    campaignService,
		negotiationService: negotiationService,
		projectionService:  projectionService,
		logger:             logger,
	}
}

// List godoc
// @Summary List campaigns
// @Description Get paginated list of campaigns with optional filters
// @Tags Campaigns
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param status query string false "Filter by status" Enums(active, completed, upcoming)
// @Param creatorRole query string false "Filter by creator role" Enums(farmer, buyer)
// @Param creatorId query string false "Filter by creator party ID"
// @Param crop query string false "Filter by crop"
// @Param location query string false "Filter by location"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CampaignDTO}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns [get]
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.CampaignFilters{
		CreatorID: optionalString(r, "creatorId"),
		Crop:      optionalString(r, "crop"),
		Location:  optionalString(r, "location"),
	}
	if status := optionalString(r, "status"); status != nil {
		s := domain.CampaignStatus(*status)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid status: must be one of active, completed, upcoming")
			return
		}
		filters.Status = &s
	}
	if role := optionalString(r, "creatorRole"); role != nil {
		pr := domain.PartyRole(*role)
		if !pr.IsValid() {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid creatorRole: must be farmer or buyer")
			return
		}
		filters.CreatorRole = &pr
	}

	result, err := h.campaignService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		respondServiceError(w, h.logger, err, "list campaigns")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Create godoc
// @Summary Create campaign
// @Description Post a demand (buyer) or supply (farmer) listing. The creator is the calling party.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param request body domain.CreateCampaignRequest true "Campaign data"
// @Success 201 {object} domain.CampaignDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns [post]
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCampaignRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	campaign, err := h.campaignService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "create campaign")
		return
	}

	w.Header().Set("Location", "/api/v1/campaigns/"+campaign.ID.String())
	respondJSON(w, http.StatusCreated, campaign)
}

// GetByID godoc
// @Summary Get campaign
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID" format(uuid)
// @Success 200 {object} domain.CampaignDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "campaign")
	if !ok {
		return
	}

	campaign, err := h.campaignService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get campaign")
		return
	}
	respondJSON(w, http.StatusOK, campaign)
}

// Update godoc
// @Summary Update campaign
// @Description Update descriptive fields of an active campaign. Only the creator may update.
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID" format(uuid)
// @Param request body domain.UpdateCampaignRequest true "Campaign data"
// @Success 200 {object} domain.CampaignDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "campaign")
	if !ok {
		return
	}

	var req domain.UpdateCampaignRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	campaign, err := h.campaignService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "update campaign")
		return
	}
	respondJSON(w, http.StatusOK, campaign)
}

// Delete godoc
// @Summary Delete campaign
// @Description Delete a campaign that has not received any bid. Only the creator may delete.
// @Tags Campaigns
// @Param id path string true "Campaign ID" format(uuid)
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "campaign")
	if !ok {
		return
	}

	if err := h.campaignService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err, "delete campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetWithBids godoc
// @Summary Get campaign with bids
// @Description Campaign with all bids, the range of standing prices and the best standing offer
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID" format(uuid)
// @Success 200 {object} domain.CampaignWithBidsDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns/{id}/bids [get]
func (h *CampaignHandler) GetWithBids(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "campaign")
	if !ok {
		return
	}

	result, err := h.projectionService.CampaignWithBids(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get campaign bids")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetBestOffer godoc
// @Summary Get best standing offer
// @Description The standing offer of the most recently acted-on open bid. 204 when the campaign has none or is completed.
// @Tags Campaigns
// @Produce json
// @Param id path string true "Campaign ID" format(uuid)
// @Success 200 {object} domain.OfferDTO
// @Success 204
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns/{id}/best-offer [get]
func (h *CampaignHandler) GetBestOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "campaign")
	if !ok {
		return
	}

	offer, err := h.projectionService.BestStandingOffer(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get best offer")
		return
	}
	if offer == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, offer)
}

// SubmitBid godoc
// @Summary Submit bid
// @Description Place a bid on an active campaign as the counterpart of its creator
// @Tags Bids
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID" format(uuid)
// @Param request body domain.SubmitBidRequest true "Bid data"
// @Success 201 {object} domain.BidDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /campaigns/{id}/bids [post]
func (h *CampaignHandler) SubmitBid(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "campaign")
	if !ok {
		return
	}

	var req domain.SubmitBidRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bid, err := h.negotiationService.SubmitBid(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "submit bid")
		return
	}

	w.Header().Set("Location", "/api/v1/bids/"+bid.ID.String())
	respondJSON(w, http.StatusCreated, bid)
}
