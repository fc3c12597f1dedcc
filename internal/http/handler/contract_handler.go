package handler

import (
	"net/http"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContractHandler handles HTTP requests for contracts and their lifecycle stages
type ContractHandler struct {
	contractService *service.ContractService
	logger          *zap.Logger
}

// NewContractHandler creates a new ContractHandler instance
func NewContractHandler(contractService *service.ContractService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		logger:          logger,
	}
}

// List godoc
// @Summary List contracts
// @Tags Contracts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param partyId query string false "Filter by farmer or buyer party ID"
// @Param campaignId query string false "Filter by campaign" format(uuid)
// @Param status query string false "Filter by status" Enums(active, completed)
// @Param stage query string false "Filter by current stage"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ContractDTO}
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contracts [get]
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.ContractFilters{PartyID: optionalString(r, "partyId")}
	if campaignID := optionalString(r, "campaignId"); campaignID != nil {
		id, err := uuid.Parse(*campaignID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "Invalid campaignId format")
			return
		}
		filters.CampaignID = &id
	}
	if status := optionalString(r, "status"); status != nil {
		s := domain.ContractStatus(*status)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid status: must be active or completed")
			return
		}
		filters.Status = &s
	}
	if stage := optionalString(r, "stage"); stage != nil {
		s := domain.Stage(*stage)
		if !s.IsValid() {
			respondWithError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid stage: "+*stage)
			return
		}
		filters.Stage = &s
	}

	result, err := h.contractService.List(r.Context(), page, pageSize, filters)
	if err != nil {
		respondServiceError(w, h.logger, err, "list contracts")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get contract
// @Tags Contracts
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Success 200 {object} domain.ContractDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "contract")
	if !ok {
		return
	}

	contract, err := h.contractService.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get contract")
		return
	}
	respondJSON(w, http.StatusOK, contract)
}

// History godoc
// @Summary Get contract stage history
// @Description Every stage move and correction recorded on the contract, oldest first
// @Tags Contracts
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Success 200 {array} domain.ContractStageEventDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contracts/{id}/history [get]
func (h *ContractHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "contract")
	if !ok {
		return
	}

	events, err := h.contractService.StageHistory(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err, "get contract history")
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// Advance godoc
// @Summary Advance contract stage
// @Description Move the contract forward to a later stage. Reaching the final stage completes the contract.
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Param request body domain.AdvanceContractRequest true "Target stage"
// @Success 200 {object} domain.ContractDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contracts/{id}/advance [post]
func (h *ContractHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "contract")
	if !ok {
		return
	}

	var req domain.AdvanceContractRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contract, err := h.contractService.Advance(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "advance contract")
		return
	}
	respondJSON(w, http.StatusOK, contract)
}

// Correct godoc
// @Summary Correct contract stage
// @Description Move an active contract back to an earlier stage, recording the reason
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path string true "Contract ID" format(uuid)
// @Param request body domain.CorrectContractStageRequest true "Target stage and reason"
// @Success 200 {object} domain.ContractDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Failure 409 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /contracts/{id}/correct [post]
func (h *ContractHandler) Correct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id", "contract")
	if !ok {
		return
	}

	var req domain.CorrectContractStageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contract, err := h.contractService.Correct(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err, "correct contract stage")
		return
	}
	respondJSON(w, http.StatusOK, contract)
}
