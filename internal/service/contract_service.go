package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/mapper"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContractService creates contracts from accepted bids and tracks their
// progress through the fulfilment stages
type ContractService struct {
	db               *gorm.DB
	contractRepo     *repository.ContractRepository
	stageEventRepo   *repository.ContractStageEventRepository
	notificationRepo *repository.NotificationRepository
	settings         Settings
	logger           *zap.Logger
}

// NewContractService creates a new ContractService instance
func NewContractService(
	db *gorm.DB,
	contractRepo *repository.ContractRepository,
	stageEventRepo *repository.ContractStageEventRepository,
	notificationRepo *repository.NotificationRepository,
	settings Settings,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		db:               db,
		contractRepo:     contractRepo,
		stageEventRepo:   stageEventRepo,
		notificationRepo: notificationRepo,
		settings:         settings,
		logger:           logger,
	}
}

// createFromAcceptedBid instantiates the contract for an accepted bid inside tx.
// The farmer is whichever of bidder and campaign creator acts as farmer.
func (s *ContractService) createFromAcceptedBid(ctx context.Context, tx *gorm.DB, bid *domain.Bid, campaign *domain.Campaign, actorID string, actorRole domain.PartyRole) (*domain.Contract, error) {
	farmerID, farmerName := campaign.CreatorID, campaign.CreatorName
	buyerID, buyerName := bid.BidderID, bid.BidderName
	if bid.BidderRole == domain.PartyRoleFarmer {
		farmerID, farmerName = bid.BidderID, bid.BidderName
		buyerID, buyerName = campaign.CreatorID, campaign.CreatorName
	}

	title := campaign.Title
	if title == "" {
		title = campaign.Crop
	}
	terms := bid.DeliveryTerms
	if bid.CounterTerms != "" {
		terms = bid.CounterTerms
	}

	contract := &domain.Contract{
		CampaignID:         campaign.ID,
		SourceBidID:        bid.ID,
		Title:              "Contract: " + title,
		Crop:               campaign.Crop,
		Variety:            campaign.Variety,
		Location:           campaign.Location,
		FarmerID:           farmerID,
		FarmerName:         farmerName,
		BuyerID:            buyerID,
		BuyerName:          buyerName,
		AgreedPricePerUnit: bid.StandingPricePerUnit(),
		AgreedPrice:        bid.StandingAmount(),
		Quantity:           bid.Quantity,
		Unit:               bid.Unit,
		DeliveryTerms:      terms,
		QualityGrade:       bid.QualityGrade,
		Notes:              bid.ActionNotes,
		CurrentStage:       domain.FirstStage(),
		ContractStatus:     domain.ContractStatusActive,
	}

	if err := s.contractRepo.WithTx(tx).Create(ctx, contract); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCampaignClosed
		}
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	if err := s.stageEventRepo.WithTx(tx).Record(ctx, &domain.ContractStageEvent{
		ContractID:    contract.ID,
		Kind:          domain.StageChangeAdvance,
		ToStage:       contract.CurrentStage,
		ChangedByID:   actorID,
		ChangedByRole: actorRole,
		Reason:        fmt.Sprintf("created from accepted bid at %s per %s", contract.AgreedPricePerUnit.StringFixed(2), contract.Unit),
		ChangedAt:     time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to record initial stage: %w", err)
	}

	notifications := s.notificationRepo.WithTx(tx)
	for _, partyID := range []string{farmerID, buyerID} {
		if err := notify(ctx, notifications, partyID, domain.NotificationTypeContractCreated,
			"Contract created",
			fmt.Sprintf("%s: %s %s at %s per %s", contract.Title, contract.Quantity.String(), contract.Unit, contract.AgreedPricePerUnit.StringFixed(2), contract.Unit),
			"contract", contract.ID); err != nil {
			return nil, fmt.Errorf("failed to notify party: %w", err)
		}
	}

	return contract, nil
}

// Advance moves a contract strictly forward to targetStage. Reaching the
// terminal stage completes the contract.
func (s *ContractService) Advance(ctx context.Context, id uuid.UUID, req *domain.AdvanceContractRequest) (*domain.ContractDTO, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}
	if !req.TargetStage.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, req.TargetStage)
	}

	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	role, ok := contract.PartyRoleOf(party.PartyID)
	if !ok {
		return nil, ErrNotAParty
	}

	from := contract.CurrentStage
	if !from.Before(req.TargetStage) {
		return nil, fmt.Errorf("%w: cannot advance from %s to %s", ErrInvalidStageTransition, from, req.TargetStage)
	}

	contract.CurrentStage = req.TargetStage
	if req.TargetStage.IsTerminal() {
		now := time.Now().UTC()
		contract.ContractStatus = domain.ContractStatusCompleted
		contract.CompletedAt = &now
	}

	if err := s.moveStage(ctx, contract, from, domain.StageChangeAdvance, party.PartyID, role, req.Notes); err != nil {
		return nil, err
	}

	s.logger.Info("contract stage advanced",
		zap.String("contract_id", contract.ID.String()),
		zap.String("from_stage", string(from)),
		zap.String("to_stage", string(contract.CurrentStage)),
		zap.String("contract_status", string(contract.ContractStatus)),
		zap.String("party_id", party.PartyID),
	)

	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

// Correct moves an active contract back to an earlier stage, for example to
// undo a stage recorded by mistake. A reason is mandatory and the change is
// recorded separately from normal advancement.
func (s *ContractService) Correct(ctx context.Context, id uuid.UUID, req *domain.CorrectContractStageRequest) (*domain.ContractDTO, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}
	if !req.TargetStage.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStage, req.TargetStage)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, validationErrorf("a reason is required for a stage correction")
	}

	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	role, ok := contract.PartyRoleOf(party.PartyID)
	if !ok {
		return nil, ErrNotAParty
	}
	if contract.ContractStatus == domain.ContractStatusCompleted {
		return nil, ErrContractClosed
	}

	from := contract.CurrentStage
	if !req.TargetStage.Before(from) {
		return nil, fmt.Errorf("%w: correction must move back from %s, got %s", ErrInvalidStageTransition, from, req.TargetStage)
	}
	contract.CurrentStage = req.TargetStage

	if err := s.moveStage(ctx, contract, from, domain.StageChangeCorrection, party.PartyID, role, reason); err != nil {
		return nil, err
	}

	s.logger.Warn("contract stage corrected",
		zap.String("contract_id", contract.ID.String()),
		zap.String("from_stage", string(from)),
		zap.String("to_stage", string(contract.CurrentStage)),
		zap.String("party_id", party.PartyID),
		zap.String("reason", reason),
	)

	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

func (s *ContractService) moveStage(ctx context.Context, contract *domain.Contract, from domain.Stage, kind domain.StageChangeKind, actorID string, actorRole domain.PartyRole, reason string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		moved, err := s.contractRepo.WithTx(tx).MoveStage(ctx, contract, from)
		if err != nil {
			return fmt.Errorf("failed to update contract stage: %w", err)
		}
		if !moved {
			return ErrConflict
		}

		fromStage := from
		if err := s.stageEventRepo.WithTx(tx).Record(ctx, &domain.ContractStageEvent{
			ContractID:    contract.ID,
			Kind:          kind,
			FromStage:     &fromStage,
			ToStage:       contract.CurrentStage,
			ChangedByID:   actorID,
			ChangedByRole: actorRole,
			Reason:        reason,
			ChangedAt:     time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("failed to record stage change: %w", err)
		}

		counterpart := contract.BuyerID
		if actorRole == domain.PartyRoleBuyer {
			counterpart = contract.FarmerID
		}
		message := fmt.Sprintf("%s moved from %s to %s", contract.Title, from, contract.CurrentStage)
		if kind == domain.StageChangeCorrection {
			message += " (correction: " + reason + ")"
		}
		return notify(ctx, s.notificationRepo.WithTx(tx), counterpart, domain.NotificationTypeContractStageChanged,
			"Contract stage changed", message, "contract", contract.ID)
	})
}

// GetByID retrieves a contract by ID
func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContractDTO, error) {
	contract, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

// GetBySourceBid retrieves the contract created from an accepted bid
func (s *ContractService) GetBySourceBid(ctx context.Context, bidID uuid.UUID) (*domain.ContractDTO, error) {
	contract, err := s.contractRepo.GetBySourceBid(ctx, bidID)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	dto := mapper.ToContractDTO(contract)
	return &dto, nil
}

// List returns a paginated list of contracts
func (s *ContractService) List(ctx context.Context, page, pageSize int, filters *repository.ContractFilters) (*domain.PaginatedResponse, error) {
	page, pageSize = s.settings.normalizePage(page, pageSize)

	contracts, total, err := s.contractRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	return &domain.PaginatedResponse{
		Data:       mapper.ToContractDTOs(contracts),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// StageHistory returns every stage change of a contract, oldest first
func (s *ContractService) StageHistory(ctx context.Context, id uuid.UUID) ([]domain.ContractStageEventDTO, error) {
	if _, err := s.contractRepo.GetByID(ctx, id); err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	events, err := s.stageEventRepo.ListByContract(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage history: %w", err)
	}
	dtos := make([]domain.ContractStageEventDTO, len(events))
	for i := range events {
		dtos[i] = mapper.ToContractStageEventDTO(&events[i])
	}
	return dtos, nil
}
