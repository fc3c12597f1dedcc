package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/mapper"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NegotiationService is the only writer of bid status. It records every
// action in the bid ledger and hands accepted bids to the contract factory.
type NegotiationService struct {
	db               *gorm.DB
	campaignRepo     *repository.CampaignRepository
	bidRepo          *repository.BidRepository
	eventRepo        *repository.BidEventRepository
	notificationRepo *repository.NotificationRepository
	contracts        *ContractService
	settings         Settings
	logger           *zap.Logger
}

// NewNegotiationService creates a new NegotiationService instance
func NewNegotiationService(
	db *gorm.DB,
	campaignRepo *repository.CampaignRepository,
	bidRepo *repository.BidRepository,
	eventRepo *repository.BidEventRepository,
	notificationRepo *repository.NotificationRepository,
	contracts *ContractService,
	settings Settings,
	logger *zap.Logger,
) *NegotiationService {
	return &NegotiationService{
		db:               db,
		campaignRepo:     campaignRepo,
		bidRepo:          bidRepo,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
		contracts:        contracts,
		settings:         settings,
		logger:           logger,
	}
}

// SubmitBid places a new bid by the calling party against an active campaign
func (s *NegotiationService) SubmitBid(ctx context.Context, campaignID uuid.UUID, req *domain.SubmitBidRequest) (*domain.BidDTO, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}
	if req.PricePerUnit == nil || !req.PricePerUnit.IsPositive() {
		return nil, validationErrorf("pricePerUnit must be positive")
	}
	if req.Quantity == nil || !req.Quantity.IsPositive() {
		return nil, validationErrorf("quantity must be positive")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, notFound(err, ErrCampaignNotFound)
	}
	if err := checkCampaignOpen(campaign); err != nil {
		return nil, err
	}
	if party.Role == campaign.CreatorRole {
		return nil, validationErrorf("a %s cannot bid on a %s campaign", party.Role, campaign.CreatorRole)
	}
	if party.PartyID == campaign.CreatorID {
		return nil, validationErrorf("cannot bid on your own campaign")
	}

	quantity := req.Quantity.Round(2)
	if err := checkBidQuantity(campaign, quantity); err != nil {
		return nil, err
	}

	bid := &domain.Bid{
		CampaignID:     campaign.ID,
		BidderID:       party.PartyID,
		BidderRole:     party.Role,
		BidderName:     party.DisplayName,
		PricePerUnit:   req.PricePerUnit.Round(2),
		Quantity:       quantity,
		Unit:           campaign.Unit,
		DeliveryTerms:  req.DeliveryTerms,
		QualityGrade:   req.QualityGrade,
		Notes:          req.Notes,
		Status:         domain.BidStatusPending,
		LastActionRole: party.Role,
		LastActionBy:   party.PartyID,
		Version:        1,
	}
	if bid.QualityGrade == "" {
		bid.QualityGrade = s.settings.DefaultQualityGrade
	}
	bid.Recalculate()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		campaigns := s.campaignRepo.WithTx(tx)
		reserved, err := campaigns.ReserveForBid(ctx, campaign.ID)
		if err != nil {
			return fmt.Errorf("failed to reserve campaign: %w", err)
		}
		current, err := campaigns.GetByID(ctx, campaign.ID)
		if err != nil {
			return notFound(err, ErrCampaignNotFound)
		}
		if !reserved {
			if err := checkCampaignOpen(current); err != nil {
				return err
			}
			return ErrConflict
		}
		if current.Unit != bid.Unit {
			return fmt.Errorf("%w: campaign unit changed to %s", ErrConflict, current.Unit)
		}
		if err := checkBidQuantity(current, bid.Quantity); err != nil {
			return err
		}
		if err := s.bidRepo.WithTx(tx).Create(ctx, bid); err != nil {
			return fmt.Errorf("failed to create bid: %w", err)
		}
		if err := s.appendEvent(ctx, tx, bid, domain.BidActionSubmit, nil, party, bid.Notes); err != nil {
			return err
		}
		return notify(ctx, s.notificationRepo.WithTx(tx), campaign.CreatorID, domain.NotificationTypeBidReceived,
			"New bid received",
			fmt.Sprintf("%s offered %s per %s for %s %s of %s", displayName(party), bid.PricePerUnit.StringFixed(2), bid.Unit, bid.Quantity.String(), bid.Unit, campaign.Crop),
			"bid", bid.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("bid submitted",
		zap.String("bid_id", bid.ID.String()),
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("bidder_id", bid.BidderID),
		zap.String("bidder_role", string(bid.BidderRole)),
		zap.String("price_per_unit", bid.PricePerUnit.String()),
		zap.String("total_amount", bid.TotalAmount.String()),
	)

	dto := mapper.ToBidDTO(bid)
	return &dto, nil
}

// ActOnBid applies counter, accept or reject by the calling party. Accepting
// completes the campaign and creates the contract in the same transaction.
// On any error nothing is changed.
func (s *NegotiationService) ActOnBid(ctx context.Context, bidID uuid.UUID, req *domain.ActOnBidRequest) (*domain.ActOnBidResult, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}
	switch req.Action {
	case domain.BidActionCounter, domain.BidActionAccept, domain.BidActionReject:
	default:
		return nil, validationErrorf("unknown action %q", req.Action)
	}

	bid, err := s.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return nil, notFound(err, ErrBidNotFound)
	}
	if req.ExpectedVersion != nil && *req.ExpectedVersion != bid.Version {
		return nil, fmt.Errorf("%w: bid is at version %d, expected %d", ErrConflict, bid.Version, *req.ExpectedVersion)
	}

	next, err := nextBidStatus(bid.Status, req.Action)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, bid.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign for bid: %w", err)
	}
	if err := checkCampaignOpen(campaign); err != nil {
		return nil, err
	}

	if party.Role == bid.LastActionRole {
		return nil, ErrNotYourTurn
	}
	if party.PartyID != partyFor(party.Role, bid, campaign) {
		return nil, ErrNotAParty
	}

	standing := bid.StandingPricePerUnit()
	from := bid.Status
	expectedVersion := bid.Version

	switch req.Action {
	case domain.BidActionCounter:
		if req.CounterPricePerUnit == nil || !req.CounterPricePerUnit.IsPositive() {
			return nil, validationErrorf("counterPricePerUnit must be positive")
		}
		counter := req.CounterPricePerUnit.Round(2)
		if err := checkConvergence(party.Role, standing, counter); err != nil {
			return nil, err
		}
		bid.CounterPricePerUnit = decimal.NewNullDecimal(counter)
		if req.CounterTerms != "" {
			bid.CounterTerms = req.CounterTerms
		}
	case domain.BidActionReject:
		role := party.Role
		bid.RejectedBy = &role
	}

	bid.Status = next
	bid.LastActionRole = party.Role
	bid.LastActionBy = party.PartyID
	bid.ActionNotes = req.Notes
	bid.Recalculate()

	var contract *domain.Contract
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		campaigns := s.campaignRepo.WithTx(tx)

		if req.Action == domain.BidActionAccept {
			completed, err := campaigns.CompleteIfActive(ctx, campaign.ID)
			if err != nil {
				return fmt.Errorf("failed to complete campaign: %w", err)
			}
			if !completed {
				return ErrCampaignClosed
			}
		} else {
			current, err := campaigns.GetByID(ctx, campaign.ID)
			if err != nil {
				return fmt.Errorf("failed to reload campaign: %w", err)
			}
			if err := checkCampaignOpen(current); err != nil {
				return err
			}
		}

		updated, err := s.bidRepo.WithTx(tx).UpdateIfVersion(ctx, bid, expectedVersion)
		if err != nil {
			return fmt.Errorf("failed to update bid: %w", err)
		}
		if !updated {
			return ErrConflict
		}

		if err := s.appendEvent(ctx, tx, bid, req.Action, &from, party, req.Notes); err != nil {
			return err
		}

		if req.Action == domain.BidActionAccept {
			contract, err = s.contracts.createFromAcceptedBid(ctx, tx, bid, campaign, party.PartyID, party.Role)
			if err != nil {
				return err
			}
		}

		return s.notifyCounterpart(ctx, tx, bid, campaign, party, req.Action)
	})
	if err != nil {
		if errors.Is(err, ErrCampaignClosed) || errors.Is(err, ErrConflict) {
			s.logger.Info("bid action lost a race",
				zap.String("bid_id", bidID.String()),
				zap.String("action", string(req.Action)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	s.logger.Info("bid transitioned",
		zap.String("bid_id", bid.ID.String()),
		zap.String("campaign_id", bid.CampaignID.String()),
		zap.String("action", string(req.Action)),
		zap.String("from_status", string(from)),
		zap.String("to_status", string(bid.Status)),
		zap.String("actor_id", party.PartyID),
		zap.String("actor_role", string(party.Role)),
		zap.String("standing_price_per_unit", bid.StandingPricePerUnit().String()),
		zap.Int("version", bid.Version),
	)

	result := &domain.ActOnBidResult{Bid: mapper.ToBidDTO(bid)}
	if contract != nil {
		s.logger.Info("contract created",
			zap.String("contract_id", contract.ID.String()),
			zap.String("source_bid_id", contract.SourceBidID.String()),
			zap.String("agreed_price", contract.AgreedPrice.String()),
		)
		dto := mapper.ToContractDTO(contract)
		result.Contract = &dto
	}
	return result, nil
}

// GetBid retrieves a bid by ID
func (s *NegotiationService) GetBid(ctx context.Context, id uuid.UUID) (*domain.BidDTO, error) {
	bid, err := s.bidRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrBidNotFound)
	}
	dto := mapper.ToBidDTO(bid)
	return &dto, nil
}

// ListBids returns a paginated list of bids
func (s *NegotiationService) ListBids(ctx context.Context, page, pageSize int, filters *repository.BidFilters) (*domain.PaginatedResponse, error) {
	page, pageSize = s.settings.normalizePage(page, pageSize)

	bids, total, err := s.bidRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	return &domain.PaginatedResponse{
		Data:       mapper.ToBidDTOs(bids),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// BidHistory returns the ledger entries of a bid, oldest first
func (s *NegotiationService) BidHistory(ctx context.Context, bidID uuid.UUID) ([]domain.BidEventDTO, error) {
	if _, err := s.bidRepo.GetByID(ctx, bidID); err != nil {
		return nil, notFound(err, ErrBidNotFound)
	}
	events, err := s.eventRepo.ListByBid(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bid history: %w", err)
	}
	dtos := make([]domain.BidEventDTO, len(events))
	for i := range events {
		dtos[i] = mapper.ToBidEventDTO(&events[i])
	}
	return dtos, nil
}

func (s *NegotiationService) appendEvent(ctx context.Context, tx *gorm.DB, bid *domain.Bid, action domain.BidAction, from *domain.BidStatus, party *auth.PartyContext, notes string) error {
	event := &domain.BidEvent{
		BidID:        bid.ID,
		CampaignID:   bid.CampaignID,
		Action:       action,
		ActorRole:    party.Role,
		ActorID:      party.PartyID,
		FromStatus:   from,
		ToStatus:     bid.Status,
		PricePerUnit: bid.StandingPricePerUnit(),
		Amount:       bid.StandingAmount(),
		Notes:        notes,
		BidVersion:   bid.Version,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.eventRepo.WithTx(tx).Append(ctx, event); err != nil {
		return fmt.Errorf("failed to record bid event: %w", err)
	}
	return nil
}

func (s *NegotiationService) notifyCounterpart(ctx context.Context, tx *gorm.DB, bid *domain.Bid, campaign *domain.Campaign, party *auth.PartyContext, action domain.BidAction) error {
	recipient := partyFor(party.Role.Counterpart(), bid, campaign)
	name := displayName(party)

	var kind domain.NotificationType
	var title, message string
	switch action {
	case domain.BidActionCounter:
		kind, title = domain.NotificationTypeBidCountered, "Counter-offer received"
		message = fmt.Sprintf("%s countered at %s per %s (total %s)", name, bid.StandingPricePerUnit().StringFixed(2), bid.Unit, bid.StandingAmount().StringFixed(2))
	case domain.BidActionAccept:
		kind, title = domain.NotificationTypeBidAccepted, "Offer accepted"
		message = fmt.Sprintf("%s accepted %s per %s for %s", name, bid.StandingPricePerUnit().StringFixed(2), bid.Unit, campaign.Crop)
	case domain.BidActionReject:
		kind, title = domain.NotificationTypeBidRejected, "Offer rejected"
		message = fmt.Sprintf("%s rejected the offer on %s", name, campaign.Crop)
	default:
		return nil
	}
	return notify(ctx, s.notificationRepo.WithTx(tx), recipient, kind, title, message, "bid", bid.ID)
}

func checkCampaignOpen(campaign *domain.Campaign) error {
	switch campaign.Status {
	case domain.CampaignStatusActive:
		return nil
	case domain.CampaignStatusUpcoming:
		return validationErrorf("campaign is not open for bidding yet")
	default:
		return ErrCampaignClosed
	}
}

func checkBidQuantity(campaign *domain.Campaign, quantity decimal.Decimal) error {
	if campaign.QuantityFixed && !quantity.Equal(campaign.Quantity) {
		return fmt.Errorf("%w (campaign: %s %s, bid: %s)", ErrQuantityMismatch, campaign.Quantity.String(), campaign.Unit, quantity.String())
	}
	if !campaign.QuantityFixed && quantity.GreaterThan(campaign.Quantity) {
		return validationErrorf("bid quantity %s exceeds campaign quantity %s", quantity.String(), campaign.Quantity.String())
	}
	return nil
}

func displayName(party *auth.PartyContext) string {
	if name := strings.TrimSpace(party.DisplayName); name != "" {
		return name
	}
	return party.PartyID
}
