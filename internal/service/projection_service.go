package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/mapper"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectionService answers read-side questions derived from the stored
// campaigns, bids and contracts. Nothing it returns is persisted.
type ProjectionService struct {
	campaignRepo *repository.CampaignRepository
	bidRepo      *repository.BidRepository
	contractRepo *repository.ContractRepository
	logger       *zap.Logger
}

// NewProjectionService creates a new ProjectionService instance
func NewProjectionService(
	campaignRepo *repository.CampaignRepository,
	bidRepo *repository.BidRepository,
	contractRepo *repository.ContractRepository,
	logger *zap.Logger,
) *ProjectionService {
	return &ProjectionService{
		campaignRepo: campaignRepo,
		bidRepo:      bidRepo,
		contractRepo: contractRepo,
		logger:       logger,
	}
}

// BestStandingOffer returns the standing offer of the most recently acted-on
// open bid of a campaign. It returns nil when the campaign is completed or has
// no open bids.
func (s *ProjectionService) BestStandingOffer(ctx context.Context, campaignID uuid.UUID) (*domain.OfferDTO, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, notFound(err, ErrCampaignNotFound)
	}
	if !campaign.IsOpen() {
		return nil, nil
	}

	bid, err := s.bidRepo.LatestOpenByCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest bid: %w", err)
	}

	offer := mapper.ToOfferDTO(bid)
	return &offer, nil
}

// ActiveNegotiations returns the open bids on active campaigns where the
// party is the bidder or the campaign creator
func (s *ProjectionService) ActiveNegotiations(ctx context.Context, partyID string) ([]domain.BidDTO, error) {
	if partyID == "" {
		return nil, validationErrorf("partyId is required")
	}
	bids, err := s.bidRepo.ListOpenForParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list negotiations: %w", err)
	}
	return mapper.ToBidDTOs(bids), nil
}

// ContractsFor returns every contract where the party is farmer or buyer
func (s *ProjectionService) ContractsFor(ctx context.Context, partyID string) ([]domain.ContractDTO, error) {
	if partyID == "" {
		return nil, validationErrorf("partyId is required")
	}
	contracts, err := s.contractRepo.ListForParty(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return mapper.ToContractDTOs(contracts), nil
}

// CampaignWithBids returns a campaign together with all its bids and the
// range of their standing prices
func (s *ProjectionService) CampaignWithBids(ctx context.Context, campaignID uuid.UUID) (*domain.CampaignWithBidsDTO, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, notFound(err, ErrCampaignNotFound)
	}

	bids, err := s.bidRepo.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bids: %w", err)
	}

	result := &domain.CampaignWithBidsDTO{
		Campaign: mapper.ToCampaignDTO(campaign),
		Bids:     mapper.ToBidDTOs(bids),
	}

	var lowest, highest *decimal.Decimal
	for i := range bids {
		if bids[i].Status.IsTerminal() {
			continue
		}
		result.ActiveBids++
		price := bids[i].StandingPricePerUnit()
		if lowest == nil || price.LessThan(*lowest) {
			lowest = &price
		}
		if highest == nil || price.GreaterThan(*highest) {
			highest = &price
		}
	}
	result.LowestStanding = lowest
	result.HighestStanding = highest

	offer, err := s.BestStandingOffer(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	result.BestStandingOffer = offer

	return result, nil
}

// Stats aggregates marketplace counters, limited to one party when partyID is set
func (s *ProjectionService) Stats(ctx context.Context, partyID string) (*domain.StatsDTO, error) {
	campaigns, err := s.campaignRepo.CountByStatus(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}
	activeBids, err := s.bidRepo.CountOpen(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count bids: %w", err)
	}
	contracts, err := s.contractRepo.CountByStatus(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contracts: %w", err)
	}
	avg, err := s.bidRepo.AveragePricePerUnit(ctx, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to average bid prices: %w", err)
	}

	stats := &domain.StatsDTO{
		ActiveCampaigns:    campaigns[domain.CampaignStatusActive],
		CompletedCampaigns: campaigns[domain.CampaignStatusCompleted],
		ActiveBids:         activeBids,
		CompletedContracts: contracts[domain.ContractStatusCompleted],
		AverageBidPerUnit:  avg,
	}
	for _, n := range campaigns {
		stats.TotalCampaigns += n
	}
	for _, n := range contracts {
		stats.TotalContracts += n
	}
	return stats, nil
}
