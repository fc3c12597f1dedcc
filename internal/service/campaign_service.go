package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/mapper"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CampaignService handles business logic for demand and supply listings
type CampaignService struct {
	campaignRepo *repository.CampaignRepository
	bidRepo      *repository.BidRepository
	settings     Settings
	logger       *zap.Logger
}

// NewCampaignService creates a new CampaignService instance
func NewCampaignService(
	campaignRepo *repository.CampaignRepository,
	bidRepo *repository.BidRepository,
	settings Settings,
	logger *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		bidRepo:      bidRepo,
		settings:     settings,
		logger:       logger,
	}
}

// Create posts a new campaign on behalf of the calling party. Campaigns start active.
func (s *CampaignService) Create(ctx context.Context, req *domain.CreateCampaignRequest) (*domain.CampaignDTO, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}

	if req.Quantity == nil || !req.Quantity.IsPositive() {
		return nil, validationErrorf("quantity must be positive")
	}
	if !req.Unit.IsValid() {
		return nil, validationErrorf("unknown unit %q", req.Unit)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, validationErrorf("endDate must not be before startDate")
	}
	minPrice, maxPrice, err := priceRange(req.MinPricePerUnit, req.MaxPricePerUnit)
	if err != nil {
		return nil, err
	}

	quantityFixed := true
	if req.QuantityFixed != nil {
		quantityFixed = *req.QuantityFixed
	}

	campaign := &domain.Campaign{
		Title:           strings.TrimSpace(req.Title),
		Crop:            strings.TrimSpace(req.Crop),
		Variety:         req.Variety,
		Location:        strings.TrimSpace(req.Location),
		StartDate:       req.StartDate.UTC(),
		EndDate:         req.EndDate.UTC(),
		Quantity:        req.Quantity.Round(2),
		Unit:            req.Unit,
		QuantityFixed:   quantityFixed,
		MinPricePerUnit: minPrice,
		MaxPricePerUnit: maxPrice,
		QualityGrade:    req.QualityGrade,
		Description:     req.Description,
		CreatorRole:     party.Role,
		CreatorID:       party.PartyID,
		CreatorName:     party.DisplayName,
		Status:          domain.CampaignStatusActive,
		Version:         1,
	}
	if campaign.QualityGrade == "" {
		campaign.QualityGrade = s.settings.DefaultQualityGrade
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.logger.Info("campaign created",
		zap.String("campaign_id", campaign.ID.String()),
		zap.String("creator_id", campaign.CreatorID),
		zap.String("creator_role", string(campaign.CreatorRole)),
		zap.String("crop", campaign.Crop),
	)

	dto := mapper.ToCampaignDTO(campaign)
	return &dto, nil
}

// GetByID retrieves a campaign by ID
func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*domain.CampaignDTO, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCampaignNotFound)
	}
	dto := mapper.ToCampaignDTO(campaign)
	return &dto, nil
}

// List returns a paginated list of campaigns
func (s *CampaignService) List(ctx context.Context, page, pageSize int, filters *repository.CampaignFilters) (*domain.PaginatedResponse, error) {
	page, pageSize = s.settings.normalizePage(page, pageSize)

	campaigns, total, err := s.campaignRepo.List(ctx, page, pageSize, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	dtos := make([]domain.CampaignDTO, len(campaigns))
	for i := range campaigns {
		dtos[i] = mapper.ToCampaignDTO(&campaigns[i])
	}

	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// Update changes the descriptive fields of an active campaign. Only the creator
// may update; quantity and unit are frozen once the first bid arrives.
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateCampaignRequest) (*domain.CampaignDTO, error) {
	party, err := currentParty(ctx)
	if err != nil {
		return nil, err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCampaignNotFound)
	}
	if campaign.CreatorID != party.PartyID {
		return nil, ErrNotAParty
	}
	if !campaign.IsOpen() {
		return nil, ErrCampaignClosed
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, validationErrorf("endDate must not be before startDate")
	}
	minPrice, maxPrice, err := priceRange(req.MinPricePerUnit, req.MaxPricePerUnit)
	if err != nil {
		return nil, err
	}

	quantityChanged := req.Quantity != nil && !req.Quantity.Round(2).Equal(campaign.Quantity)
	unitChanged := req.Unit != "" && req.Unit != campaign.Unit
	if quantityChanged || unitChanged {
		if req.Quantity != nil && !req.Quantity.IsPositive() {
			return nil, validationErrorf("quantity must be positive")
		}
		bids, err := s.bidRepo.CountByCampaign(ctx, campaign.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count bids: %w", err)
		}
		if bids > 0 {
			return nil, validationErrorf("quantity and unit cannot change once bids exist")
		}
		if req.Quantity != nil {
			campaign.Quantity = req.Quantity.Round(2)
		}
		if req.Unit != "" {
			campaign.Unit = req.Unit
		}
	}

	campaign.Title = strings.TrimSpace(req.Title)
	campaign.Variety = req.Variety
	campaign.Location = strings.TrimSpace(req.Location)
	campaign.StartDate = req.StartDate.UTC()
	campaign.EndDate = req.EndDate.UTC()
	campaign.MinPricePerUnit = minPrice
	campaign.MaxPricePerUnit = maxPrice
	campaign.QualityGrade = req.QualityGrade
	campaign.Description = req.Description

	termsChanged := quantityChanged || unitChanged
	updated, err := s.campaignRepo.UpdateDetails(ctx, campaign, campaign.Version, termsChanged)
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	if !updated {
		return nil, s.explainRefusal(ctx, id, termsChanged, "quantity and unit cannot change once bids exist")
	}

	reloaded, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload campaign: %w", err)
	}

	s.logger.Info("campaign updated",
		zap.String("campaign_id", id.String()),
		zap.Int("version", reloaded.Version),
	)

	dto := mapper.ToCampaignDTO(reloaded)
	return &dto, nil
}

// Delete removes a campaign that has not received any bid. Only the creator
// may delete it, and once bids or a contract reference the campaign it stays.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	party, err := currentParty(ctx)
	if err != nil {
		return err
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, ErrCampaignNotFound)
	}
	if campaign.CreatorID != party.PartyID {
		return ErrNotAParty
	}
	if campaign.Status == domain.CampaignStatusCompleted {
		return ErrCampaignClosed
	}

	deleted, err := s.campaignRepo.DeleteUnused(ctx, id, campaign.Version)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if !deleted {
		return s.explainRefusal(ctx, id, true, "campaign cannot be deleted once bids exist")
	}

	s.logger.Info("campaign deleted",
		zap.String("campaign_id", id.String()),
		zap.String("creator_id", party.PartyID),
	)
	return nil
}

// explainRefusal works out why a guarded write on a campaign matched no row
func (s *CampaignService) explainRefusal(ctx context.Context, id uuid.UUID, bidsMatter bool, bidsMessage string) error {
	current, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, ErrCampaignNotFound)
	}
	if current.Status == domain.CampaignStatusCompleted {
		return ErrCampaignClosed
	}
	if bidsMatter {
		bids, err := s.bidRepo.CountByCampaign(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count bids: %w", err)
		}
		if bids > 0 {
			return validationErrorf("%s", bidsMessage)
		}
	}
	return ErrConflict
}

func priceRange(minPrice, maxPrice *decimal.Decimal) (decimal.NullDecimal, decimal.NullDecimal, error) {
	var lo, hi decimal.NullDecimal
	if minPrice != nil {
		if !minPrice.IsPositive() {
			return lo, hi, validationErrorf("minPricePerUnit must be positive")
		}
		lo = decimal.NewNullDecimal(minPrice.Round(2))
	}
	if maxPrice != nil {
		if !maxPrice.IsPositive() {
			return lo, hi, validationErrorf("maxPricePerUnit must be positive")
		}
		hi = decimal.NewNullDecimal(maxPrice.Round(2))
	}
	if lo.Valid && hi.Valid && hi.Decimal.LessThan(lo.Decimal) {
		return lo, hi, validationErrorf("maxPricePerUnit must not be below minPricePerUnit")
	}
	return lo, hi, nil
}
