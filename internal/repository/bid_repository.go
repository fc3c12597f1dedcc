package repository

import (
	"context"
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BidFilters contains all filter options for listing bids
type BidFilters struct {
	CampaignID *uuid.UUID
	BidderID   *string
	BidderRole *domain.PartyRole
	Status     *domain.BidStatus
}

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *BidRepository) WithTx(tx *gorm.DB) *BidRepository {
	return &BidRepository{db: tx}
}

func (r *BidRepository) Create(ctx context.Context, bid *domain.Bid) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(bid).Error
}

func (r *BidRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Bid, error) {
	var bid domain.Bid
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bid).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// UpdateIfVersion persists the negotiation fields of bid only if the stored
// version still equals expectedVersion, bumping it by one. It reports whether
// the row was updated.
func (r *BidRepository) UpdateIfVersion(ctx context.Context, bid *domain.Bid, expectedVersion int) (bool, error) {
	bid.Recalculate()
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&domain.Bid{}).
		Where("id = ? AND version = ?", bid.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":                 bid.Status,
			"total_amount":           bid.TotalAmount,
			"counter_price_per_unit": bid.CounterPricePerUnit,
			"counter_amount":         bid.CounterAmount,
			"counter_terms":          bid.CounterTerms,
			"last_action_role":       bid.LastActionRole,
			"last_action_by":         bid.LastActionBy,
			"rejected_by":            bid.RejectedBy,
			"action_notes":           bid.ActionNotes,
			"version":                expectedVersion + 1,
			"updated_at":             now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected != 1 {
		return false, nil
	}
	bid.Version = expectedVersion + 1
	bid.UpdatedAt = now
	return true, nil
}

func (r *BidRepository) List(ctx context.Context, page, pageSize int, filters *BidFilters) ([]domain.Bid, int64, error) {
	var bids []domain.Bid
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Bid{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&bids).Error

	return bids, total, err
}

// ListByCampaign returns all bids of a campaign, oldest first
func (r *BidRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Bid, error) {
	var bids []domain.Bid
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at ASC").
		Find(&bids).Error
	return bids, err
}

func (r *BidRepository) CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Bid{}).Where("campaign_id = ?", campaignID).Count(&count).Error
	return count, err
}

// LatestOpenByCampaign returns the most recently acted-on non-terminal bid
func (r *BidRepository) LatestOpenByCampaign(ctx context.Context, campaignID uuid.UUID) (*domain.Bid, error) {
	var bid domain.Bid
	err := r.db.WithContext(ctx).
		Where("campaign_id = ? AND status IN ?", campaignID, domain.NonTerminalBidStatuses).
		Order("updated_at DESC").
		First(&bid).Error
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

// ListOpenForParty returns non-terminal bids on active campaigns where the
// party is either the bidder or the campaign creator
func (r *BidRepository) ListOpenForParty(ctx context.Context, partyID string) ([]domain.Bid, error) {
	var bids []domain.Bid
	err := r.openForParty(ctx, partyID).
		Order("bids.updated_at DESC").
		Find(&bids).Error
	return bids, err
}

// CountOpen counts non-terminal bids on active campaigns, optionally for one party
func (r *BidRepository) CountOpen(ctx context.Context, partyID string) (int64, error) {
	var count int64
	query := r.openForParty(ctx, partyID)
	err := query.Count(&count).Error
	return count, err
}

// AveragePricePerUnit averages the original per-unit price of bids,
// optionally limited to bids a party made or received
func (r *BidRepository) AveragePricePerUnit(ctx context.Context, partyID string) (decimal.Decimal, error) {
	var avg decimal.NullDecimal
	query := r.db.WithContext(ctx).
		Model(&domain.Bid{}).
		Joins("JOIN campaigns ON campaigns.id = bids.campaign_id")
	if partyID != "" {
		query = query.Where("(bids.bidder_id = ? OR campaigns.creator_id = ?)", partyID, partyID)
	}
	if err := query.Select("AVG(bids.price_per_unit)").Row().Scan(&avg); err != nil {
		return decimal.Zero, err
	}
	if !avg.Valid {
		return decimal.Zero, nil
	}
	return avg.Decimal.Round(2), nil
}

func (r *BidRepository) openForParty(ctx context.Context, partyID string) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&domain.Bid{}).
		Joins("JOIN campaigns ON campaigns.id = bids.campaign_id").
		Where("bids.status IN ?", domain.NonTerminalBidStatuses).
		Where("campaigns.status = ?", domain.CampaignStatusActive)
	if partyID != "" {
		query = query.Where("(bids.bidder_id = ? OR campaigns.creator_id = ?)", partyID, partyID)
	}
	return query
}

func (r *BidRepository) applyFilters(query *gorm.DB, filters *BidFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filters.CampaignID)
	}
	if filters.BidderID != nil {
		query = query.Where("bidder_id = ?", *filters.BidderID)
	}
	if filters.BidderRole != nil {
		query = query.Where("bidder_role = ?", *filters.BidderRole)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	return query
}
