package repository

import (
	"context"
	"strings"
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CampaignFilters contains all filter options for listing campaigns
type CampaignFilters struct {
	Status      *domain.CampaignStatus
	CreatorRole *domain.PartyRole
	CreatorID   *string
	Crop        *string
	Location    *string
}

const noBids = "NOT EXISTS (SELECT 1 FROM bids WHERE bids.campaign_id = campaigns.id)"

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *CampaignRepository) WithTx(tx *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: tx}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(campaign).Error
}

func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// UpdateDetails writes descriptive fields while the campaign is still active
// and unchanged since it was read. With termsChanged the update also requires
// that no bid references the campaign. It reports whether a row was updated.
func (r *CampaignRepository) UpdateDetails(ctx context.Context, campaign *domain.Campaign, expectedVersion int, termsChanged bool) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Campaign{}).
		Where("id = ? AND version = ? AND status = ?", campaign.ID, expectedVersion, domain.CampaignStatusActive)
	if termsChanged {
		query = query.Where(noBids)
	}
	result := query.
		Updates(map[string]interface{}{
			"title":              campaign.Title,
			"variety":            campaign.Variety,
			"location":           campaign.Location,
			"start_date":         campaign.StartDate,
			"end_date":           campaign.EndDate,
			"quantity":           campaign.Quantity,
			"unit":               campaign.Unit,
			"min_price_per_unit": campaign.MinPricePerUnit,
			"max_price_per_unit": campaign.MaxPricePerUnit,
			"quality_grade":      campaign.QualityGrade,
			"description":        campaign.Description,
			"version":            expectedVersion + 1,
			"updated_at":         time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CompleteIfActive atomically moves an active campaign to completed.
// It returns false when the campaign was no longer active.
func (r *CampaignRepository) CompleteIfActive(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Campaign{}).
		Where("id = ? AND status = ?", id, domain.CampaignStatusActive).
		Updates(map[string]interface{}{
			"status":     domain.CampaignStatusCompleted,
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// ReserveForBid bumps the version of an active campaign inside a bid
// transaction, so that concurrent edits read before the bid fail their
// version check. It returns false when the campaign is not active.
func (r *CampaignRepository) ReserveForBid(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Campaign{}).
		Where("id = ? AND status = ?", id, domain.CampaignStatusActive).
		Updates(map[string]interface{}{
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteUnused removes a campaign that is unchanged since it was read and
// that no bid or contract references. It reports whether a row was deleted.
func (r *CampaignRepository) DeleteUnused(ctx context.Context, id uuid.UUID, expectedVersion int) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", id, expectedVersion).
		Where(noBids).
		Where("NOT EXISTS (SELECT 1 FROM contracts WHERE contracts.campaign_id = campaigns.id)").
		Delete(&domain.Campaign{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *CampaignRepository) List(ctx context.Context, page, pageSize int, filters *CampaignFilters) ([]domain.Campaign, int64, error) {
	var campaigns []domain.Campaign
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Campaign{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&campaigns).Error

	return campaigns, total, err
}

// CountByStatus counts campaigns per status, optionally only those created by a party
func (r *CampaignRepository) CountByStatus(ctx context.Context, creatorID string) (map[domain.CampaignStatus]int64, error) {
	type result struct {
		Status domain.CampaignStatus
		Count  int64
	}
	var rows []result

	query := r.db.WithContext(ctx).Model(&domain.Campaign{}).Select("status, COUNT(*) as count")
	if creatorID != "" {
		query = query.Where("creator_id = ?", creatorID)
	}
	if err := query.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.CampaignStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *CampaignRepository) applyFilters(query *gorm.DB, filters *CampaignFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.CreatorRole != nil {
		query = query.Where("creator_role = ?", *filters.CreatorRole)
	}
	if filters.CreatorID != nil {
		query = query.Where("creator_id = ?", *filters.CreatorID)
	}
	if filters.Crop != nil && *filters.Crop != "" {
		query = query.Where("LOWER(crop) = ?", strings.ToLower(*filters.Crop))
	}
	if filters.Location != nil && *filters.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*filters.Location)+"%")
	}
	return query
}
