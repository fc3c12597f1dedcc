package repository

import (
	"context"
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContractFilters contains all filter options for listing contracts
type ContractFilters struct {
	PartyID    *string
	Status     *domain.ContractStatus
	Stage      *domain.Stage
	CampaignID *uuid.UUID
}

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ContractRepository) WithTx(tx *gorm.DB) *ContractRepository {
	return &ContractRepository{db: tx}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(contract).Error
}

func (r *ContractRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) GetBySourceBid(ctx context.Context, bidID uuid.UUID) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.db.WithContext(ctx).Where("source_bid_id = ?", bidID).First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// MoveStage changes the current stage only if it still equals from.
// It reports whether the row was updated.
func (r *ContractRepository) MoveStage(ctx context.Context, contract *domain.Contract, from domain.Stage) (bool, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&domain.Contract{}).
		Where("id = ? AND current_stage = ? AND contract_status = ?", contract.ID, from, domain.ContractStatusActive).
		Updates(map[string]interface{}{
			"current_stage":   contract.CurrentStage,
			"contract_status": contract.ContractStatus,
			"completed_at":    contract.CompletedAt,
			"updated_at":      now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected != 1 {
		return false, nil
	}
	contract.UpdatedAt = now
	return true, nil
}

func (r *ContractRepository) List(ctx context.Context, page, pageSize int, filters *ContractFilters) ([]domain.Contract, int64, error) {
	var contracts []domain.Contract
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&domain.Contract{}), filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&contracts).Error

	return contracts, total, err
}

// ListForParty returns contracts where the party is farmer or buyer, newest first
func (r *ContractRepository) ListForParty(ctx context.Context, partyID string) ([]domain.Contract, error) {
	var contracts []domain.Contract
	err := r.db.WithContext(ctx).
		Where("farmer_id = ? OR buyer_id = ?", partyID, partyID).
		Order("created_at DESC").
		Find(&contracts).Error
	return contracts, err
}

// CountByStatus counts contracts per status, optionally for one party
func (r *ContractRepository) CountByStatus(ctx context.Context, partyID string) (map[domain.ContractStatus]int64, error) {
	type result struct {
		ContractStatus domain.ContractStatus
		Count          int64
	}
	var rows []result

	query := r.db.WithContext(ctx).Model(&domain.Contract{}).Select("contract_status, COUNT(*) as count")
	if partyID != "" {
		query = query.Where("farmer_id = ? OR buyer_id = ?", partyID, partyID)
	}
	if err := query.Group("contract_status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[domain.ContractStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.ContractStatus] = row.Count
	}
	return counts, nil
}

func (r *ContractRepository) applyFilters(query *gorm.DB, filters *ContractFilters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.PartyID != nil {
		query = query.Where("(farmer_id = ? OR buyer_id = ?)", *filters.PartyID, *filters.PartyID)
	}
	if filters.Status != nil {
		query = query.Where("contract_status = ?", *filters.Status)
	}
	if filters.Stage != nil {
		query = query.Where("current_stage = ?", *filters.Stage)
	}
	if filters.CampaignID != nil {
		query = query.Where("campaign_id = ?", *filters.CampaignID)
	}
	return query
}
