package repository

import (
	"context"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContractStageEventRepository struct {
	db *gorm.DB
}

func NewContractStageEventRepository(db *gorm.DB) *ContractStageEventRepository {
	return &ContractStageEventRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *ContractStageEventRepository) WithTx(tx *gorm.DB) *ContractStageEventRepository {
	return &ContractStageEventRepository{db: tx}
}

// Record stores a stage change
func (r *ContractStageEventRepository) Record(ctx context.Context, event *domain.ContractStageEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByContract returns all stage changes for a contract, oldest first
func (r *ContractStageEventRepository) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.ContractStageEvent, error) {
	var events []domain.ContractStageEvent
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("changed_at ASC").
		Find(&events).Error
	return events, err
}
