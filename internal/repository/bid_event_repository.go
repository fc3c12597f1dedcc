package repository

import (
	"context"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BidEventRepository is the append-only ledger of bid actions
type BidEventRepository struct {
	db *gorm.DB
}

func NewBidEventRepository(db *gorm.DB) *BidEventRepository {
	return &BidEventRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *BidEventRepository) WithTx(tx *gorm.DB) *BidEventRepository {
	return &BidEventRepository{db: tx}
}

// Append records a ledger entry
func (r *BidEventRepository) Append(ctx context.Context, event *domain.BidEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListByBid returns the full history of a bid, oldest first
func (r *BidEventRepository) ListByBid(ctx context.Context, bidID uuid.UUID) ([]domain.BidEvent, error) {
	var events []domain.BidEvent
	err := r.db.WithContext(ctx).
		Where("bid_id = ?", bidID).
		Order("bid_version ASC, created_at ASC").
		Find(&events).Error
	return events, err
}
