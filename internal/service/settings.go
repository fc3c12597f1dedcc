package service

import (
	"context"
	"errors"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"gorm.io/gorm"
)

// Settings are marketplace defaults shared by the services
type Settings struct {
	DefaultQualityGrade string
	MaxPageSize         int
}

// DefaultSettings returns the settings used when none are configured
func DefaultSettings() Settings {
	return Settings{DefaultQualityGrade: "Grade A", MaxPageSize: 200}
}

func (s Settings) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	limit := s.MaxPageSize
	if limit <= 0 {
		limit = 200
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > limit {
		pageSize = limit
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func currentParty(ctx context.Context) (*auth.PartyContext, error) {
	party, ok := auth.FromContext(ctx)
	if !ok {
		return nil, ErrPartyContextRequired
	}
	if !party.Role.IsValid() {
		return nil, ErrInvalidRole
	}
	return party, nil
}

// notFound maps gorm's record-not-found onto the given service error
func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
