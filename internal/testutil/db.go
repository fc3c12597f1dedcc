package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/agrimarket/negotiation-api/internal/auth"
	"github.com/agrimarket/negotiation-api/internal/database"
	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// A single connection serializes transactions the way row locks would on PostgreSQL.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(t, err, "failed to open sqlite test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// PartyContext returns a context carrying the given party identity
func PartyContext(partyID string, role domain.PartyRole) context.Context {
	return auth.WithPartyContext(context.Background(), &auth.PartyContext{
		PartyID:     partyID,
		Role:        role,
		DisplayName: partyID,
		Method:      auth.MethodJWT,
	})
}

// Dec parses a decimal literal and panics on malformed input
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DecPtr parses a decimal literal into a pointer, as request DTOs expect
func DecPtr(s string) *decimal.Decimal {
	d := Dec(s)
	return &d
}

// CreateTestCampaign inserts an active campaign owned by creatorID
func CreateTestCampaign(t *testing.T, db *gorm.DB, creatorID string, role domain.PartyRole, quantity string) *domain.Campaign {
	t.Helper()
	now := time.Now().UTC()
	campaign := &domain.Campaign{
		Title:         "Wheat harvest",
		Crop:          "Wheat",
		Location:      "Ludhiana",
		StartDate:     now,
		EndDate:       now.AddDate(0, 1, 0),
		Quantity:      Dec(quantity),
		Unit:          domain.UnitQuintal,
		QuantityFixed: true,
		QualityGrade:  "Grade A",
		CreatorRole:   role,
		CreatorID:     creatorID,
		CreatorName:   creatorID,
		Status:        domain.CampaignStatusActive,
		Version:       1,
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}

// CreateTestBid inserts a pending bid on campaign without going through the negotiation rules
func CreateTestBid(t *testing.T, db *gorm.DB, campaign *domain.Campaign, bidderID string, price string) *domain.Bid {
	t.Helper()
	bid := &domain.Bid{
		CampaignID:     campaign.ID,
		BidderID:       bidderID,
		BidderRole:     campaign.CreatorRole.Counterpart(),
		BidderName:     bidderID,
		PricePerUnit:   Dec(price),
		Quantity:       campaign.Quantity,
		Unit:           campaign.Unit,
		Status:         domain.BidStatusPending,
		LastActionRole: campaign.CreatorRole.Counterpart(),
		LastActionBy:   bidderID,
		Version:        1,
	}
	bid.Recalculate()
	require.NoError(t, db.Create(bid).Error)
	return bid
}
