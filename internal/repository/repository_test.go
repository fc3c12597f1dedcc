package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCampaignRepository_CompleteIfActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	campaign := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")

	completed, err := repo.CompleteIfActive(ctx, campaign.ID)
	require.NoError(t, err)
	assert.True(t, completed)

	completed, err = repo.CompleteIfActive(ctx, campaign.ID)
	require.NoError(t, err)
	assert.False(t, completed)

	reloaded, err := repo.GetByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignStatusCompleted, reloaded.Status)
	assert.Equal(t, 2, reloaded.Version)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCampaignRepository_UpdateDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	campaign := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	campaign.Title = "Durum wheat"

	updated, err := repo.UpdateDetails(ctx, campaign, 1, false)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.UpdateDetails(ctx, campaign, 1, false)
	require.NoError(t, err)
	assert.False(t, updated, "stale version must not update")

	reloaded, err := repo.GetByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, "Durum wheat", reloaded.Title)
	assert.Equal(t, 2, reloaded.Version)
}

func TestCampaignRepository_TermsFrozenByBids(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	campaign := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	stale := *campaign

	testutil.CreateTestBid(t, db, campaign, "farmer-1", "2200")
	reserved, err := repo.ReserveForBid(ctx, campaign.ID)
	require.NoError(t, err)
	assert.True(t, reserved)

	stale.Quantity = testutil.Dec("60")
	updated, err := repo.UpdateDetails(ctx, &stale, stale.Version, true)
	require.NoError(t, err)
	assert.False(t, updated, "edit read before the bid must not apply")

	current, err := repo.GetByID(ctx, campaign.ID)
	require.NoError(t, err)
	assert.True(t, testutil.Dec("50").Equal(current.Quantity))

	current.Quantity = testutil.Dec("60")
	updated, err = repo.UpdateDetails(ctx, current, current.Version, true)
	require.NoError(t, err)
	assert.False(t, updated, "quantity must not change once a bid exists")

	current.Quantity = testutil.Dec("50")
	current.Title = "Renamed"
	updated, err = repo.UpdateDetails(ctx, current, current.Version, false)
	require.NoError(t, err)
	assert.True(t, updated)

	_, err = repo.CompleteIfActive(ctx, campaign.ID)
	require.NoError(t, err)
	reserved, err = repo.ReserveForBid(ctx, campaign.ID)
	require.NoError(t, err)
	assert.False(t, reserved)
}

func TestCampaignRepository_DeleteUnused(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	unused := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	deleted, err := repo.DeleteUnused(ctx, unused.ID, unused.Version+1)
	require.NoError(t, err)
	assert.False(t, deleted, "stale version must not delete")

	deleted, err = repo.DeleteUnused(ctx, unused.ID, unused.Version)
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = repo.GetByID(ctx, unused.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	withBid := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	testutil.CreateTestBid(t, db, withBid, "farmer-1", "2200")
	deleted, err = repo.DeleteUnused(ctx, withBid.ID, withBid.Version)
	require.NoError(t, err)
	assert.False(t, deleted)
	_, err = repo.GetByID(ctx, withBid.ID)
	assert.NoError(t, err)
}

func TestCampaignRepository_ListAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewCampaignRepository(db)
	ctx := context.Background()

	testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "20")
	closed := testutil.CreateTestCampaign(t, db, "farmer-1", domain.PartyRoleFarmer, "10")
	completed, err := repo.CompleteIfActive(ctx, closed.ID)
	require.NoError(t, err)
	require.True(t, completed)

	creator := "buyer-1"
	campaigns, total, err := repo.List(ctx, 1, 1, &repository.CampaignFilters{CreatorID: &creator})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, campaigns, 1)

	counts, err := repo.CountByStatus(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.CampaignStatusActive])
	assert.Equal(t, int64(1), counts[domain.CampaignStatusCompleted])

	counts, err = repo.CountByStatus(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), counts[domain.CampaignStatusActive])
}

func TestBidRepository_UpdateIfVersion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBidRepository(db)
	ctx := context.Background()

	campaign := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	bid := testutil.CreateTestBid(t, db, campaign, "farmer-1", "28000")

	bid.Status = domain.BidStatusCounterOffered
	bid.CounterPricePerUnit.Decimal = testutil.Dec("26000")
	bid.CounterPricePerUnit.Valid = true
	bid.LastActionRole = domain.PartyRoleBuyer
	bid.LastActionBy = "buyer-1"

	updated, err := repo.UpdateIfVersion(ctx, bid, 1)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, 2, bid.Version)

	updated, err = repo.UpdateIfVersion(ctx, bid, 1)
	require.NoError(t, err)
	assert.False(t, updated)

	reloaded, err := repo.GetByID(ctx, bid.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BidStatusCounterOffered, reloaded.Status)
	require.True(t, reloaded.CounterAmount.Valid)
	assert.True(t, testutil.Dec("1300000").Equal(reloaded.CounterAmount.Decimal))
	assert.Equal(t, 2, reloaded.Version)
}

func TestBidRepository_OpenBids(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewBidRepository(db)
	campaigns := repository.NewCampaignRepository(db)
	ctx := context.Background()

	campaign := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	older := testutil.CreateTestBid(t, db, campaign, "farmer-1", "28000")
	newer := testutil.CreateTestBid(t, db, campaign, "farmer-2", "27000")
	rejected := testutil.CreateTestBid(t, db, campaign, "farmer-3", "29000")
	require.NoError(t, db.Model(rejected).Update("status", domain.BidStatusRejected).Error)
	require.NoError(t, db.Model(older).Update("updated_at", time.Now().UTC().Add(time.Minute)).Error)

	latest, err := repo.LatestOpenByCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, older.ID, latest.ID)

	open, err := repo.ListOpenForParty(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Len(t, open, 2)

	open, err = repo.ListOpenForParty(ctx, "farmer-2")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, newer.ID, open[0].ID)

	count, err := repo.CountOpen(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	avg, err := repo.AveragePricePerUnit(ctx, "")
	require.NoError(t, err)
	assert.True(t, testutil.Dec("28000").Equal(avg))

	completed, err := campaigns.CompleteIfActive(ctx, campaign.ID)
	require.NoError(t, err)
	require.True(t, completed)

	count, err = repo.CountOpen(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestContractRepository_UniquePerCampaign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContractRepository(db)
	ctx := context.Background()

	campaign := testutil.CreateTestCampaign(t, db, "buyer-1", domain.PartyRoleBuyer, "50")
	first := testutil.CreateTestBid(t, db, campaign, "farmer-1", "28000")
	second := testutil.CreateTestBid(t, db, campaign, "farmer-2", "27000")

	newContract := func(bid *domain.Bid) *domain.Contract {
		return &domain.Contract{
			CampaignID:         campaign.ID,
			SourceBidID:        bid.ID,
			Title:              "Contract: Wheat harvest",
			Crop:               campaign.Crop,
			FarmerID:           bid.BidderID,
			BuyerID:            campaign.CreatorID,
			AgreedPricePerUnit: bid.PricePerUnit,
			AgreedPrice:        bid.TotalAmount,
			Quantity:           bid.Quantity,
			Unit:               bid.Unit,
			CurrentStage:       domain.FirstStage(),
			ContractStatus:     domain.ContractStatusActive,
		}
	}

	contract := newContract(first)
	require.NoError(t, repo.Create(ctx, contract))

	err := repo.Create(ctx, newContract(second))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	fetched, err := repo.GetBySourceBid(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.ID, fetched.ID)

	contract.CurrentStage = domain.StageSowing
	moved, err := repo.MoveStage(ctx, contract, domain.StageInitialPayment)
	require.NoError(t, err)
	assert.True(t, moved)

	contract.CurrentStage = domain.StageHarvesting
	moved, err = repo.MoveStage(ctx, contract, domain.StageInitialPayment)
	require.NoError(t, err)
	assert.False(t, moved, "stage compare-and-set must fail on stale stage")

	stage := domain.StageSowing
	contracts, total, err := repo.List(ctx, 1, 10, &repository.ContractFilters{Stage: &stage})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, contracts, 1)

	counts, err := repo.CountByStatus(ctx, "farmer-2")
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestEventRepositories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	bidEvents := repository.NewBidEventRepository(db)
	stageEvents := repository.NewContractStageEventRepository(db)

	bidID, campaignID := uuid.New(), uuid.New()
	base := time.Now().UTC()
	for i, action := range []domain.BidAction{domain.BidActionSubmit, domain.BidActionCounter} {
		require.NoError(t, bidEvents.Append(ctx, &domain.BidEvent{
			BidID:        bidID,
			CampaignID:   campaignID,
			Action:       action,
			ActorRole:    domain.PartyRoleFarmer,
			ActorID:      "farmer-1",
			ToStatus:     domain.BidStatusPending,
			PricePerUnit: testutil.Dec("100"),
			Amount:       testutil.Dec("1000"),
			BidVersion:   i + 1,
			CreatedAt:    base.Add(time.Duration(i) * time.Second),
		}))
	}

	events, err := bidEvents.ListByBid(ctx, bidID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.BidActionSubmit, events[0].Action)

	contractID := uuid.New()
	require.NoError(t, stageEvents.Record(ctx, &domain.ContractStageEvent{
		ContractID:  contractID,
		Kind:        domain.StageChangeAdvance,
		ToStage:     domain.StageInitialPayment,
		ChangedByID: "buyer-1",
		ChangedAt:   base,
	}))
	changes, err := stageEvents.ListByContract(ctx, contractID)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Nil(t, changes[0].FromStage)
}

func TestNotificationRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewNotificationRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Notification{
			PartyID: "farmer-1",
			Type:    domain.NotificationTypeBidReceived,
			Title:   "New bid received",
		}))
	}

	items, total, err := repo.ListByParty(ctx, "farmer-1", 1, 2, true)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 2)

	require.NoError(t, repo.MarkAsRead(ctx, items[0].ID))
	count, err := repo.CountUnread(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repo.MarkAllAsRead(ctx, "farmer-1"))
	count, err = repo.CountUnread(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
