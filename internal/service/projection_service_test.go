package service_test

import (
	"context"
	"testing"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/agrimarket/negotiation-api/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionService_BestStandingOffer(t *testing.T) {
	e := newEngine(t)
	campaign := postWheatDemand(t, e)

	offer, err := e.projections.BestStandingOffer(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Nil(t, offer)

	first := submitBid(t, e, farmerCtx, campaign.ID, "28000")
	second := submitBid(t, e, farmer2Ctx, campaign.ID, "29000")

	offer, err = e.projections.BestStandingOffer(context.Background(), campaign.ID)
	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, second.ID, offer.BidID)

	_, err = e.negotiation.ActOnBid(buyerCtx, first.ID, counter("26500"))
	require.NoError(t, err)

	offer, err = e.projections.BestStandingOffer(context.Background(), campaign.ID)
	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, first.ID, offer.BidID)
	assert.Equal(t, domain.PartyRoleBuyer, offer.IssuedBy)
	assert.True(t, testutil.Dec("26500").Equal(offer.PricePerUnit))
	assert.True(t, testutil.Dec("1325000").Equal(offer.Amount))

	_, err = e.negotiation.ActOnBid(buyerCtx, second.ID, accept())
	require.NoError(t, err)

	offer, err = e.projections.BestStandingOffer(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Nil(t, offer)

	_, err = e.projections.BestStandingOffer(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrCampaignNotFound)
}

func TestProjectionService_PartyViews(t *testing.T) {
	e := newEngine(t)
	campaign := postWheatDemand(t, e)
	won := submitBid(t, e, farmerCtx, campaign.ID, "28000")
	submitBid(t, e, farmer2Ctx, campaign.ID, "27000")

	other := testutil.CreateTestCampaign(t, e.db, "buyer-2", domain.PartyRoleBuyer, "50")
	submitBid(t, e, farmerCtx, other.ID, "100")

	negotiations, err := e.projections.ActiveNegotiations(context.Background(), farmerID)
	require.NoError(t, err)
	assert.Len(t, negotiations, 2)

	negotiations, err = e.projections.ActiveNegotiations(context.Background(), buyerID)
	require.NoError(t, err)
	assert.Len(t, negotiations, 2)

	_, err = e.negotiation.ActOnBid(buyerCtx, won.ID, accept())
	require.NoError(t, err)

	negotiations, err = e.projections.ActiveNegotiations(context.Background(), buyerID)
	require.NoError(t, err)
	assert.Empty(t, negotiations)

	negotiations, err = e.projections.ActiveNegotiations(context.Background(), farmerID)
	require.NoError(t, err)
	require.Len(t, negotiations, 1)
	assert.Equal(t, other.ID, negotiations[0].CampaignID)

	contracts, err := e.projections.ContractsFor(context.Background(), farmerID)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	assert.Equal(t, won.ID, contracts[0].SourceBidID)

	contracts, err = e.projections.ContractsFor(context.Background(), farmer2ID)
	require.NoError(t, err)
	assert.Empty(t, contracts)

	_, err = e.projections.ActiveNegotiations(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestProjectionService_CampaignWithBids(t *testing.T) {
	e := newEngine(t)
	campaign := postWheatDemand(t, e)
	first := submitBid(t, e, farmerCtx, campaign.ID, "28000")
	submitBid(t, e, farmer2Ctx, campaign.ID, "29000")

	_, err := e.negotiation.ActOnBid(buyerCtx, first.ID, counter("26000"))
	require.NoError(t, err)

	view, err := e.projections.CampaignWithBids(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Len(t, view.Bids, 2)
	assert.Equal(t, 2, view.ActiveBids)
	require.NotNil(t, view.LowestStanding)
	require.NotNil(t, view.HighestStanding)
	assert.True(t, testutil.Dec("26000").Equal(*view.LowestStanding))
	assert.True(t, testutil.Dec("29000").Equal(*view.HighestStanding))
	require.NotNil(t, view.BestStandingOffer)
	assert.Equal(t, first.ID, view.BestStandingOffer.BidID)
}

func TestProjectionService_Stats(t *testing.T) {
	e := newEngine(t)
	agreeContract(t, e)
	open := postWheatDemand(t, e)
	submitBid(t, e, farmer2Ctx, open.ID, "27000")

	stats, err := e.projections.Stats(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalCampaigns)
	assert.Equal(t, int64(1), stats.ActiveCampaigns)
	assert.Equal(t, int64(1), stats.CompletedCampaigns)
	assert.Equal(t, int64(1), stats.ActiveBids)
	assert.Equal(t, int64(1), stats.TotalContracts)
	assert.Equal(t, int64(0), stats.CompletedContracts)
	assert.True(t, testutil.Dec("27500").Equal(stats.AverageBidPerUnit))

	stats, err = e.projections.Stats(context.Background(), farmer2ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalCampaigns)
	assert.Equal(t, int64(1), stats.ActiveBids)
	assert.Equal(t, int64(0), stats.TotalContracts)
}
