package handler_test

import (
	"net/http"
	"testing"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// placeBid posts a farmer bid at price on a new buyer campaign of 50 quintal
func placeBid(t *testing.T, api *testAPI, price int) domain.BidDTO {
	t.Helper()
	campaign := testutil.CreateTestCampaign(t, api.db, buyerID, domain.PartyRoleBuyer, "50")
	rr := api.do(farmerCtx, http.MethodPost, "/campaigns/"+campaign.ID.String()+"/bids", map[string]interface{}{
		"pricePerUnit": price,
		"quantity":     50,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var bid domain.BidDTO
	decode(t, rr, &bid)
	return bid
}

func TestBidHandler_Act(t *testing.T) {
	api := newTestAPI(t)
	bid := placeBid(t, api, 28000)
	actions := "/bids/" + bid.ID.String() + "/actions"

	t.Run("counter must converge", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, actions, map[string]interface{}{
			"action":              "counter",
			"counterPricePerUnit": 29000,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	rr := api.do(buyerCtx, http.MethodPost, actions, map[string]interface{}{
		"action":              "counter",
		"counterPricePerUnit": 26000,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var countered domain.ActOnBidResult
	decode(t, rr, &countered)
	assert.Equal(t, domain.BidStatusCounterOffered, countered.Bid.Status)
	assert.Equal(t, 2, countered.Bid.Version)
	assert.Nil(t, countered.Contract)

	t.Run("same party cannot act twice in a row", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, actions, map[string]interface{}{"action": "accept"})
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, domain.ErrorTypeInvalidTransition, errorType(t, rr))
	})

	t.Run("stale expected version", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodPost, actions, map[string]interface{}{
			"action":          "accept",
			"expectedVersion": 1,
		})
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, domain.ErrorTypeConflict, errorType(t, rr))
	})

	t.Run("unknown action", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodPost, actions, map[string]interface{}{"action": "withdraw"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	rr = api.do(farmerCtx, http.MethodPost, actions, map[string]interface{}{
		"action":          "accept",
		"expectedVersion": 2,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var accepted domain.ActOnBidResult
	decode(t, rr, &accepted)
	assert.Equal(t, domain.BidStatusAccepted, accepted.Bid.Status)
	require.NotNil(t, accepted.Contract)
	assert.True(t, accepted.Contract.AgreedPricePerUnit.Equal(testutil.Dec("26000")))
	assert.Equal(t, "/api/v1/contracts/"+accepted.Contract.ID.String(), rr.Header().Get("Location"))

	t.Run("accepted bid is final", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, actions, map[string]interface{}{"action": "reject"})
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, domain.ErrorTypeInvalidTransition, errorType(t, rr))
	})

	t.Run("history lists every action", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/bids/"+bid.ID.String()+"/history", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var events []domain.BidEventDTO
		decode(t, rr, &events)
		require.Len(t, events, 3)
		assert.Equal(t, domain.BidActionSubmit, events[0].Action)
		assert.Equal(t, domain.BidActionCounter, events[1].Action)
		assert.Equal(t, domain.BidActionAccept, events[2].Action)
	})

	t.Run("contract of accepted bid", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/bids/"+bid.ID.String()+"/contract", nil)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		var contract domain.ContractDTO
		decode(t, rr, &contract)
		assert.Equal(t, accepted.Contract.ID, contract.ID)
		assert.Equal(t, bid.ID, contract.SourceBidID)
		assert.Equal(t, domain.StageInitialPayment, contract.CurrentStage)
	})

	t.Run("open bid has no contract", func(t *testing.T) {
		open := placeBid(t, api, 27000)
		rr := api.do(farmerCtx, http.MethodGet, "/bids/"+open.ID.String()+"/contract", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, domain.ErrorTypeNotFound, errorType(t, rr))
	})
}

func TestBidHandler_GetAndList(t *testing.T) {
	api := newTestAPI(t)
	bid := placeBid(t, api, 28000)
	placeBid(t, api, 27500)

	rr := api.do(buyerCtx, http.MethodGet, "/bids/"+bid.ID.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.BidDTO
	decode(t, rr, &got)
	assert.Equal(t, bid.ID, got.ID)
	assert.True(t, got.StandingPrice.Equal(testutil.Dec("28000")))

	rr = api.do(buyerCtx, http.MethodGet, "/bids/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = api.do(buyerCtx, http.MethodGet, "/bids?campaignId="+bid.CampaignID.String(), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var page struct {
		Data  []domain.BidDTO `json:"data"`
		Total int64           `json:"total"`
	}
	decode(t, rr, &page)
	assert.Equal(t, int64(1), page.Total)

	rr = api.do(buyerCtx, http.MethodGet, "/bids?bidderId="+farmerID+"&status=pending", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	decode(t, rr, &page)
	assert.Equal(t, int64(2), page.Total)

	rr = api.do(buyerCtx, http.MethodGet, "/bids?campaignId=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
