package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wheatDemand() map[string]interface{} {
	return map[string]interface{}{
		"title":           "Wheat for flour mill",
		"crop":            "Wheat",
		"location":        "Ludhiana",
		"startDate":       "2026-11-01T00:00:00Z",
		"endDate":         "2026-12-01T00:00:00Z",
		"quantity":        50,
		"unit":            "ton",
		"minPricePerUnit": 25000,
		"maxPricePerUnit": 30000,
	}
}

func TestCampaignHandler_Create(t *testing.T) {
	api := newTestAPI(t)

	t.Run("creates campaign for caller", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, "/campaigns", wheatDemand())
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var campaign domain.CampaignDTO
		decode(t, rr, &campaign)
		assert.Equal(t, buyerID, campaign.CreatorID)
		assert.Equal(t, domain.PartyRoleBuyer, campaign.CreatorRole)
		assert.Equal(t, domain.CampaignStatusActive, campaign.Status)
		assert.Equal(t, "/api/v1/campaigns/"+campaign.ID.String(), rr.Header().Get("Location"))
	})

	t.Run("invalid json", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, "/campaigns", "invalid json")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, domain.ErrorTypeBadRequest, errorType(t, rr))
	})

	t.Run("missing required fields", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, "/campaigns", map[string]interface{}{"title": "No crop"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var apiErr domain.APIError
		decode(t, rr, &apiErr)
		assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
		assert.Contains(t, apiErr.Errors, "crop")
		assert.Contains(t, apiErr.Errors, "quantity")
	})

	t.Run("business rule violation", func(t *testing.T) {
		body := wheatDemand()
		body["minPricePerUnit"] = 40000
		rr := api.do(buyerCtx, http.MethodPost, "/campaigns", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, domain.ErrorTypeValidation, errorType(t, rr))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rr := api.do(context.Background(), http.MethodPost, "/campaigns", wheatDemand())
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCampaignHandler_GetAndList(t *testing.T) {
	api := newTestAPI(t)
	wheat := testutil.CreateTestCampaign(t, api.db, buyerID, domain.PartyRoleBuyer, "50")
	testutil.CreateTestCampaign(t, api.db, farmerID, domain.PartyRoleFarmer, "20")

	t.Run("get by id", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/campaigns/"+wheat.ID.String(), nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var campaign domain.CampaignDTO
		decode(t, rr, &campaign)
		assert.Equal(t, wheat.ID, campaign.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/campaigns/00000000-0000-0000-0000-000000000001", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, domain.ErrorTypeNotFound, errorType(t, rr))
	})

	t.Run("malformed id", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/campaigns/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("list filtered by creator role", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/campaigns?creatorRole=buyer", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var page struct {
			Data  []domain.CampaignDTO `json:"data"`
			Total int64                `json:"total"`
		}
		decode(t, rr, &page)
		assert.Equal(t, int64(1), page.Total)
		require.Len(t, page.Data, 1)
		assert.Equal(t, wheat.ID, page.Data[0].ID)
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/campaigns?status=archived", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCampaignHandler_SubmitBidAndBestOffer(t *testing.T) {
	api := newTestAPI(t)
	campaign := testutil.CreateTestCampaign(t, api.db, buyerID, domain.PartyRoleBuyer, "50")
	base := "/campaigns/" + campaign.ID.String()

	rr := api.do(farmerCtx, http.MethodGet, base+"/best-offer", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = api.do(farmerCtx, http.MethodPost, base+"/bids", map[string]interface{}{
		"pricePerUnit": 28000,
		"quantity":     50,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var bid domain.BidDTO
	decode(t, rr, &bid)
	assert.Equal(t, domain.BidStatusPending, bid.Status)
	assert.Equal(t, "/api/v1/bids/"+bid.ID.String(), rr.Header().Get("Location"))

	rr = api.do(buyerCtx, http.MethodGet, base+"/best-offer", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var offer domain.OfferDTO
	decode(t, rr, &offer)
	assert.Equal(t, bid.ID, offer.BidID)
	assert.True(t, offer.PricePerUnit.Equal(testutil.Dec("28000")))

	rr = api.do(buyerCtx, http.MethodGet, base+"/bids", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var withBids domain.CampaignWithBidsDTO
	decode(t, rr, &withBids)
	assert.Len(t, withBids.Bids, 1)
	assert.Equal(t, 1, withBids.ActiveBids)

	t.Run("creator cannot bid on own campaign", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodPost, base+"/bids", map[string]interface{}{
			"pricePerUnit": 28000,
			"quantity":     50,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("fixed quantity must match", func(t *testing.T) {
		rr := api.do(farmer2Ctx, http.MethodPost, base+"/bids", map[string]interface{}{
			"pricePerUnit": 27000,
			"quantity":     40,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestCampaignHandler_Delete(t *testing.T) {
	api := newTestAPI(t)

	t.Run("creator deletes campaign without bids", func(t *testing.T) {
		campaign := testutil.CreateTestCampaign(t, api.db, buyerID, domain.PartyRoleBuyer, "50")
		path := "/campaigns/" + campaign.ID.String()

		rr := api.do(farmerCtx, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		rr = api.do(buyerCtx, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

		rr = api.do(buyerCtx, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("campaign with bids is kept", func(t *testing.T) {
		bid := placeBid(t, api, 28000)
		path := "/campaigns/" + bid.CampaignID.String()

		rr := api.do(buyerCtx, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, domain.ErrorTypeValidation, errorType(t, rr))

		rr = api.do(buyerCtx, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodDelete, "/campaigns/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
