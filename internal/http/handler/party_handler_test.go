package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyHandler_Views(t *testing.T) {
	api := newTestAPI(t)
	open := placeBid(t, api, 27000)
	contract := agree(t, api)

	t.Run("negotiations by party id", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodGet, "/parties/"+farmerID+"/negotiations", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var bids []domain.BidDTO
		decode(t, rr, &bids)
		require.Len(t, bids, 1)
		assert.Equal(t, open.ID, bids[0].ID)
	})

	t.Run("negotiations of the caller", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodGet, "/me/negotiations", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var bids []domain.BidDTO
		decode(t, rr, &bids)
		assert.Len(t, bids, 1)
	})

	t.Run("contracts of the caller", func(t *testing.T) {
		rr := api.do(farmerCtx, http.MethodGet, "/me/contracts", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var contracts []domain.ContractDTO
		decode(t, rr, &contracts)
		require.Len(t, contracts, 1)
		assert.Equal(t, contract.ID, contracts[0].ID)
	})

	t.Run("outsider has no contracts", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodGet, "/parties/"+farmer2ID+"/contracts", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var contracts []domain.ContractDTO
		decode(t, rr, &contracts)
		assert.Empty(t, contracts)
	})

	t.Run("me requires identity", func(t *testing.T) {
		rr := api.do(context.Background(), http.MethodGet, "/me/contracts", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("stats", func(t *testing.T) {
		rr := api.do(buyerCtx, http.MethodGet, "/stats", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		var stats domain.StatsDTO
		decode(t, rr, &stats)
		assert.Equal(t, int64(2), stats.TotalCampaigns)
		assert.Equal(t, int64(1), stats.CompletedCampaigns)
		assert.Equal(t, int64(1), stats.ActiveBids)
		assert.Equal(t, int64(1), stats.TotalContracts)

		rr = api.do(buyerCtx, http.MethodGet, "/stats?partyId="+farmer2ID, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		decode(t, rr, &stats)
		assert.Equal(t, int64(0), stats.TotalContracts)
	})
}
