package service_test

import (
	"context"
	"testing"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Inbox(t *testing.T) {
	e := newEngine(t)
	campaign := postWheatDemand(t, e)
	bid := submitBid(t, e, farmerCtx, campaign.ID, "28000")

	count, err := e.notifications.UnreadCount(buyerCtx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	page, err := e.notifications.ListForCurrentParty(buyerCtx, 1, 20, true)
	require.NoError(t, err)
	items, ok := page.Data.([]domain.NotificationDTO)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, domain.NotificationTypeBidReceived, items[0].Type)
	require.NotNil(t, items[0].EntityID)
	assert.Equal(t, bid.ID, *items[0].EntityID)

	t.Run("other party cannot read it", func(t *testing.T) {
		err := e.notifications.MarkAsRead(farmerCtx, items[0].ID)
		assert.ErrorIs(t, err, service.ErrNotificationNotFound)
	})

	t.Run("owner marks read", func(t *testing.T) {
		require.NoError(t, e.notifications.MarkAsRead(buyerCtx, items[0].ID))
		count, err := e.notifications.UnreadCount(buyerCtx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count.Count)
	})

	t.Run("unknown notification", func(t *testing.T) {
		err := e.notifications.MarkAsRead(buyerCtx, uuid.New())
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("accept notifies both parties of the contract", func(t *testing.T) {
		_, err := e.negotiation.ActOnBid(buyerCtx, bid.ID, accept())
		require.NoError(t, err)

		// bid_accepted and contract_created
		count, err := e.notifications.UnreadCount(farmerCtx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count.Count)

		count, err = e.notifications.UnreadCount(buyerCtx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count.Count)

		require.NoError(t, e.notifications.MarkAllAsRead(farmerCtx))
		count, err = e.notifications.UnreadCount(farmerCtx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count.Count)
	})

	t.Run("missing identity", func(t *testing.T) {
		_, err := e.notifications.UnreadCount(context.Background())
		assert.ErrorIs(t, err, service.ErrPartyContextRequired)
	})
}
