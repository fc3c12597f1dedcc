package service_test

import (
	"context"
	"testing"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/agrimarket/negotiation-api/internal/repository"
	"github.com/agrimarket/negotiation-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// agreeContract runs a campaign through to an accepted bid and returns the contract
func agreeContract(t *testing.T, e *engine) *domain.ContractDTO {
	t.Helper()
	campaign := postWheatDemand(t, e)
	bid := submitBid(t, e, farmerCtx, campaign.ID, "28000")
	result, err := e.negotiation.ActOnBid(buyerCtx, bid.ID, accept())
	require.NoError(t, err)
	require.NotNil(t, result.Contract)
	return result.Contract
}

func advance(stage domain.Stage) *domain.AdvanceContractRequest {
	return &domain.AdvanceContractRequest{TargetStage: stage}
}

func TestContractService_Advance(t *testing.T) {
	e := newEngine(t)
	contract := agreeContract(t, e)

	t.Run("skip forward", func(t *testing.T) {
		updated, err := e.contracts.Advance(farmerCtx, contract.ID, advance(domain.StageSowing))
		require.NoError(t, err)
		assert.Equal(t, domain.StageSowing, updated.CurrentStage)
		assert.Equal(t, 2, updated.StageIndex)
		require.NotNil(t, updated.NextStage)
		assert.Equal(t, domain.StageFertilizing, *updated.NextStage)
	})

	t.Run("earlier stage", func(t *testing.T) {
		_, err := e.contracts.Advance(buyerCtx, contract.ID, advance(domain.StageInitialPayment))
		assert.ErrorIs(t, err, service.ErrInvalidStageTransition)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("same stage", func(t *testing.T) {
		_, err := e.contracts.Advance(buyerCtx, contract.ID, advance(domain.StageSowing))
		assert.ErrorIs(t, err, service.ErrInvalidStageTransition)
	})

	t.Run("next stage", func(t *testing.T) {
		updated, err := e.contracts.Advance(buyerCtx, contract.ID, advance(domain.StageFertilizing))
		require.NoError(t, err)
		assert.Equal(t, domain.StageFertilizing, updated.CurrentStage)
		assert.Equal(t, domain.ContractStatusActive, updated.ContractStatus)
	})

	t.Run("unknown stage", func(t *testing.T) {
		_, err := e.contracts.Advance(buyerCtx, contract.ID, advance("threshing"))
		assert.ErrorIs(t, err, service.ErrInvalidStage)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("outsider", func(t *testing.T) {
		_, err := e.contracts.Advance(farmer2Ctx, contract.ID, advance(domain.StageIrrigation))
		assert.ErrorIs(t, err, service.ErrNotAParty)
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, err := e.contracts.Advance(buyerCtx, uuid.New(), advance(domain.StageIrrigation))
		assert.ErrorIs(t, err, service.ErrContractNotFound)
	})

	t.Run("delivery completes", func(t *testing.T) {
		updated, err := e.contracts.Advance(farmerCtx, contract.ID, advance(domain.StageDelivery))
		require.NoError(t, err)
		assert.Equal(t, domain.ContractStatusCompleted, updated.ContractStatus)
		assert.NotNil(t, updated.CompletedAt)
		assert.Nil(t, updated.NextStage)

		_, err = e.contracts.Advance(farmerCtx, contract.ID, advance(domain.StageDelivery))
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})
}

func TestContractService_Correct(t *testing.T) {
	e := newEngine(t)
	contract := agreeContract(t, e)

	_, err := e.contracts.Advance(farmerCtx, contract.ID, advance(domain.StageHarvesting))
	require.NoError(t, err)

	t.Run("reason required", func(t *testing.T) {
		_, err := e.contracts.Correct(buyerCtx, contract.ID, &domain.CorrectContractStageRequest{TargetStage: domain.StageSowing, Reason: "  "})
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("must move backward", func(t *testing.T) {
		_, err := e.contracts.Correct(buyerCtx, contract.ID, &domain.CorrectContractStageRequest{TargetStage: domain.StageFinalPayment, Reason: "typo"})
		assert.ErrorIs(t, err, service.ErrInvalidStageTransition)
	})

	t.Run("moves back", func(t *testing.T) {
		updated, err := e.contracts.Correct(buyerCtx, contract.ID, &domain.CorrectContractStageRequest{
			TargetStage: domain.StageSowing,
			Reason:      "harvesting was recorded by mistake",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StageSowing, updated.CurrentStage)
	})

	history, err := e.contracts.StageHistory(context.Background(), contract.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Nil(t, history[0].FromStage)
	assert.Equal(t, domain.StageInitialPayment, history[0].ToStage)
	assert.Equal(t, domain.StageChangeAdvance, history[1].Kind)
	assert.Equal(t, domain.StageHarvesting, history[1].ToStage)
	assert.Equal(t, domain.StageChangeCorrection, history[2].Kind)
	require.NotNil(t, history[2].FromStage)
	assert.Equal(t, domain.StageHarvesting, *history[2].FromStage)
	assert.Equal(t, "harvesting was recorded by mistake", history[2].Reason)
	assert.Equal(t, domain.PartyRoleBuyer, history[2].ChangedByRole)

	t.Run("completed contracts cannot be corrected", func(t *testing.T) {
		_, err := e.contracts.Advance(farmerCtx, contract.ID, advance(domain.StageDelivery))
		require.NoError(t, err)

		_, err = e.contracts.Correct(farmerCtx, contract.ID, &domain.CorrectContractStageRequest{TargetStage: domain.StageSowing, Reason: "late"})
		assert.ErrorIs(t, err, service.ErrContractClosed)
	})
}

func TestContractService_List(t *testing.T) {
	e := newEngine(t)
	contract := agreeContract(t, e)

	party := farmerID
	page, err := e.contracts.List(context.Background(), 1, 20, &repository.ContractFilters{PartyID: &party})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	completed := domain.ContractStatusCompleted
	page, err = e.contracts.List(context.Background(), 1, 20, &repository.ContractFilters{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)

	fetched, err := e.contracts.GetByID(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.SourceBidID, fetched.SourceBidID)
}
