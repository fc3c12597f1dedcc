package mapper

import (
	"time"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// ToCampaignDTO converts Campaign entity to DTO
func ToCampaignDTO(c *domain.Campaign) domain.CampaignDTO {
	return domain.CampaignDTO{
		ID:              c.ID,
		Title:           c.Title,
		Crop:            c.Crop,
		Variety:         c.Variety,
		Location:        c.Location,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Quantity:        c.Quantity,
		Unit:            c.Unit,
		QuantityFixed:   c.QuantityFixed,
		MinPricePerUnit: nullDecimalPtr(c.MinPricePerUnit),
		MaxPricePerUnit: nullDecimalPtr(c.MaxPricePerUnit),
		QualityGrade:    c.QualityGrade,
		Description:     c.Description,
		CreatorRole:     c.CreatorRole,
		CreatorID:       c.CreatorID,
		CreatorName:     c.CreatorName,
		Status:          c.Status,
		Version:         c.Version,
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
}

// ToBidDTO converts Bid entity to DTO, including its standing offer
func ToBidDTO(b *domain.Bid) domain.BidDTO {
	return domain.BidDTO{
		ID:                  b.ID,
		CampaignID:          b.CampaignID,
		BidderID:            b.BidderID,
		BidderRole:          b.BidderRole,
		BidderName:          b.BidderName,
		PricePerUnit:        b.PricePerUnit,
		Quantity:            b.Quantity,
		Unit:                b.Unit,
		TotalAmount:         b.TotalAmount,
		DeliveryTerms:       b.DeliveryTerms,
		QualityGrade:        b.QualityGrade,
		Notes:               b.Notes,
		Status:              b.Status,
		CounterPricePerUnit: nullDecimalPtr(b.CounterPricePerUnit),
		CounterAmount:       nullDecimalPtr(b.CounterAmount),
		CounterTerms:        b.CounterTerms,
		StandingPrice:       b.StandingPricePerUnit(),
		StandingAmount:      b.StandingAmount(),
		LastActionRole:      b.LastActionRole,
		LastActionBy:        b.LastActionBy,
		RejectedBy:          b.RejectedBy,
		ActionNotes:         b.ActionNotes,
		Version:             b.Version,
		CreatedAt:           formatTime(b.CreatedAt),
		UpdatedAt:           formatTime(b.UpdatedAt),
	}
}

// ToBidDTOs converts a slice of bids
func ToBidDTOs(bids []domain.Bid) []domain.BidDTO {
	dtos := make([]domain.BidDTO, len(bids))
	for i := range bids {
		dtos[i] = ToBidDTO(&bids[i])
	}
	return dtos
}

// ToOfferDTO projects the standing offer of a bid
func ToOfferDTO(b *domain.Bid) domain.OfferDTO {
	return domain.OfferDTO{
		CampaignID:   b.CampaignID,
		BidID:        b.ID,
		BidderID:     b.BidderID,
		BidderRole:   b.BidderRole,
		IssuedBy:     b.LastActionRole,
		PricePerUnit: b.StandingPricePerUnit(),
		Quantity:     b.Quantity,
		Unit:         b.Unit,
		Amount:       b.StandingAmount(),
		Status:       b.Status,
		UpdatedAt:    formatTime(b.UpdatedAt),
	}
}

func ToBidEventDTO(e *domain.BidEvent) domain.BidEventDTO {
	return domain.BidEventDTO{
		ID:           e.ID,
		BidID:        e.BidID,
		Action:       e.Action,
		ActorRole:    e.ActorRole,
		ActorID:      e.ActorID,
		FromStatus:   e.FromStatus,
		ToStatus:     e.ToStatus,
		PricePerUnit: e.PricePerUnit,
		Amount:       e.Amount,
		Notes:        e.Notes,
		BidVersion:   e.BidVersion,
		CreatedAt:    formatTime(e.CreatedAt),
	}
}

// ToContractDTO converts Contract entity to DTO
func ToContractDTO(c *domain.Contract) domain.ContractDTO {
	dto := domain.ContractDTO{
		ID:                 c.ID,
		CampaignID:         c.CampaignID,
		SourceBidID:        c.SourceBidID,
		Title:              c.Title,
		Crop:               c.Crop,
		Variety:            c.Variety,
		Location:           c.Location,
		FarmerID:           c.FarmerID,
		FarmerName:         c.FarmerName,
		BuyerID:            c.BuyerID,
		BuyerName:          c.BuyerName,
		AgreedPricePerUnit: c.AgreedPricePerUnit,
		AgreedPrice:        c.AgreedPrice,
		Quantity:           c.Quantity,
		Unit:               c.Unit,
		DeliveryTerms:      c.DeliveryTerms,
		QualityGrade:       c.QualityGrade,
		Notes:              c.Notes,
		CurrentStage:       c.CurrentStage,
		StageIndex:         c.CurrentStage.Index(),
		ContractStatus:     c.ContractStatus,
		CompletedAt:        formatTimePtr(c.CompletedAt),
		CreatedAt:          formatTime(c.CreatedAt),
		UpdatedAt:          formatTime(c.UpdatedAt),
	}
	if next, ok := c.CurrentStage.Next(); ok {
		dto.NextStage = &next
	}
	return dto
}

// ToContractDTOs converts a slice of contracts
func ToContractDTOs(contracts []domain.Contract) []domain.ContractDTO {
	dtos := make([]domain.ContractDTO, len(contracts))
	for i := range contracts {
		dtos[i] = ToContractDTO(&contracts[i])
	}
	return dtos
}

func ToContractStageEventDTO(e *domain.ContractStageEvent) domain.ContractStageEventDTO {
	return domain.ContractStageEventDTO{
		ID:            e.ID,
		Kind:          e.Kind,
		FromStage:     e.FromStage,
		ToStage:       e.ToStage,
		ChangedByID:   e.ChangedByID,
		ChangedByRole: e.ChangedByRole,
		Reason:        e.Reason,
		ChangedAt:     formatTime(e.ChangedAt),
	}
}

func ToNotificationDTO(n *domain.Notification) domain.NotificationDTO {
	return domain.NotificationDTO{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		Read:       n.Read,
		ReadAt:     formatTimePtr(n.ReadAt),
		CreatedAt:  formatTime(n.CreatedAt),
	}
}
