package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response DTOs

type CampaignDTO struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Crop            string           `json:"crop"`
	Variety         string           `json:"variety,omitempty"`
	Location        string           `json:"location"`
	StartDate       time.Time        `json:"startDate"`
	EndDate         time.Time        `json:"endDate"`
	Quantity        decimal.Decimal  `json:"quantity"`
	Unit            QuantityUnit     `json:"unit"`
	QuantityFixed   bool             `json:"quantityFixed"`
	MinPricePerUnit *decimal.Decimal `json:"minPricePerUnit,omitempty"`
	MaxPricePerUnit *decimal.Decimal `json:"maxPricePerUnit,omitempty"`
	QualityGrade    string           `json:"qualityGrade,omitempty"`
	Description     string           `json:"description,omitempty"`
	CreatorRole     PartyRole        `json:"creatorRole"`
	CreatorID       string           `json:"creatorId"`
	CreatorName     string           `json:"creatorName,omitempty"`
	Status          CampaignStatus   `json:"status"`
	Version         int              `json:"version"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
}

type BidDTO struct {
	ID                  uuid.UUID        `json:"id"`
	CampaignID          uuid.UUID        `json:"campaignId"`
	BidderID            string           `json:"bidderId"`
	BidderRole          PartyRole        `json:"bidderRole"`
	BidderName          string           `json:"bidderName,omitempty"`
	PricePerUnit        decimal.Decimal  `json:"pricePerUnit"`
	Quantity            decimal.Decimal  `json:"quantity"`
	Unit                QuantityUnit     `json:"unit"`
	TotalAmount         decimal.Decimal  `json:"totalAmount"`
	DeliveryTerms       string           `json:"deliveryTerms,omitempty"`
	QualityGrade        string           `json:"qualityGrade,omitempty"`
	Notes               string           `json:"notes,omitempty"`
	Status              BidStatus        `json:"status"`
	CounterPricePerUnit *decimal.Decimal `json:"counterPricePerUnit,omitempty"`
	CounterAmount       *decimal.Decimal `json:"counterAmount,omitempty"`
	CounterTerms        string           `json:"counterTerms,omitempty"`
	StandingPrice       decimal.Decimal  `json:"standingPricePerUnit"`
	StandingAmount      decimal.Decimal  `json:"standingAmount"`
	LastActionRole      PartyRole        `json:"lastActionRole"`
	LastActionBy        string           `json:"lastActionBy"`
	RejectedBy          *PartyRole       `json:"rejectedBy,omitempty"`
	ActionNotes         string           `json:"actionNotes,omitempty"`
	Version             int              `json:"version"`
	CreatedAt           string           `json:"createdAt"`
	UpdatedAt           string           `json:"updatedAt"`
}

type BidEventDTO struct {
	ID           uuid.UUID       `json:"id"`
	BidID        uuid.UUID       `json:"bidId"`
	Action       BidAction       `json:"action"`
	ActorRole    PartyRole       `json:"actorRole"`
	ActorID      string          `json:"actorId"`
	FromStatus   *BidStatus      `json:"fromStatus,omitempty"`
	ToStatus     BidStatus       `json:"toStatus"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes,omitempty"`
	BidVersion   int             `json:"bidVersion"`
	CreatedAt    string          `json:"createdAt"`
}

type ContractDTO struct {
	ID                 uuid.UUID       `json:"id"`
	CampaignID         uuid.UUID       `json:"campaignId"`
	SourceBidID        uuid.UUID       `json:"sourceBidId"`
	Title              string          `json:"title"`
	Crop               string          `json:"crop"`
	Variety            string          `json:"variety,omitempty"`
	Location           string          `json:"location,omitempty"`
	FarmerID           string          `json:"farmerId"`
	FarmerName         string          `json:"farmerName,omitempty"`
	BuyerID            string          `json:"buyerId"`
	BuyerName          string          `json:"buyerName,omitempty"`
	AgreedPricePerUnit decimal.Decimal `json:"agreedPricePerUnit"`
	AgreedPrice        decimal.Decimal `json:"agreedPrice"`
	Quantity           decimal.Decimal `json:"quantity"`
	Unit               QuantityUnit    `json:"unit"`
	DeliveryTerms      string          `json:"deliveryTerms,omitempty"`
	QualityGrade       string          `json:"qualityGrade,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	CurrentStage       Stage           `json:"currentStage"`
	StageIndex         int             `json:"stageIndex"`
	NextStage          *Stage          `json:"nextStage,omitempty"`
	ContractStatus     ContractStatus  `json:"contractStatus"`
	CompletedAt        *string         `json:"completedAt,omitempty"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

type ContractStageEventDTO struct {
	ID            uuid.UUID       `json:"id"`
	Kind          StageChangeKind `json:"kind"`
	FromStage     *Stage          `json:"fromStage,omitempty"`
	ToStage       Stage           `json:"toStage"`
	ChangedByID   string          `json:"changedById"`
	ChangedByRole PartyRole       `json:"changedByRole,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	ChangedAt     string          `json:"changedAt"`
}

// OfferDTO is the standing offer of a single bid
type OfferDTO struct {
	CampaignID   uuid.UUID       `json:"campaignId"`
	BidID        uuid.UUID       `json:"bidId"`
	BidderID     string          `json:"bidderId"`
	BidderRole   PartyRole       `json:"bidderRole"`
	IssuedBy     PartyRole       `json:"issuedBy"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         QuantityUnit    `json:"unit"`
	Amount       decimal.Decimal `json:"amount"`
	Status       BidStatus       `json:"status"`
	UpdatedAt    string          `json:"updatedAt"`
}

// CampaignWithBidsDTO is a campaign together with its bid summary
type CampaignWithBidsDTO struct {
	Campaign          CampaignDTO      `json:"campaign"`
	Bids              []BidDTO         `json:"bids"`
	ActiveBids        int              `json:"activeBids"`
	LowestStanding    *decimal.Decimal `json:"lowestStandingPricePerUnit,omitempty"`
	HighestStanding   *decimal.Decimal `json:"highestStandingPricePerUnit,omitempty"`
	BestStandingOffer *OfferDTO        `json:"bestStandingOffer,omitempty"`
}

// StatsDTO summarises marketplace activity
type StatsDTO struct {
	TotalCampaigns     int64           `json:"totalCampaigns"`
	ActiveCampaigns    int64           `json:"activeCampaigns"`
	CompletedCampaigns int64           `json:"completedCampaigns"`
	ActiveBids         int64           `json:"activeBids"`
	TotalContracts     int64           `json:"totalContracts"`
	CompletedContracts int64           `json:"completedContracts"`
	AverageBidPerUnit  decimal.Decimal `json:"averageBidPricePerUnit"`
}

// ActOnBidResult carries the updated bid and the contract created on accept
type ActOnBidResult struct {
	Bid      BidDTO       `json:"bid"`
	Contract *ContractDTO `json:"contract,omitempty"`
}

type NotificationDTO struct {
	ID         uuid.UUID        `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	EntityType string           `json:"entityType,omitempty"`
	EntityID   *uuid.UUID       `json:"entityId,omitempty"`
	Read       bool             `json:"read"`
	ReadAt     *string          `json:"readAt,omitempty"`
	CreatedAt  string           `json:"createdAt"`
}

// UnreadCountDTO represents the count of unread notifications
type UnreadCountDTO struct {
	Count int64 `json:"count"`
}

// Pagination response wrapper
type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}

// Request DTOs

type CreateCampaignRequest struct {
	Title           string           `json:"title" validate:"required,max=200"`
	Crop            string           `json:"crop" validate:"required,max=100"`
	Variety         string           `json:"variety,omitempty" validate:"max=100"`
	Location        string           `json:"location" validate:"required,max=200"`
	StartDate       time.Time        `json:"startDate" validate:"required"`
	EndDate         time.Time        `json:"endDate" validate:"required"`
	Quantity        *decimal.Decimal `json:"quantity" validate:"required"`
	Unit            QuantityUnit     `json:"unit" validate:"required,oneof=kg quintal ton"`
	QuantityFixed   *bool            `json:"quantityFixed,omitempty"`
	MinPricePerUnit *decimal.Decimal `json:"minPricePerUnit,omitempty"`
	MaxPricePerUnit *decimal.Decimal `json:"maxPricePerUnit,omitempty"`
	QualityGrade    string           `json:"qualityGrade,omitempty" validate:"max=50"`
	Description     string           `json:"description,omitempty" validate:"max=2000"`
}

// UpdateCampaignRequest changes descriptive fields; quantity and unit only
// while the campaign has no bids
type UpdateCampaignRequest struct {
	Title           string           `json:"title" validate:"required,max=200"`
	Variety         string           `json:"variety,omitempty" validate:"max=100"`
	Location        string           `json:"location" validate:"required,max=200"`
	StartDate       time.Time        `json:"startDate" validate:"required"`
	EndDate         time.Time        `json:"endDate" validate:"required"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	Unit            QuantityUnit     `json:"unit,omitempty" validate:"omitempty,oneof=kg quintal ton"`
	MinPricePerUnit *decimal.Decimal `json:"minPricePerUnit,omitempty"`
	MaxPricePerUnit *decimal.Decimal `json:"maxPricePerUnit,omitempty"`
	QualityGrade    string           `json:"qualityGrade,omitempty" validate:"max=50"`
	Description     string           `json:"description,omitempty" validate:"max=2000"`
}

type SubmitBidRequest struct {
	PricePerUnit  *decimal.Decimal `json:"pricePerUnit" validate:"required"`
	Quantity      *decimal.Decimal `json:"quantity" validate:"required"`
	DeliveryTerms string           `json:"deliveryTerms,omitempty" validate:"max=1000"`
	QualityGrade  string           `json:"qualityGrade,omitempty" validate:"max=50"`
	Notes         string           `json:"notes,omitempty" validate:"max=2000"`
}

type ActOnBidRequest struct {
	Action              BidAction        `json:"action" validate:"required,oneof=counter accept reject"`
	CounterPricePerUnit *decimal.Decimal `json:"counterPricePerUnit,omitempty"`
	CounterTerms        string           `json:"counterTerms,omitempty" validate:"max=1000"`
	Notes               string           `json:"notes,omitempty" validate:"max=2000"`
	// ExpectedVersion makes the action fail with a conflict if the bid changed since it was read
	ExpectedVersion *int `json:"expectedVersion,omitempty" validate:"omitempty,min=1"`
}

type AdvanceContractRequest struct {
	TargetStage Stage  `json:"targetStage" validate:"required"`
	Notes       string `json:"notes,omitempty" validate:"max=1000"`
}

type CorrectContractStageRequest struct {
	TargetStage Stage  `json:"targetStage" validate:"required"`
	Reason      string `json:"reason" validate:"required,max=1000"`
}
