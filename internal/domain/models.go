package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BaseModel carries the identity and timestamps shared by all aggregates.
// IDs are generated in Go so the same schema works on PostgreSQL and SQLite.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// BeforeCreate assigns a new UUID when none is set
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// PartyRole identifies which side of the marketplace a party acts for
type PartyRole string

const (
	PartyRoleFarmer PartyRole = "farmer"
	PartyRoleBuyer  PartyRole = "buyer"
)

// IsValid checks if the role is a known marketplace role
func (r PartyRole) IsValid() bool {
	return r == PartyRoleFarmer || r == PartyRoleBuyer
}

// Counterpart returns the opposite role
func (r PartyRole) Counterpart() PartyRole {
	if r == PartyRoleFarmer {
		return PartyRoleBuyer
	}
	return PartyRoleFarmer
}

// CampaignStatus represents the status of a campaign
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusUpcoming  CampaignStatus = "upcoming"
)

// IsValid checks if the campaign status is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusCompleted, CampaignStatusUpcoming:
		return true
	}
	return false
}

// QuantityUnit is the unit a campaign quantity is expressed in
type QuantityUnit string

const (
	UnitKilogram QuantityUnit = "kg"
	UnitQuintal  QuantityUnit = "quintal"
	UnitTon      QuantityUnit = "ton"
)

// IsValid checks if the unit is supported
func (u QuantityUnit) IsValid() bool {
	switch u {
	case UnitKilogram, UnitQuintal, UnitTon:
		return true
	}
	return false
}

// Campaign is a posted demand (buyer) or supply (farmer) listing
type Campaign struct {
	BaseModel
	Title           string              `gorm:"type:varchar(200);not null"`
	Crop            string              `gorm:"type:varchar(100);not null;index"`
	Variety         string              `gorm:"type:varchar(100)"`
	Location        string              `gorm:"type:varchar(200);not null;index"`
	StartDate       time.Time           `gorm:"not null"`
	EndDate         time.Time           `gorm:"not null"`
	Quantity        decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Unit            QuantityUnit        `gorm:"type:varchar(20);not null"`
	QuantityFixed   bool                `gorm:"not null"`
	MinPricePerUnit decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	MaxPricePerUnit decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	QualityGrade    string              `gorm:"type:varchar(50)"`
	Description     string              `gorm:"type:text"`
	CreatorRole     PartyRole           `gorm:"type:varchar(20);not null"`
	CreatorID       string              `gorm:"type:varchar(100);not null;index"`
	CreatorName     string              `gorm:"type:varchar(200)"`
	Status          CampaignStatus      `gorm:"type:varchar(20);not null;default:'active';index"`
	Version         int                 `gorm:"not null;default:1"`
}

// IsOpen reports whether the campaign accepts bids and bid actions
func (c *Campaign) IsOpen() bool {
	return c.Status == CampaignStatusActive
}

// BidStatus represents the negotiation status of a bid
type BidStatus string

const (
	BidStatusPending        BidStatus = "pending"
	BidStatusCounterOffered BidStatus = "counter_offered"
	BidStatusAccepted       BidStatus = "accepted"
	BidStatusRejected       BidStatus = "rejected"
)

// IsValid checks if the bid status is valid
func (s BidStatus) IsValid() bool {
	switch s {
	case BidStatusPending, BidStatusCounterOffered, BidStatusAccepted, BidStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further action is possible
func (s BidStatus) IsTerminal() bool {
	return s == BidStatusAccepted || s == BidStatusRejected
}

// NonTerminalBidStatuses lists the statuses still open for negotiation
var NonTerminalBidStatuses = []BidStatus{BidStatusPending, BidStatusCounterOffered}

// BidAction is a negotiation action applied to a bid
type BidAction string

const (
	BidActionSubmit  BidAction = "submit"
	BidActionCounter BidAction = "counter"
	BidActionAccept  BidAction = "accept"
	BidActionReject  BidAction = "reject"
)

// Bid is an offer and its negotiation state against a campaign
type Bid struct {
	BaseModel
	CampaignID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	Campaign            *Campaign           `gorm:"foreignKey:CampaignID"`
	BidderID            string              `gorm:"type:varchar(100);not null;index"`
	BidderRole          PartyRole           `gorm:"type:varchar(20);not null"`
	BidderName          string              `gorm:"type:varchar(200)"`
	PricePerUnit        decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Quantity            decimal.Decimal     `gorm:"type:numeric(14,2);not null"`
	Unit                QuantityUnit        `gorm:"type:varchar(20);not null"`
	TotalAmount         decimal.Decimal     `gorm:"type:numeric(16,2);not null"`
	DeliveryTerms       string              `gorm:"type:text"`
	QualityGrade        string              `gorm:"type:varchar(50)"`
	Notes               string              `gorm:"type:text"`
	Status              BidStatus           `gorm:"type:varchar(20);not null;default:'pending';index"`
	CounterPricePerUnit decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	CounterAmount       decimal.NullDecimal `gorm:"type:numeric(16,2)"`
	CounterTerms        string              `gorm:"type:text"`
	LastActionRole      PartyRole           `gorm:"type:varchar(20);not null"`
	LastActionBy        string              `gorm:"type:varchar(100);not null"`
	RejectedBy          *PartyRole          `gorm:"type:varchar(20)"`
	ActionNotes         string              `gorm:"type:text"`
	Version             int                 `gorm:"not null;default:1"`
}

// Recalculate derives the total and counter amounts from per-unit prices
func (b *Bid) Recalculate() {
	b.TotalAmount = b.PricePerUnit.Mul(b.Quantity).Round(2)
	if b.CounterPricePerUnit.Valid {
		b.CounterAmount = decimal.NewNullDecimal(b.CounterPricePerUnit.Decimal.Mul(b.Quantity).Round(2))
	} else {
		b.CounterAmount = decimal.NullDecimal{}
	}
}

// StandingPricePerUnit is the latest counter price, or the original price if never countered
func (b *Bid) StandingPricePerUnit() decimal.Decimal {
	if b.CounterPricePerUnit.Valid {
		return b.CounterPricePerUnit.Decimal
	}
	return b.PricePerUnit
}

// StandingAmount is the total of the standing offer
func (b *Bid) StandingAmount() decimal.Decimal {
	return b.StandingPricePerUnit().Mul(b.Quantity).Round(2)
}

// BidEvent is one append-only entry in the bid ledger
type BidEvent struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BidID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CampaignID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Action       BidAction       `gorm:"type:varchar(20);not null"`
	ActorRole    PartyRole       `gorm:"type:varchar(20);not null"`
	ActorID      string          `gorm:"type:varchar(100);not null"`
	FromStatus   *BidStatus      `gorm:"type:varchar(20)"`
	ToStatus     BidStatus       `gorm:"type:varchar(20);not null"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Notes        string          `gorm:"type:text"`
	BidVersion   int             `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for BidEvent
func (BidEvent) TableName() string {
	return "bid_events"
}

// BeforeCreate assigns a new UUID when none is set
func (e *BidEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// ContractStatus represents the fulfilment status of a contract
type ContractStatus string

const (
	ContractStatusActive    ContractStatus = "active"
	ContractStatusCompleted ContractStatus = "completed"
)

// IsValid checks if the contract status is valid
func (s ContractStatus) IsValid() bool {
	return s == ContractStatusActive || s == ContractStatusCompleted
}

// Contract is the binding agreement created when a bid is accepted
type Contract struct {
	BaseModel
	CampaignID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	SourceBidID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Title              string          `gorm:"type:varchar(250);not null"`
	Crop               string          `gorm:"type:varchar(100);not null"`
	Variety            string          `gorm:"type:varchar(100)"`
	Location           string          `gorm:"type:varchar(200)"`
	FarmerID           string          `gorm:"type:varchar(100);not null;index"`
	FarmerName         string          `gorm:"type:varchar(200)"`
	BuyerID            string          `gorm:"type:varchar(100);not null;index"`
	BuyerName          string          `gorm:"type:varchar(200)"`
	AgreedPricePerUnit decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AgreedPrice        decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Quantity           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Unit               QuantityUnit    `gorm:"type:varchar(20);not null"`
	DeliveryTerms      string          `gorm:"type:text"`
	QualityGrade       string          `gorm:"type:varchar(50)"`
	Notes              string          `gorm:"type:text"`
	CurrentStage       Stage           `gorm:"type:varchar(30);not null"`
	ContractStatus     ContractStatus  `gorm:"type:varchar(20);not null;default:'active';index"`
	CompletedAt        *time.Time
}

// PartyRoleOf returns the role a party plays in this contract, if any
func (c *Contract) PartyRoleOf(partyID string) (PartyRole, bool) {
	switch partyID {
	case c.FarmerID:
		return PartyRoleFarmer, true
	case c.BuyerID:
		return PartyRoleBuyer, true
	}
	return "", false
}

// StageChangeKind distinguishes normal advancement from corrections
type StageChangeKind string

const (
	StageChangeAdvance    StageChangeKind = "advance"
	StageChangeCorrection StageChangeKind = "correction"
)

// ContractStageEvent records a change of a contract's current stage
type ContractStageEvent struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ContractID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind          StageChangeKind `gorm:"type:varchar(20);not null"`
	FromStage     *Stage          `gorm:"type:varchar(30)"`
	ToStage       Stage           `gorm:"type:varchar(30);not null"`
	ChangedByID   string          `gorm:"type:varchar(100);not null"`
	ChangedByRole PartyRole       `gorm:"type:varchar(20)"`
	Reason        string          `gorm:"type:text"`
	ChangedAt     time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for ContractStageEvent
func (ContractStageEvent) TableName() string {
	return "contract_stage_events"
}

// BeforeCreate assigns a new UUID when none is set
func (e *ContractStageEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NotificationType represents the kind of party notification
type NotificationType string

const (
	NotificationTypeBidReceived          NotificationType = "bid_received"
	NotificationTypeBidCountered         NotificationType = "bid_countered"
	NotificationTypeBidAccepted          NotificationType = "bid_accepted"
	NotificationTypeBidRejected          NotificationType = "bid_rejected"
	NotificationTypeContractCreated      NotificationType = "contract_created"
	NotificationTypeContractStageChanged NotificationType = "contract_stage_changed"
)

// Notification is an inbox entry for a marketplace party
type Notification struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	PartyID    string           `gorm:"type:varchar(100);not null;index"`
	Type       NotificationType `gorm:"type:varchar(50);not null"`
	Title      string           `gorm:"type:varchar(200);not null"`
	Message    string           `gorm:"type:text"`
	EntityType string           `gorm:"type:varchar(50)"`
	EntityID   *uuid.UUID       `gorm:"type:uuid"`
	Read       bool             `gorm:"not null;default:false;index"`
	ReadAt     *time.Time
	CreatedAt  time.Time `gorm:"not null"`
}

// BeforeCreate assigns a new UUID when none is set
func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
