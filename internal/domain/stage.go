package domain

// Stage is one of the fixed, ordered contract fulfilment milestones
type Stage string

const (
	StageInitialPayment Stage = "initial_payment"
	StageSoilPrep       Stage = "soil_prep"
	StageSowing         Stage = "sowing"
	StageFertilizing    Stage = "fertilizing"
	StageSecondPayment  Stage = "second_payment"
	StageIrrigation     Stage = "irrigation"
	StageHarvesting     Stage = "harvesting"
	StageFinalPayment   Stage = "final_payment"
	StageDelivery       Stage = "delivery"
)

// stageOrder is shared by all contracts
var stageOrder = []Stage{
	StageInitialPayment,
	StageSoilPrep,
	StageSowing,
	StageFertilizing,
	StageSecondPayment,
	StageIrrigation,
	StageHarvesting,
	StageFinalPayment,
	StageDelivery,
}

// Stages returns the milestones in fulfilment order
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// FirstStage is where every new contract starts
func FirstStage() Stage {
	return stageOrder[0]
}

// Index returns the position of the stage in the sequence, or -1 if unknown
func (s Stage) Index() int {
	for i, st := range stageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsValid checks if the stage is a known milestone
func (s Stage) IsValid() bool {
	return s.Index() >= 0
}

// IsTerminal reports whether the stage completes the contract
func (s Stage) IsTerminal() bool {
	return s == stageOrder[len(stageOrder)-1]
}

// Next returns the following milestone; ok is false at the terminal stage
func (s Stage) Next() (Stage, bool) {
	i := s.Index()
	if i < 0 || i == len(stageOrder)-1 {
		return "", false
	}
	return stageOrder[i+1], true
}

// Before reports whether s comes strictly before other
func (s Stage) Before(other Stage) bool {
	return s.Index() < other.Index()
}
