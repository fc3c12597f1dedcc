package service

import (
	"fmt"

	"github.com/agrimarket/negotiation-api/internal/domain"
	"github.com/shopspring/decimal"
)

// bidTransitions lists the status each action leads to from a non-terminal status
var bidTransitions = map[domain.BidStatus]map[domain.BidAction]domain.BidStatus{
	domain.BidStatusPending: {
		domain.BidActionCounter: domain.BidStatusCounterOffered,
		domain.BidActionAccept:  domain.BidStatusAccepted,
		domain.BidActionReject:  domain.BidStatusRejected,
	},
	domain.BidStatusCounterOffered: {
		domain.BidActionCounter: domain.BidStatusCounterOffered,
		domain.BidActionAccept:  domain.BidStatusAccepted,
		domain.BidActionReject:  domain.BidStatusRejected,
	},
}

// nextBidStatus returns the status reached by applying action to from
func nextBidStatus(from domain.BidStatus, action domain.BidAction) (domain.BidStatus, error) {
	if from.IsTerminal() {
		return "", ErrBidTerminal
	}
	next, ok := bidTransitions[from][action]
	if !ok {
		return "", fmt.Errorf("%w: %s on %s bid", ErrInvalidTransition, action, from)
	}
	return next, nil
}

// checkConvergence enforces that a counter moves toward agreement: a buyer may
// only go below the farmer's standing ask and a farmer only above the buyer's
// standing offer.
func checkConvergence(actor domain.PartyRole, standing, counter decimal.Decimal) error {
	switch actor {
	case domain.PartyRoleBuyer:
		if !counter.LessThan(standing) {
			return fmt.Errorf("%w: buyer counter %s must be below the standing ask %s",
				ErrNonConvergentCounter, counter.StringFixed(2), standing.StringFixed(2))
		}
	case domain.PartyRoleFarmer:
		if !counter.GreaterThan(standing) {
			return fmt.Errorf("%w: farmer counter %s must be above the standing offer %s",
				ErrNonConvergentCounter, counter.StringFixed(2), standing.StringFixed(2))
		}
	default:
		return ErrInvalidRole
	}
	return nil
}

// partyFor returns the party id that holds role on a bid
func partyFor(role domain.PartyRole, bid *domain.Bid, campaign *domain.Campaign) string {
	if role == bid.BidderRole {
		return bid.BidderID
	}
	return campaign.CreatorID
}
