package auth

import (
	"context"
	"sync"

	"github.com/agrimarket/negotiation-api/internal/domain"
)

// Method records how a party was identified
type Method string

const (
	MethodJWT    Method = "jwt"
	MethodAPIKey Method = "api_key"
)

// PartyContext is the resolved marketplace identity of the caller
type PartyContext struct {
	PartyID     string
	Role        domain.PartyRole
	DisplayName string
	Method      Method
}

type contextKey string

const (
	partyContextKey contextKey = "partyContext"
	partyHolderKey  contextKey = "partyHolder"
)

// WithPartyContext adds the resolved party to the context and reports it to
// the enclosing PartyHolder, if any
func WithPartyContext(ctx context.Context, party *PartyContext) context.Context {
	if holder, ok := ctx.Value(partyHolderKey).(*PartyHolder); ok {
		holder.set(party)
	}
	return context.WithValue(ctx, partyContextKey, party)
}

// PartyHolder lets outer middleware observe the party resolved by inner middleware
type PartyHolder struct {
	mu    sync.Mutex
	party *PartyContext
}

// WithPartyHolder installs holder in the context
func WithPartyHolder(ctx context.Context, holder *PartyHolder) context.Context {
	return context.WithValue(ctx, partyHolderKey, holder)
}

// Party returns the resolved party, or nil if none was resolved
func (h *PartyHolder) Party() *PartyContext {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.party
}

func (h *PartyHolder) set(party *PartyContext) {
	h.mu.Lock()
	h.party = party
	h.mu.Unlock()
}

// FromContext extracts the resolved party from the context
func FromContext(ctx context.Context) (*PartyContext, bool) {
	party, ok := ctx.Value(partyContextKey).(*PartyContext)
	return party, ok && party != nil
}

// IsFarmer reports whether the party acts as a farmer
func (p *PartyContext) IsFarmer() bool {
	return p.Role == domain.PartyRoleFarmer
}

// IsBuyer reports whether the party acts as a buyer
func (p *PartyContext) IsBuyer() bool {
	return p.Role == domain.PartyRoleBuyer
}
