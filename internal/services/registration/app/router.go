// Package app wires platform events to the registration ledger and runs the
// service process.
package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/solboost/boostgate/internal/services/registration/domain"
	"github.com/solboost/boostgate/internal/services/registration/render"
	"github.com/solboost/boostgate/internal/storage"
	"github.com/solboost/boostgate/internal/telemetry"
)

// Notifier delivers outcome copy. Delivery is fire-and-forget: failures are
// logged and never affect ledger state.
type Notifier interface {
	SendDirect(userID string, text string) error
	Announce(text string) error
}

// PrivilegeOracle reports a user's booster and membership standing across
// the tracked guilds.
type PrivilegeOracle interface {
	Query(userID string) (boosting bool, member bool)
}

// Router adapts inbound platform events into ledger submissions and renders
// the outcomes.
type Router struct {
	ledger   *domain.Ledger
	oracle   PrivilegeOracle
	notifier Notifier
	loc      render.Localizer
	emitter  *telemetry.Emitter
	logf     func(format string, args ...any)
}

// RouterOption adjusts router construction.
type RouterOption func(*Router)

// WithEmitter attaches a telemetry emitter for the submission journal.
func WithEmitter(emitter *telemetry.Emitter) RouterOption {
	return func(r *Router) {
		r.emitter = emitter
	}
}

// WithLogf overrides the router's log destination.
func WithLogf(logf func(format string, args ...any)) RouterOption {
	return func(r *Router) {
		if logf != nil {
			r.logf = logf
		}
	}
}

// NewRouter constructs the event router.
func NewRouter(ledger *domain.Ledger, oracle PrivilegeOracle, notifier Notifier, loc render.Localizer, opts ...RouterOption) (*Router, error) {
	if ledger == nil {
		return nil, fmt.Errorf("ledger is required")
	}
	if oracle == nil {
		return nil, fmt.Errorf("privilege oracle is required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	if loc == nil {
		return nil, fmt.Errorf("localizer is required")
	}
	router := &Router{
		ledger:   ledger,
		oracle:   oracle,
		notifier: notifier,
		loc:      loc,
		logf:     log.Printf,
	}
	for _, opt := range opts {
		opt(router)
	}
	return router, nil
}

// HandleBoostStarted announces the boost and prompts the booster to DM
// their address. The ledger is not consulted.
func (r *Router) HandleBoostStarted(_ context.Context, userID string) {
	if err := r.notifier.Announce(render.BoostThanks(r.loc, userID)); err != nil {
		r.logf("announce boost thanks for %s: %v", userID, err)
	}
}

// HandleMemberJoined announces the new member and explains how to
// participate. The ledger is not consulted.
func (r *Router) HandleMemberJoined(_ context.Context, userID string) {
	if err := r.notifier.Announce(render.Welcome(r.loc, userID)); err != nil {
		r.logf("announce welcome for %s: %v", userID, err)
	}
}

// HandleDirectMessage processes one DM submission: trims the text, captures
// the submitter's standing, runs the ledger decision, replies to the user,
// and announces accepting outcomes. Messages authored by bots are ignored.
func (r *Router) HandleDirectMessage(ctx context.Context, userID string, content string, authorIsBot bool) {
	if authorIsBot {
		return
	}
	address := strings.TrimSpace(content)

	// Standing is captured before the decision so no I/O happens inside the
	// ledger's critical section. The flags only influence the duplicate
	// branch.
	boosting, member := r.oracle.Query(userID)

	outcome := r.ledger.Submit(domain.SubmitInput{
		UserID:   userID,
		Address:  address,
		Boosting: boosting,
		Member:   member,
	})
	r.journal(ctx, userID, outcome)
	r.logf("submission from %s: %s", userID, outcome.Status)

	if err := r.notifier.SendDirect(userID, render.Reply(r.loc, outcome)); err != nil {
		r.logf("reply to %s: %v", userID, err)
	}
	if outcome.Status.Accepting() {
		if err := r.notifier.Announce(render.Announcement(r.loc, userID, address, outcome)); err != nil {
			r.logf("announce registration for %s: %v", userID, err)
		}
	}
}

func (r *Router) journal(ctx context.Context, userID string, outcome domain.Outcome) {
	if r.emitter == nil {
		return
	}
	err := r.emitter.Emit(ctx, storage.SubmissionEvent{
		UserID:   userID,
		Status:   string(outcome.Status),
		Sequence: outcome.Sequence,
	})
	if err != nil {
		r.logf("journal submission for %s: %v", userID, err)
	}
}
