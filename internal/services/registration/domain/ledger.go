package domain

import "sync"

// DefaultCapacity is the maximum number of standard registrations accepted.
const DefaultCapacity = 99

// Status classifies the result of one submission.
type Status string

const (
	// StatusAccepted means a fresh address was registered.
	StatusAccepted Status = "accepted"
	// StatusBoosterAccepted means an already-claimed address was registered
	// through the booster override.
	StatusBoosterAccepted Status = "booster_accepted"
	// StatusAlreadySubmitted means the user registered an address before.
	StatusAlreadySubmitted Status = "already_submitted"
	// StatusInvalidFormat means the text is not a valid address.
	StatusInvalidFormat Status = "invalid_format"
	// StatusDuplicate means the address belongs to another registration.
	StatusDuplicate Status = "duplicate"
	// StatusCapacityReached means the standard registration cap is full.
	StatusCapacityReached Status = "capacity_reached"
)

// Accepting reports whether the status registered an address.
func (s Status) Accepting() bool {
	return s == StatusAccepted || s == StatusBoosterAccepted
}

// SubmitInput carries one direct-message submission into the ledger.
type SubmitInput struct {
	UserID string
	// Address is the message text with surrounding whitespace already removed.
	Address string
	// Boosting and Member report the submitter's standing at submission time;
	// they only matter when Address collides with an existing registration.
	Boosting bool
	Member   bool
}

// Outcome is the ledger's decision for one submission. Sequence is set only
// for accepting statuses, ExistingAddress only for StatusAlreadySubmitted,
// and Capacity only for StatusCapacityReached.
type Outcome struct {
	Status          Status
	Sequence        int
	ExistingAddress string
	Capacity        int
}

// Ledger is the single authority over registrations. All checks and
// mutations of one Submit call happen under one lock, so concurrent
// submissions can never double-claim an address or reuse a sequence number.
type Ledger struct {
	mu            sync.Mutex
	capacity      int
	nextSequence  int
	standardCount int
	usedAddresses map[string]struct{}
	userAddresses map[string]string
}

// LedgerOption adjusts ledger construction.
type LedgerOption func(*Ledger)

// WithCapacity overrides the standard registration cap.
func WithCapacity(capacity int) LedgerOption {
	return func(l *Ledger) {
		if capacity > 0 {
			l.capacity = capacity
		}
	}
}

// NewLedger constructs an empty registration ledger.
func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{
		capacity:      DefaultCapacity,
		usedAddresses: make(map[string]struct{}),
		userAddresses: make(map[string]string),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit decides one submission. It never fails: every input maps to an
// Outcome. The decision order is fixed: prior submission, address format,
// then the duplicate branch (booster override vs rejection) or the fresh
// branch (capacity vs acceptance). The prior-submission check runs before
// validation, so a repeat submitter is told about their recorded address no
// matter what they send.
func (l *Ledger) Submit(input SubmitInput) Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.userAddresses[input.UserID]; ok {
		return Outcome{Status: StatusAlreadySubmitted, ExistingAddress: existing}
	}
	if !IsValidAddress(input.Address) {
		return Outcome{Status: StatusInvalidFormat}
	}

	if _, used := l.usedAddresses[input.Address]; used {
		if input.Boosting && input.Member {
			// Booster override: the address stays claimed by its first
			// registrant and the capacity cap does not apply.
			l.nextSequence++
			l.userAddresses[input.UserID] = input.Address
			return Outcome{Status: StatusBoosterAccepted, Sequence: l.nextSequence}
		}
		return Outcome{Status: StatusDuplicate}
	}

	if l.standardCount >= l.capacity {
		return Outcome{Status: StatusCapacityReached, Capacity: l.capacity}
	}
	l.nextSequence++
	l.standardCount++
	l.usedAddresses[input.Address] = struct{}{}
	l.userAddresses[input.UserID] = input.Address
	return Outcome{Status: StatusAccepted, Sequence: l.nextSequence}
}

// Registered returns the address recorded for userID, if any.
func (l *Ledger) Registered(userID string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	address, ok := l.userAddresses[userID]
	return address, ok
}

// StandardCount returns how many standard registrations have been accepted.
func (l *Ledger) StandardCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.standardCount
}

// Capacity returns the standard registration cap.
func (l *Ledger) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capacity
}
