// Package render produces user-facing copy for registration outcomes.
package render

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/solboost/boostgate/internal/services/registration/domain"
)

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// Reply renders the direct reply for one submission outcome.
func Reply(loc Localizer, outcome domain.Outcome) string {
	switch outcome.Status {
	case domain.StatusAccepted:
		return loc.Sprintf("registration.reply.accepted", Sequence(outcome.Sequence))
	case domain.StatusBoosterAccepted:
		return loc.Sprintf("registration.reply.booster_accepted", Sequence(outcome.Sequence))
	case domain.StatusAlreadySubmitted:
		return loc.Sprintf("registration.reply.already_submitted", outcome.ExistingAddress)
	case domain.StatusDuplicate:
		return loc.Sprintf("registration.reply.duplicate")
	case domain.StatusCapacityReached:
		return loc.Sprintf("registration.reply.capacity_reached", outcome.Capacity)
	default:
		return loc.Sprintf("registration.reply.invalid_format")
	}
}

// Announcement renders the public one-line announcement for an accepting
// outcome. It returns "" for non-accepting outcomes, which have no public
// surface.
func Announcement(loc Localizer, userID string, address string, outcome domain.Outcome) string {
	switch outcome.Status {
	case domain.StatusAccepted:
		return loc.Sprintf("registration.announce.accepted", Sequence(outcome.Sequence), Mention(userID), address)
	case domain.StatusBoosterAccepted:
		return loc.Sprintf("registration.announce.booster_accepted", Sequence(outcome.Sequence), Mention(userID), address)
	default:
		return ""
	}
}

// BoostThanks renders the announcement prompting a new booster to DM their
// address.
func BoostThanks(loc Localizer, userID string) string {
	return loc.Sprintf("registration.announce.boost_thanks", Mention(userID))
}

// Welcome renders the announcement greeting a new member.
func Welcome(loc Localizer, userID string) string {
	return loc.Sprintf("registration.announce.welcome", Mention(userID))
}

// Sequence formats a slot number zero-padded to two digits, the display
// convention for the 99-slot roster.
func Sequence(sequence int) string {
	return fmt.Sprintf("%02d", sequence)
}

// Mention formats a platform user mention.
func Mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// NewEnglishPrinter returns the default English localizer.
func NewEnglishPrinter() *message.Printer {
	return message.NewPrinter(catalogLanguage)
}
