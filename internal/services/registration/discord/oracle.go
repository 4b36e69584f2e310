package discord

import (
	"github.com/bwmarrin/discordgo"
)

// memberSource is the slice of the discordgo session the oracle reads.
type memberSource interface {
	GuildIDs() []string
	Member(guildID string, userID string) (*discordgo.Member, bool)
}

// Oracle answers booster and membership questions by walking the tracked
// guilds. A flag is true when it is true in any one guild.
type Oracle struct {
	source memberSource
}

// NewOracle constructs a Discord privilege oracle.
func NewOracle(source memberSource) *Oracle {
	return &Oracle{source: source}
}

// Query reports whether userID is currently boosting any tracked guild and
// whether they are a member of at least one.
func (o *Oracle) Query(userID string) (boosting bool, member bool) {
	if o == nil || o.source == nil {
		return false, false
	}
	for _, guildID := range o.source.GuildIDs() {
		record, ok := o.source.Member(guildID, userID)
		if !ok || record == nil {
			continue
		}
		member = true
		if record.PremiumSince != nil {
			boosting = true
			return boosting, member
		}
	}
	return boosting, member
}

// sessionMemberSource reads guild membership from the session state cache,
// falling back to the REST API for members the cache has not seen.
type sessionMemberSource struct {
	session *discordgo.Session
}

func (s sessionMemberSource) GuildIDs() []string {
	if s.session == nil || s.session.State == nil {
		return nil
	}
	s.session.State.RLock()
	defer s.session.State.RUnlock()
	ids := make([]string, 0, len(s.session.State.Guilds))
	for _, guild := range s.session.State.Guilds {
		ids = append(ids, guild.ID)
	}
	return ids
}

func (s sessionMemberSource) Member(guildID string, userID string) (*discordgo.Member, bool) {
	if s.session == nil {
		return nil, false
	}
	if record, err := s.session.State.Member(guildID, userID); err == nil && record != nil {
		return record, true
	}
	record, err := s.session.GuildMember(guildID, userID)
	if err != nil || record == nil {
		return nil, false
	}
	return record, true
}
