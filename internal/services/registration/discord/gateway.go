package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// EventHandler receives the platform events the gatekeeper reacts to. The
// registration router implements it.
type EventHandler interface {
	HandleBoostStarted(ctx context.Context, userID string)
	HandleMemberJoined(ctx context.Context, userID string)
	HandleDirectMessage(ctx context.Context, userID string, content string, authorIsBot bool)
}

// Gateway owns the Discord session and forwards gateway events to the
// handler. Events arrive on discordgo's goroutines; serialization of shared
// state is the handler's concern.
type Gateway struct {
	session *discordgo.Session
}

// NewGateway builds a Discord gateway for the bot token.
func NewGateway(token string) (*Gateway, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	session.StateEnabled = true

	return &Gateway{session: session}, nil
}

// Open registers event handlers and connects to the gateway.
func (g *Gateway) Open(ctx context.Context, handler EventHandler) error {
	if handler == nil {
		return fmt.Errorf("event handler is required")
	}
	g.session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		if ready.User != nil {
			log.Printf("gateway ready as %s", ready.User.String())
		}
	})
	g.session.AddHandler(memberUpdateHandler(ctx, handler))
	g.session.AddHandler(memberAddHandler(ctx, handler))
	g.session.AddHandler(messageHandler(ctx, handler))

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (g *Gateway) Close() error {
	if g == nil || g.session == nil {
		return nil
	}
	return g.session.Close()
}

// Notifier returns a notifier bound to this session.
func (g *Gateway) Notifier(announceChannelID string) (*Notifier, error) {
	return NewNotifier(g.session, announceChannelID)
}

// Oracle returns a privilege oracle bound to this session.
func (g *Gateway) Oracle() *Oracle {
	return NewOracle(sessionMemberSource{session: g.session})
}

func memberUpdateHandler(ctx context.Context, handler EventHandler) func(*discordgo.Session, *discordgo.GuildMemberUpdate) {
	return func(_ *discordgo.Session, update *discordgo.GuildMemberUpdate) {
		if !boostStarted(update) {
			return
		}
		handler.HandleBoostStarted(ctx, update.User.ID)
	}
}

func memberAddHandler(ctx context.Context, handler EventHandler) func(*discordgo.Session, *discordgo.GuildMemberAdd) {
	return func(_ *discordgo.Session, added *discordgo.GuildMemberAdd) {
		if added == nil || added.Member == nil || added.User == nil {
			return
		}
		handler.HandleMemberJoined(ctx, added.User.ID)
	}
}

func messageHandler(ctx context.Context, handler EventHandler) func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(_ *discordgo.Session, message *discordgo.MessageCreate) {
		if message == nil || message.Message == nil || message.Author == nil {
			return
		}
		// Guild messages carry a guild ID; only DMs reach the handler.
		if message.GuildID != "" {
			return
		}
		handler.HandleDirectMessage(ctx, message.Author.ID, message.Content, message.Author.Bot)
	}
}

// boostStarted reports whether update represents a member starting to boost:
// no premium timestamp before, one after. An uncached prior state is unknown,
// not a start; member updates arrive for nickname and role changes too, and
// firing on those would repeat the announcement for long-time boosters.
func boostStarted(update *discordgo.GuildMemberUpdate) bool {
	if update == nil || update.Member == nil || update.User == nil || update.PremiumSince == nil {
		return false
	}
	return update.BeforeUpdate != nil && update.BeforeUpdate.PremiumSince == nil
}
