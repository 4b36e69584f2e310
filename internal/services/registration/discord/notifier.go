// Package discord adapts the registration service to the Discord gateway.
package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// messageSender is the slice of the discordgo session the notifier uses.
type messageSender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier delivers outcome messages through Discord. Announce targets the
// fixed announcement channel; SendDirect opens (or reuses) the user's DM
// channel.
type Notifier struct {
	sender            messageSender
	announceChannelID string
}

// NewNotifier constructs a Discord notifier.
func NewNotifier(sender messageSender, announceChannelID string) (*Notifier, error) {
	if sender == nil {
		return nil, fmt.Errorf("message sender is required")
	}
	announceChannelID = strings.TrimSpace(announceChannelID)
	if announceChannelID == "" {
		return nil, fmt.Errorf("announcement channel id is required")
	}
	return &Notifier{sender: sender, announceChannelID: announceChannelID}, nil
}

// SendDirect delivers text to the user's DM channel.
func (n *Notifier) SendDirect(userID string, text string) error {
	channel, err := n.sender.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open dm channel for %s: %w", userID, err)
	}
	if _, err := n.sender.ChannelMessageSend(channel.ID, text); err != nil {
		return fmt.Errorf("send dm to %s: %w", userID, err)
	}
	return nil
}

// Announce posts text to the announcement channel.
func (n *Notifier) Announce(text string) error {
	if _, err := n.sender.ChannelMessageSend(n.announceChannelID, text); err != nil {
		return fmt.Errorf("announce to %s: %w", n.announceChannelID, err)
	}
	return nil
}
