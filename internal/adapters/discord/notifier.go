package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
	pkgdiscord "eventsite/pkg/discord"
)

var _ output.Notifier = (*Notifier)(nil)

// messageSender is the part of *discordgo.Session the notifier uses.
type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts publish/unpublish notifications to a Discord channel.
type Notifier struct {
	sender     messageSender
	channelID  string
	baseURL    string
	translator output.T
	log        zerolog.Logger
}

// NewNotifier creates a REST-only Discord session for the bot token.
func NewNotifier(token, channelID, baseURL string, translator output.T, log zerolog.Logger) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return newNotifier(s, channelID, baseURL, translator, log), nil
}

func newNotifier(sender messageSender, channelID, baseURL string, translator output.T, log zerolog.Logger) *Notifier {
	return &Notifier{
		sender:     sender,
		channelID:  channelID,
		baseURL:    baseURL,
		translator: translator,
		log:        log,
	}
}

func (n *Notifier) Notify(ctx context.Context, msg entities.Notification) error {
	titleKey := "notification.unpublished"
	if msg.Published {
		titleKey = "notification.published"
	}
	embed := pkgdiscord.BuildNotificationEmbed(
		n.translator.T(msg.Locale, titleKey, nil),
		n.translator.T(msg.Locale, "notification.open", nil),
		n.baseURL,
		msg,
	)
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send discord notification: %w", err)
	}
	n.log.Debug().Uint("event_id", msg.EventID).Str("channel_id", n.channelID).Msg("📣 Discord notification sent")
	return nil
}
