package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"eventsite/internal/domain/entities"
)

const (
	colorPublished   = 0x57F287
	colorUnpublished = 0xED4245
)

// BuildNotificationEmbed builds the channel message announcing that an event
// was published or unpublished. title and linkLabel are already translated;
// baseURL makes the event link absolute.
func BuildNotificationEmbed(title, linkLabel, baseURL string, n entities.Notification) *discordgo.MessageEmbed {
	color := colorUnpublished
	if n.Published {
		color = colorPublished
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**%s**", n.EventName))
	if when := FormatEventDateTime(n.DateBegin, n.DateTZ); when != "" {
		b.WriteString(fmt.Sprintf("\n📅 %s", when))
	}
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: b.String(),
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: n.Subtype},
	}
	if n.Published && n.EventURL != "" && n.EventURL != "#" {
		link := strings.TrimRight(baseURL, "/") + n.EventURL
		embed.URL = link
		embed.Fields = []*discordgo.MessageEmbedField{{Name: linkLabel, Value: link}}
	}
	return embed
}
