package discord

import (
	"fmt"

	"github.com/Glanita/traducteur"
	"github.com/bwmarrin/discordgo"
)

const embedColor = 0x3498DB

// replyEmbed renders a multi-language reply as one embed with a field per
// target language, labelled with the flag/name pair.
func replyEmbed(reply *traducteur.Reply) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(reply.Entries))
	for _, entry := range reply.Entries {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", entry.Flag, entry.Name),
			Value:  entry.Text,
			Inline: false,
		})
	}
	return &discordgo.MessageEmbed{
		Color:  embedColor,
		Fields: fields,
	}
}

// statsEmbed renders a counters snapshot for the /stats command.
func statsEmbed(snap traducteur.Snapshot) *discordgo.MessageEmbed {
	hours := int(snap.Uptime.Hours())
	minutes := int(snap.Uptime.Minutes()) % 60

	return &discordgo.MessageEmbed{
		Title: "📊 Stats",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📨 Translations", Value: fmt.Sprintf("`%d`", snap.Translations), Inline: true},
			{Name: "💾 Cache hits", Value: fmt.Sprintf("`%d`", snap.CacheHits), Inline: true},
			{Name: "🌐 API calls", Value: fmt.Sprintf("`%d`", snap.APICalls), Inline: true},
			{Name: "📈 Cache rate", Value: fmt.Sprintf("`%.1f%%`", snap.CacheHitRate()), Inline: true},
			{Name: "⛔ Blocked", Value: fmt.Sprintf("`%d`", snap.RateLimitBlocks), Inline: true},
			{Name: "❌ Errors", Value: fmt.Sprintf("`%d`", snap.Errors), Inline: true},
			{Name: "⏱ Uptime", Value: fmt.Sprintf("`%dh %dm`", hours, minutes), Inline: true},
		},
	}
}

// helpEmbed renders the static /help text for the configured targets.
func helpEmbed(targets []string) *discordgo.MessageEmbed {
	languages := ""
	for i, lang := range targets {
		if i > 0 {
			languages += ", "
		}
		languages += fmt.Sprintf("%s %s", traducteur.LanguageFlag(lang), traducteur.LanguageName(lang))
	}

	return &discordgo.MessageEmbed{
		Title: "📖 " + traducteur.Name,
		Color: embedColor,
		Description: fmt.Sprintf(
			"I automatically translate messages between %s.\n\n"+
				"Write a message of at least 15 characters in any language and I reply "+
				"with translations into the other configured languages. Commands, links "+
				"and code blocks are left alone.\n\n"+
				"`/stats` shows what I have been up to.",
			languages),
	}
}
