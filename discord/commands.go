package discord

import (
	"github.com/bwmarrin/discordgo"
)

// commands returns the slash commands the bot registers on startup.
func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "stats",
			Description: "Bot statistics",
		},
		{
			Name:        "help",
			Description: "How the translation bot works",
		},
	}
}

// onInteraction answers the stats and help commands with ephemeral embeds.
func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	var embed *discordgo.MessageEmbed
	switch i.ApplicationCommandData().Name {
	case "stats":
		embed = statsEmbed(b.pipe.Stats().Snapshot())
	case "help":
		embed = helpEmbed(b.pipe.Targets())
	default:
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.log.Warnf("responding to interaction: %v", err)
	}
}
