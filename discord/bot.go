// Package discord bridges the translation pipeline to the Discord gateway
// using discordgo. It converts message events into pipeline input, renders
// replies as embeds and registers the stats/help slash commands.
package discord

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Glanita/traducteur"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// messageTimeout bounds one message's whole pipeline run, including every
// backend attempt in the chain.
const messageTimeout = 60 * time.Second

// Bot owns the Discord session and dispatches gateway events into the
// pipeline.
type Bot struct {
	session      *discordgo.Session
	pipe         *traducteur.Pipeline
	log          *logrus.Logger
	syncCommands bool
}

// New creates a bot over an unopened Discord session.
func New(token string, pipe *traducteur.Pipeline, log *logrus.Logger, syncCommands bool) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	b := &Bot{
		session:      session,
		pipe:         pipe,
		log:          log,
		syncCommands: syncCommands,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessage)
	session.AddHandler(b.onInteraction)

	return b, nil
}

// Open connects to the gateway. A bad or rejected token surfaces here and is
// fatal for the process.
func (b *Bot) Open() error {
	return b.session.Open()
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	return b.session.Close()
}

// onReady logs connection details, sets the presence string, runs a pipeline
// self-test and optionally registers the slash commands.
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.WithFields(logrus.Fields{
		"user":    r.User.Username,
		"guilds":  len(r.Guilds),
		"targets": strings.Join(b.pipe.Targets(), ", "),
	}).Info("connected to Discord")

	if err := s.UpdateWatchStatus(0, presenceText(b.pipe.Targets())); err != nil {
		b.log.Warnf("setting presence: %v", err)
	}

	go b.selfTest()

	if b.syncCommands {
		if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", commands()); err != nil {
			b.log.Errorf("registering slash commands: %v", err)
		} else {
			b.log.Infof("registered %d slash commands", len(commands()))
		}
	}
}

// selfTest pushes one synthetic French message through the real pipeline so
// a broken backend chain shows up in the logs at startup, not on the first
// user message.
func (b *Bot) selfTest() {
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	reply := b.pipe.Process(ctx, traducteur.Message{
		AuthorID: "traducteur-selftest",
		Content:  "Bonjour tout le monde, comment allez-vous ?",
	})
	if reply == nil {
		b.log.Error("startup self-test produced no translation; check backend connectivity")
		return
	}
	b.log.WithField("languages", len(reply.Entries)).Info("startup self-test passed")
}

// onMessage hands each inbound message to its own goroutine so slow backend
// I/O never stalls the gateway event loop.
func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}
	go b.handleMessage(s, m)
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), messageTimeout)
	defer cancel()

	reply := b.pipe.Process(ctx, traducteur.Message{
		AuthorID:  m.Author.ID,
		AuthorBot: m.Author.Bot,
		Content:   m.Content,
	})
	if reply == nil {
		return
	}

	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{replyEmbed(reply)},
		Reference: m.Reference(),
		// Suppress the author ping on the reply.
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err != nil {
		if isMissingPermissions(err) {
			b.log.WithField("channel", m.ChannelID).Warn("missing permission to reply")
			return
		}
		b.log.Errorf("sending reply: %v", err)
		b.pipe.Stats().AddError()
		return
	}

	// Rate limit and counters commit only after confirmed delivery.
	b.pipe.Confirm(m.Author.ID, len(reply.Entries))
	b.log.WithFields(logrus.Fields{
		"user":      m.Author.Username,
		"source":    reply.SourceLang,
		"languages": len(reply.Entries),
	}).Info("translated message")
}

// isMissingPermissions reports whether the REST error is a permission
// rejection, which is logged but not counted as a pipeline error.
func isMissingPermissions(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeMissingPermissions
	}
	return false
}

// presenceText derives the watching status from the configured targets,
// e.g. "EN / FR / ES | /help".
func presenceText(targets []string) string {
	upper := make([]string, len(targets))
	for i, lang := range targets {
		upper[i] = strings.ToUpper(lang)
	}
	return strings.Join(upper, " / ") + " | /help"
}
