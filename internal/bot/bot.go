// Package bot answers Slack queries about the camera fleet.
package bot

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/clambin/go-common/slackbot"
	"github.com/slack-go/slack"
	"github.com/vigilocam/detection-scheduler/internal/poller"
)

// SlackBot is the part of slackbot.SlackBot the bot needs.
type SlackBot interface {
	Register(name string, command slackbot.CommandFunc)
	Run(ctx context.Context) error
	Send(channel string, attachments []slack.Attachment) error
}

// Bot serves the "cameras" and "refresh" commands from the latest poller
// update.
type Bot struct {
	slack   SlackBot
	poller  poller.Poller
	logger  *slog.Logger
	lock    sync.RWMutex
	update  poller.Update
	updated bool
}

func New(slackBot SlackBot, p poller.Poller, logger *slog.Logger) *Bot {
	b := Bot{
		slack:  slackBot,
		poller: p,
		logger: logger,
	}
	slackBot.Register("cameras", b.ReportCameras)
	slackBot.Register("refresh", b.DoRefresh)

	return &b
}

// Run caches poller updates until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Debug("bot started")
	defer b.logger.Debug("bot stopped")

	ch := b.poller.Subscribe()
	defer b.poller.Unsubscribe(ch)
	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			b.lock.Lock()
			b.update = update
			b.updated = true
			b.lock.Unlock()
		}
	}
}

func (b *Bot) ReportCameras(_ context.Context, _ ...string) []slack.Attachment {
	b.lock.RLock()
	defer b.lock.RUnlock()

	if !b.updated {
		return []slack.Attachment{{
			Color: "bad",
			Text:  "no updates yet. please check back later",
		}}
	}

	text := make([]string, 0, len(b.update.Cameras))
	for _, id := range b.update.CameraIDs() {
		status := b.update.Cameras[id]
		text = append(text, status.Name+": "+status.Status.String()+" ("+status.Reason+")")
	}

	slackColor := "bad"
	slackTitle := ""
	slackText := "no cameras found"
	if len(text) > 0 {
		slackColor = "good"
		slackTitle = "cameras:"
		slackText = strings.Join(text, "\n")
	}

	return []slack.Attachment{{
		Color: slackColor,
		Title: slackTitle,
		Text:  slackText,
	}}
}

func (b *Bot) DoRefresh(_ context.Context, _ ...string) []slack.Attachment {
	b.poller.Refresh()
	return []slack.Attachment{{
		Text: "refreshing camera data",
	}}
}
