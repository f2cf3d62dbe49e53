package notifier

import (
	"log/slog"

	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	Logger *slog.Logger
	Slack  SlackSender
	// Channel limits notifications to one channel id. Empty sends to every channel the
	// bot has joined.
	Channel string
}

type SlackSender interface {
	Send(channel string, attachments []slack.Attachment) error
}

var _ Notifier = &SlackNotifier{}

func (s *SlackNotifier) Notify(transition Transition) {
	color := "warning"
	if transition.To.Armed() {
		color = "good"
	}
	err := s.Slack.Send(s.Channel, []slack.Attachment{{
		Color: color,
		Title: transition.message(),
		Text:  transition.Reason,
	}})
	if err != nil {
		s.Logger.Error("notifier failed to post message", "err", err)
	}
}
