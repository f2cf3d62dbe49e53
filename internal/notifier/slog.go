package notifier

import (
	"log/slog"
)

type SLogNotifier struct {
	Logger *slog.Logger
}

var _ Notifier = SLogNotifier{}

func (s SLogNotifier) Notify(transition Transition) {
	s.Logger.Info(transition.message(), "reason", transition.Reason)
}
