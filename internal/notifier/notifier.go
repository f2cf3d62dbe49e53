// Package notifier reports camera arming transitions.
package notifier

import (
	"log/slog"
	"time"

	"github.com/vigilocam/detection-scheduler/internal/detect"
)

// Transition describes one camera changing detection status.
type Transition struct {
	Camera string
	From   detect.Status
	To     detect.Status
	Reason string
	// Until is the next time the status changes again. Zero if unknown.
	Until time.Time
}

func (t Transition) message() string {
	verb := "detection paused"
	if t.To.Armed() {
		verb = "detection active"
	}
	msg := t.Camera + ": " + verb
	if !t.Until.IsZero() {
		msg += " until " + t.Until.Format("Mon 15:04")
	}
	return msg
}

func (t Transition) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("camera", t.Camera),
		slog.String("from", t.From.String()),
		slog.String("to", t.To.String()),
		slog.String("reason", t.Reason),
	)
}

type Notifier interface {
	Notify(Transition)
}

type Notifiers []Notifier

func (n Notifiers) Notify(transition Transition) {
	for _, l := range n {
		l.Notify(transition)
	}
}
