package notifier_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"github.com/vigilocam/detection-scheduler/internal/notifier"
	"github.com/vigilocam/detection-scheduler/internal/testutil"
)

type fakeSlackSender struct {
	lock        sync.Mutex
	channels    []string
	attachments []slack.Attachment
	err         error
}

func (f *fakeSlackSender) Send(channel string, attachments []slack.Attachment) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.channels = append(f.channels, channel)
	f.attachments = append(f.attachments, attachments...)
	return f.err
}

func TestNotifiers_Notify(t *testing.T) {
	tests := []struct {
		name       string
		transition notifier.Transition
		color      string
		title      string
		logged     string
	}{
		{
			name: "detection starts",
			transition: notifier.Transition{
				Camera: "Front Door",
				From:   detect.Inactive,
				To:     detect.Active,
				Reason: "inside window 09:00-17:00",
				Until:  time.Date(2024, time.March, 4, 17, 0, 0, 0, time.UTC),
			},
			color:  "good",
			title:  "Front Door: detection active until Mon 17:00",
			logged: `level=INFO msg="Front Door: detection active until Mon 17:00" reason="inside window 09:00-17:00"` + "\n",
		},
		{
			name: "detection stops",
			transition: notifier.Transition{
				Camera: "Front Door",
				From:   detect.Active,
				To:     detect.Inactive,
				Reason: "outside scheduled windows",
			},
			color:  "warning",
			title:  "Front Door: detection paused",
			logged: `level=INFO msg="Front Door: detection paused" reason="outside scheduled windows"` + "\n",
		},
		{
			name: "schedule turned off",
			transition: notifier.Transition{
				Camera: "Garden",
				From:   detect.Inactive,
				To:     detect.AlwaysActive,
				Reason: "schedule disabled",
			},
			color:  "good",
			title:  "Garden: detection active",
			logged: `level=INFO msg="Garden: detection active" reason="schedule disabled"` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logOutput bytes.Buffer
			sender := fakeSlackSender{}
			n := notifier.Notifiers{
				notifier.SLogNotifier{Logger: testutil.NewBufferLogger(&logOutput)},
				&notifier.SlackNotifier{Logger: testutil.NewBufferLogger(&logOutput), Slack: &sender},
			}

			n.Notify(tt.transition)

			require.Len(t, sender.attachments, 1)
			assert.Equal(t, tt.color, sender.attachments[0].Color)
			assert.Equal(t, tt.title, sender.attachments[0].Title)
			assert.Equal(t, tt.transition.Reason, sender.attachments[0].Text)
			assert.Equal(t, []string{""}, sender.channels)
			assert.Equal(t, tt.logged, logOutput.String())
		})
	}
}

func TestSlackNotifier_Channel(t *testing.T) {
	sender := fakeSlackSender{}
	n := notifier.SlackNotifier{Logger: testutil.NewBufferLogger(&bytes.Buffer{}), Slack: &sender, Channel: "C123"}

	n.Notify(notifier.Transition{Camera: "Front Door", From: detect.Inactive, To: detect.Active, Reason: "inside window 09:00-17:00"})

	assert.Equal(t, []string{"C123"}, sender.channels)
}

func TestSlackNotifier_SendFails(t *testing.T) {
	var logOutput bytes.Buffer
	sender := fakeSlackSender{err: errors.New("channel_not_found")}
	n := notifier.SlackNotifier{Logger: testutil.NewBufferLogger(&logOutput), Slack: &sender}

	n.Notify(notifier.Transition{Camera: "Front Door", From: detect.Active, To: detect.Inactive, Reason: "outside scheduled windows"})

	assert.Equal(t, `level=ERROR msg="notifier failed to post message" err=channel_not_found`+"\n", logOutput.String())
}
