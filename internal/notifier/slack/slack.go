package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"

	"github.com/suarezvoley/checkin/internal/metrics"
	"github.com/suarezvoley/checkin/internal/notifier"
)

// slackClient is an interface that contains the methods from the
// slack.Client that we use. This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = (*Notifier)(nil)

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, m metrics.Metrics) *Notifier {
	return &Notifier{
		api:       slack.New(token),
		channelID: channelID,
		metrics:   m,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific client
// instance. Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, m metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   m,
	}
}

// SendCheckInNotification posts a short check-in announcement to the
// club channel.
func (s *Notifier) SendCheckInNotification(name, code, checkInTime string) error {
	text := fmt.Sprintf(":white_check_mark: *%s* checked in at %s (code %s)", name, checkInTime, code)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return fmt.Errorf("failed to post message: %w", err)
	}

	log.Debug("Sent check-in notification", "channel", channelID, "timestamp", timestamp)
	return nil
}
