package slack

import (
	"context"
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suarezvoley/checkin/internal/metrics"
)

type fakeClient struct {
	channels []string
	err      error
}

func (f *fakeClient) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.channels = append(f.channels, channelID)
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "123.456", nil
}

func TestSendCheckInNotification(t *testing.T) {
	api := &fakeClient{}
	n := NewNotifierWithAPI(api, "C123", metrics.NewMock())

	err := n.SendCheckInNotification("Lucia", "1234", "18:30")
	require.NoError(t, err)
	require.Len(t, api.channels, 1)
	assert.Equal(t, "C123", api.channels[0])
}

func TestSendCheckInNotification_Failure(t *testing.T) {
	api := &fakeClient{err: errors.New("channel_not_found")}
	m := metrics.NewMock()
	n := NewNotifierWithAPI(api, "C123", m)

	err := n.SendCheckInNotification("Lucia", "1234", "18:30")
	assert.Error(t, err)
	assert.Equal(t, 1, m.NotifFailedCount)
}
