package smtp

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	m := NewMessage(
		"Zedasignal Notifier <noreply@zedasignal.com>",
		"trader@example.com",
		"New signal",
		"EUR/USD buy",
		"<p>EUR/USD buy</p>",
	)

	assert.Equal(t, []string{"trader@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New signal"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/html")
	assert.Contains(t, buf.String(), "EUR/USD buy")
}

func TestNewMessage_PlainOnly(t *testing.T) {
	m := NewMessage("from@example.com", "to@example.com", "subject", "body", "")

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "text/html")
}

func TestEmailServer_SendEmpty(t *testing.T) {
	s := &EmailServer{}
	assert.NoError(t, s.Send(context.Background()))
}
