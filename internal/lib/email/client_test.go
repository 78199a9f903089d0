package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestSendWelcomeEmail(t *testing.T) {
	sender := &fakeSender{}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "Signup <onboarding@resend.dev>", &logger)

	require.NoError(t, client.SendWelcomeEmail("ann@x.com", "Ann <3"))

	require.Len(t, sender.sent, 1)
	sent := sender.sent[0]
	assert.Equal(t, "Signup <onboarding@resend.dev>", sent.From)
	assert.Equal(t, []string{"ann@x.com"}, sent.To)
	assert.Contains(t, sent.Html, "Welcome, Ann &lt;3!")
}

func TestSendEmailProviderFailure(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("rate limited")}, "from@x.com", &logger)

	err := client.SendWelcomeEmail("ann@x.com", "Ann")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestPreviewDataRendersEveryTemplate(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.NotEmpty(t, html)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}
