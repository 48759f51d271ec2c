package notify_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	md "github.com/JMURv/zedasignal/internal/models"
	"github.com/JMURv/zedasignal/internal/notify"
	"github.com/JMURv/zedasignal/internal/sms/termii"
	"github.com/JMURv/zedasignal/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/gomail.v2"
)

const testFrom = "Zedasignal Notifier <noreply@zedasignal.com>"

func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestNewRegistry_AllKindsRegistered(t *testing.T) {
	reg, err := notify.NewRegistry(testFrom)
	require.NoError(t, err)

	for _, kind := range []notify.Kind{
		notify.KindUserVerification,
		notify.KindPasswordReset,
		notify.KindSignal,
		notify.KindAccountScreening,
		notify.KindHelpSupport,
		notify.KindAccountUpgrade,
	} {
		d, err := reg.Lookup(kind)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, d.Subject)
		assert.Equal(t, testFrom, d.From)
	}

	_, err = reg.Lookup("unknown")
	assert.ErrorIs(t, err, notify.ErrUnknownKind)
}

func TestRegistry_RenderFallsBackToSubjectAndBody(t *testing.T) {
	reg, err := notify.NewRegistry(testFrom)
	require.NoError(t, err)

	d, err := reg.Lookup(notify.KindSignal)
	require.NoError(t, err)

	html, err := reg.Render(d, nil)
	require.NoError(t, err)
	assert.Contains(t, html, d.Subject)
	assert.Contains(t, html, d.Body)
}

func TestRegistry_RenderEscapesSignalDescriptionOnce(t *testing.T) {
	reg, err := notify.NewRegistry(testFrom)
	require.NoError(t, err)

	d, err := reg.Lookup(notify.KindSignal)
	require.NoError(t, err)

	html, err := reg.Render(
		d, map[string]any{
			"signal": &md.Signal{PairBase: "EUR", PairQuote: "USD", Description: "Buy & hold"},
			"domain": "https://zedasignal.com",
		},
	)
	require.NoError(t, err)
	assert.Contains(t, html, "Buy &amp; hold")
	assert.NotContains(t, html, "&amp;amp;")
}

func TestSender_Send(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	reg, err := notify.NewRegistry(testFrom)
	require.NoError(t, err)

	mailer := mocks.NewMockMailer(mock)
	gateway := mocks.NewMockSMSGateway(mock)
	s := notify.NewSender(reg, mailer, gateway)

	ctx := context.Background()
	testErr := errors.New("smtp down")
	user := &md.User{Email: "trader@example.com", PhoneNumber: "+2348012345678"}

	tests := []struct {
		name    string
		to      notify.Recipient
		kind    notify.Kind
		data    map[string]any
		channel notify.Channel
		expect  func()
		wantErr error
	}{
		{
			name:    "Email",
			to:      user,
			kind:    notify.KindUserVerification,
			data:    map[string]any{"email": user.Email, "verification_code": "012345"},
			channel: notify.ChannelEmail,
			expect: func() {
				mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msgs ...*gomail.Message) error {
						require.Len(t, msgs, 1)
						assert.Equal(t, []string{user.Email}, msgs[0].GetHeader("To"))
						assert.Equal(t, []string{testFrom}, msgs[0].GetHeader("From"))
						assert.Contains(t, render(t, msgs[0]), "012345")
						return nil
					},
				)
			},
		},
		{
			name:    "EmailTransportError",
			to:      user,
			kind:    notify.KindPasswordReset,
			data:    map[string]any{"user": user, "reset_code": "abc"},
			channel: notify.ChannelEmail,
			expect: func() {
				mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(testErr)
			},
			wantErr: testErr,
		},
		{
			name:    "EmailWithoutAddress",
			to:      md.Contact{PhoneNumber: "+2348012345678"},
			kind:    notify.KindHelpSupport,
			channel: notify.ChannelEmail,
			expect:  func() {},
			wantErr: notify.ErrNoEmail,
		},
		{
			name:    "SMSDefaultText",
			to:      user,
			kind:    notify.KindSignal,
			channel: notify.ChannelSMS,
			expect: func() {
				gateway.EXPECT().Send(gomock.Any(), "2348012345678", "New Message").
					Return(&termii.SendResponse{MessageID: "1"}, nil)
			},
		},
		{
			name:    "SMSCustomText",
			to:      user,
			kind:    notify.KindSignal,
			data:    map[string]any{notify.SMSKey: "EURUSD buy 1.08"},
			channel: notify.ChannelSMS,
			expect: func() {
				gateway.EXPECT().Send(gomock.Any(), "2348012345678", "EURUSD buy 1.08").
					Return(&termii.SendResponse{MessageID: "1"}, nil)
			},
		},
		{
			name:    "SMSStripsOnlyOnePlus",
			to:      md.Contact{PhoneNumber: "++2348012345678"},
			kind:    notify.KindSignal,
			channel: notify.ChannelSMS,
			expect: func() {
				gateway.EXPECT().Send(gomock.Any(), "+2348012345678", "New Message").
					Return(&termii.SendResponse{MessageID: "1"}, nil)
			},
		},
		{
			name:    "SMSGatewayError",
			to:      user,
			kind:    notify.KindSignal,
			channel: notify.ChannelSMS,
			expect: func() {
				gateway.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, termii.ErrGateway)
			},
			wantErr: termii.ErrGateway,
		},
		{
			name:    "SMSWithoutPhone",
			to:      md.Contact{Email: "a@b.c"},
			kind:    notify.KindSignal,
			channel: notify.ChannelSMS,
			expect:  func() {},
			wantErr: notify.ErrNoPhone,
		},
		{
			name:    "PushIsNoop",
			to:      user,
			kind:    notify.KindSignal,
			channel: notify.ChannelPush,
			expect:  func() {},
		},
		{
			name:    "UnknownKind",
			to:      user,
			kind:    "missing",
			channel: notify.ChannelEmail,
			expect:  func() {},
			wantErr: notify.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expect()
			err := s.Send(ctx, tt.to, tt.kind, tt.data, tt.channel)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMassSender_SendMass(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	reg, err := notify.NewRegistry(testFrom)
	require.NoError(t, err)

	mailer := mocks.NewMockMailer(mock)
	m := notify.NewMassSender(reg, mailer)
	ctx := context.Background()

	signal := &md.Signal{UUID: uuid.New(), PairBase: "EUR", PairQuote: "USD", Entry: 1.08, Term: md.TermLong}
	subscribers := []notify.Recipient{
		&md.Subscriber{User: md.User{Email: "ada@example.com", FirstName: "Ada", LastName: "Obi"}},
		&md.Subscriber{User: md.User{Email: "bayo@example.com", FirstName: "Bayo"}},
	}
	data := map[string]any{"signal": signal, "domain": "https://zedasignal.com"}

	t.Run("EmptyRecipientsSkipTransport", func(t *testing.T) {
		n, err := m.SendMass(ctx, nil, notify.KindSignal, data, true)
		assert.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("PersonalisedSingleBatch", func(t *testing.T) {
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...*gomail.Message) error {
				require.Len(t, msgs, 2)
				assert.Equal(t, []string{"ada@example.com"}, msgs[0].GetHeader("To"))
				assert.Contains(t, render(t, msgs[0]), "Ada Obi")
				assert.Equal(t, []string{"bayo@example.com"}, msgs[1].GetHeader("To"))
				assert.Contains(t, render(t, msgs[1]), "Bayo")
				return nil
			},
		)

		n, err := m.SendMass(ctx, subscribers, notify.KindSignal, data, true)
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		_, ok := data["user"]
		assert.False(t, ok)
	})

	t.Run("SharedRender", func(t *testing.T) {
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...*gomail.Message) error {
				require.Len(t, msgs, 2)
				assert.Contains(t, render(t, msgs[0]), "EUR/USD")
				assert.Contains(t, render(t, msgs[1]), "EUR/USD")
				return nil
			},
		)

		n, err := m.SendMass(ctx, subscribers, notify.KindSignal, data, false)
		assert.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("BatchFailure", func(t *testing.T) {
		testErr := errors.New("smtp down")
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(testErr)

		n, err := m.SendMass(ctx, subscribers, notify.KindSignal, data, true)
		assert.ErrorIs(t, err, testErr)
		assert.Equal(t, 0, n)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, err := m.SendMass(ctx, subscribers, "missing", data, true)
		assert.ErrorIs(t, err, notify.ErrUnknownKind)
	})
}
