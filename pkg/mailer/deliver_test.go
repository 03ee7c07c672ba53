package mailer

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, to string, msg Message) error {
	return m.Called(ctx, to, msg).Error(0)
}

func TestDeliver(t *testing.T) {
	ctx := context.Background()
	brand := Brand{CompanyName: "Saffco"}

	t.Run("sends rendered message", func(t *testing.T) {
		s := &mockSender{}
		s.On("Send", ctx, "a@example.com", mock.MatchedBy(func(m Message) bool {
			return m.Subject != "" && m.HTML != ""
		})).Return(nil)

		err := Deliver(ctx, []byte(`{"type":"password_changed","to":"a@example.com","username":"alice"}`), s, brand)

		require.NoError(t, err)
		s.AssertExpectations(t)
	})

	t.Run("malformed messages are permanent", func(t *testing.T) {
		s := &mockSender{}
		for _, body := range []string{`{`, `{"type":"password_changed"}`, `{"type":"weird","to":"a@example.com"}`} {
			err := Deliver(ctx, []byte(body), s, brand)
			assert.True(t, errors.Is(err, ErrPermanent), body)
		}
		s.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("send failures can be retried", func(t *testing.T) {
		s := &mockSender{}
		s.On("Send", ctx, "a@example.com", mock.Anything).Return(errors.New("mailgun 503"))

		err := Deliver(ctx, []byte(`{"type":"profile_updated","to":"a@example.com","username":"alice","changes":{"email":"a@example.com"}}`), s, brand)

		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrPermanent))
	})

	t.Run("rejected sends stay permanent", func(t *testing.T) {
		s := &mockSender{}
		s.On("Send", ctx, "bad@example", mock.Anything).Return(errors.Wrap(ErrPermanent, "mailgun rejected message (status 400)"))

		err := Deliver(ctx, []byte(`{"type":"password_changed","to":"bad@example","username":"alice"}`), s, brand)

		assert.True(t, errors.Is(err, ErrPermanent))
	})
}
