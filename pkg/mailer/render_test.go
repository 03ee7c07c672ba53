package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

func TestRender_PasswordChanged(t *testing.T) {
	msg, err := Render(service.Notification{
		Type:     service.NotifyPasswordChanged,
		To:       "alice@example.com",
		Username: "alice",
	}, Brand{CompanyName: "Saffco", SupportURL: "https://help.example.com"})

	require.NoError(t, err)
	assert.Equal(t, "Your password was changed", msg.Subject)
	assert.Contains(t, msg.Text, "Hi alice")
	assert.Contains(t, msg.Text, "https://help.example.com")
	assert.Contains(t, msg.HTML, `<a href="https://help.example.com">`)
}

func TestRender_ProfileUpdatedListsChangesInOrder(t *testing.T) {
	msg, err := Render(service.Notification{
		Type:     service.NotifyProfileUpdated,
		Username: "bob",
		Changes:  map[string]string{"phone": "+628123", "email": "bob@example.com"},
	}, Brand{CompanyName: "Saffco"})

	require.NoError(t, err)
	assert.Equal(t, "Your profile was updated", msg.Subject)
	assert.Contains(t, msg.Text, "- email: bob@example.com\n- phone: +628123\n")
	assert.Contains(t, msg.HTML, "<li><b>email</b>: bob@example.com</li>")
}

func TestRender_EscapesHTML(t *testing.T) {
	msg, err := Render(service.Notification{
		Type:     service.NotifyProfileUpdated,
		Username: "<script>",
		Changes:  map[string]string{"address": "<b>x</b>"},
	}, Brand{})

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestRender_UnknownType(t *testing.T) {
	_, err := Render(service.Notification{Type: "login"}, Brand{})
	assert.Error(t, err)
}
