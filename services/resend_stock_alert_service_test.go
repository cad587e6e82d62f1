package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitResendClientWithoutKeyDisablesEmails(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	resendClient = nil

	// Missing key must not be fatal: the webhook path checks for nil and
	// leaves alerts pending instead.
	InitResendClient()
	assert.Nil(t, GetResendClient())
}

func TestInitResendClientDefaultsFromAddress(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("RESEND_FROM_EMAIL", "")
	resendClient = nil

	InitResendClient()
	client := GetResendClient()
	require.NotNil(t, client)
	assert.Equal(t, "noreply@caughtonline.co.za", client.from)
}

func TestInitResendClientUsesConfiguredFromAddress(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_test_key")
	t.Setenv("RESEND_FROM_EMAIL", "alerts@caughtonline.co.za")
	resendClient = nil

	InitResendClient()
	client := GetResendClient()
	require.NotNil(t, client)
	assert.Equal(t, "alerts@caughtonline.co.za", client.from)
}
