package google

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOAuthScopes(t *testing.T) {
	// The tool never writes to calendars; the scope list must stay read-only.
	for _, scope := range DefaultOAuthScopes {
		assert.NotContains(t, scope, "calendar.events")
		if strings.Contains(scope, "calendar") {
			assert.Contains(t, scope, "readonly")
		}
	}
}

func TestGetAuthURL(t *testing.T) {
	url := GetAuthURL()
	assert.Contains(t, url, "https://accounts.google.com/o/oauth2/auth")
	assert.Contains(t, url, "calendar.readonly")
}

func TestHasTokenForAccount(t *testing.T) {
	assert.False(t, HasTokenForAccount(""), "empty account never has a token")

	// An unheard-of account has no cached token either.
	assert.False(t, HasTokenForAccount("no-such-account-for-testing"))
}

func TestFileTokenProvider(t *testing.T) {
	provider := NewFileTokenProvider()
	assert.False(t, provider.HasTokenForAccount("no-such-account-for-testing"))
}

func TestTokenFilePerAccount(t *testing.T) {
	a := tokenFile("default")
	b := tokenFile("work")
	assert.NotEqual(t, a, b, "accounts must not share token files")
	assert.Contains(t, a, "freeslots")
}
