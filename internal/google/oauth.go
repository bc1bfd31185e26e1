package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
)

// DefaultOAuthScopes are the Google OAuth scopes the application requests.
// The tool is read-only/advisory, so calendar read access is all it needs.
var DefaultOAuthScopes = []string{
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",
	calendar.CalendarReadonlyScope,
}

// GetOAuthConfig returns the OAuth2 configuration used for all token
// exchanges. Client credentials come from the environment so deployments can
// bring their own OAuth application.
func GetOAuthConfig() *oauth2.Config {
	const oob = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  oob,
		Scopes:       DefaultOAuthScopes,
	}
}

// GetAuthURL returns the OAuth URL for user authorization.
func GetAuthURL() string {
	return GetOAuthConfig().AuthCodeURL("state", oauth2.AccessTypeOffline)
}

// HasTokenForAccount checks if a cached OAuth token exists for the account.
func HasTokenForAccount(account string) bool {
	if account == "" {
		return false
	}
	_, err := os.ReadFile(tokenFile(account))
	return err == nil
}

// SaveTokenForAccount exchanges an authorization code for tokens and caches
// them for the account.
func SaveTokenForAccount(ctx context.Context, account, authCode string) error {
	conf := GetOAuthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	file := tokenFile(account)
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(file, []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// GetTokenSourceForAccount returns an OAuth2 token source backed by the
// cached token for the account, refreshing through the configured OAuth
// application as needed.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	conf := GetOAuthConfig()

	slurp, err := os.ReadFile(tokenFile(account))
	if err != nil {
		return nil, fmt.Errorf("no cached Google OAuth token for account %s; run the auth command first", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token format in %s", tokenFile(account))
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		Expiry:       time.Unix(1, 0),
	})

	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}

	return ts, nil
}

// GetHTTPClient returns an HTTP client authenticated for the account.
// The client is pinned to HTTP/1.1 to avoid HTTP/2 protocol errors seen with
// the Google API endpoints.
func GetHTTPClient(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client, nil
}

func tokenFile(account string) string {
	return filepath.Join(userCacheDir(), "freeslots", account+".token")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
