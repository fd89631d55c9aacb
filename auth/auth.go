package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.alis.build/sheets/remote"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// ErrEmptyCode is returned by Exchange when no authorization code is given.
var ErrEmptyCode = errors.New("empty authorization code")

// WebFlow is the OAuth2 web server flow for one client.
type WebFlow struct {
	config *oauth2.Config
}

// NewWebFlow creates a flow from the content of a client secrets file. The first redirect
// URI of the file is used. Scopes default to the spreadsheets scope.
func NewWebFlow(secretJSON []byte, scopes ...string) (*WebFlow, error) {
	if len(scopes) == 0 {
		scopes = []string{sheets.SpreadsheetsScope}
	}
	config, err := google.ConfigFromJSON(secretJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse client secrets: %w", err)
	}
	return &WebFlow{config: config}, nil
}

// NewWebFlowFromFile is NewWebFlow with the client secrets read from path.
func NewWebFlowFromFile(path string, scopes ...string) (*WebFlow, error) {
	secretJSON, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read client secrets: %w", err)
	}
	return NewWebFlow(secretJSON, scopes...)
}

// Config returns the underlying OAuth2 configuration.
func (f *WebFlow) Config() *oauth2.Config {
	return f.config
}

// AuthURL returns the consent page URL. state is echoed back to the redirect URI and should
// be checked there. Offline access is requested so the token can be refreshed.
func (f *WebFlow) AuthURL(state string) string {
	return f.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for a token.
func (f *WebFlow) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return token, nil
}

// TokenSource returns a source that refreshes token when it expires.
func (f *WebFlow) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return f.config.TokenSource(ctx, token)
}

// Option returns a remote client option authenticating with token.
func (f *WebFlow) Option(ctx context.Context, token *oauth2.Token) remote.Option {
	return remote.WithTokenSource(f.TokenSource(ctx, token))
}

// ServiceAccount returns a token source for the service account key in keyJSON. Scopes
// default to the spreadsheets scope.
func ServiceAccount(ctx context.Context, keyJSON []byte, scopes ...string) (oauth2.TokenSource, error) {
	if len(scopes) == 0 {
		scopes = []string{sheets.SpreadsheetsScope}
	}
	config, err := google.JWTConfigFromJSON(keyJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	return config.TokenSource(ctx), nil
}
