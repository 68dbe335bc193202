package spotify

import (
	"context"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"
)

// DefaultTokenURL is the Spotify accounts service token endpoint.
const DefaultTokenURL = "https://accounts.spotify.com/api/token"

// NewCredentialsClient returns an *http.Client that obtains and refreshes
// client-credentials tokens transparently. The catalog endpoints used here
// need no user consent, so the app-level grant is sufficient.
func NewCredentialsClient(ctx context.Context, clientID, clientSecret, tokenURL string) *http.Client {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return conf.Client(ctx)
}
