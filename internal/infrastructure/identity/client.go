// Package identity talks to the external identity provider. The provider is
// a collaborator: it exchanges an authorization code for an access token and
// returns the account behind it.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobboard/internal/config"
)

// Account is the provider's view of the signed-in user.
type Account struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	URL         string `json:"url"`
}

type Client interface {
	Verify(ctx context.Context, authCode string) (Account, error)
}

type HTTPClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	redirectURL  string
	http         *http.Client
}

func NewHTTPClient(cfg config.IdentityConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURL:  cfg.RedirectURL,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify runs the two-step exchange: authorization code for an access token,
// then the token for the account it belongs to.
func (c *HTTPClient) Verify(ctx context.Context, authCode string) (Account, error) {
	token, err := c.exchangeCode(ctx, authCode)
	if err != nil {
		return Account{}, err
	}
	return c.fetchAccount(ctx, token)
}

func (c *HTTPClient) exchangeCode(ctx context.Context, authCode string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {authCode},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"redirect_uri":  {c.redirectURL},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("identity provider token exchange: status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("identity provider token exchange: empty access token")
	}
	return body.AccessToken, nil
}

func (c *HTTPClient) fetchAccount(ctx context.Context, token string) (Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/accounts/verify_credentials", nil)
	if err != nil {
		return Account{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return Account{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Account{}, fmt.Errorf("identity provider account lookup: status %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&account); err != nil {
		return Account{}, err
	}
	if account.Username == "" {
		return Account{}, fmt.Errorf("identity provider account lookup: missing username")
	}
	return account, nil
}

var _ Client = (*HTTPClient)(nil)
