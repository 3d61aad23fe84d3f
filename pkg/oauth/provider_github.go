package oauth

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/avelov/authkit/pkg/cookie"
)

const ProviderGitHub = "github"

// GitHubConfig holds configuration for the GitHub OAuth provider.
type GitHubConfig struct {
	ClientID        string   `env:"GITHUB_CLIENT_ID,required"`
	ClientSecret    string   `env:"GITHUB_CLIENT_SECRET,required"`
	RedirectBaseURL string   `env:"OAUTH_REDIRECT_BASE_URL,required"`
	Scopes          []string `env:"GITHUB_OAUTH_SCOPES" envSeparator:"," envDefault:"read:user,user:email"`
}

type githubUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewGitHub creates a client for GitHub's OAuth2 endpoints.
func NewGitHub(cfg GitHubConfig, cookies *cookie.Manager, opts ...Option) (*Client, error) {
	return New(Config{
		Provider:        ProviderGitHub,
		ClientID:        cfg.ClientID,
		ClientSecret:    cfg.ClientSecret,
		Scopes:          cfg.Scopes,
		AuthorizeURL:    "https://github.com/login/oauth/authorize",
		TokenURL:        "https://github.com/login/oauth/access_token",
		UserInfoURL:     "https://api.github.com/user",
		RedirectBaseURL: cfg.RedirectBaseURL,
	}, transformGitHub, cookies, opts...)
}

func transformGitHub(raw []byte) (NormalizedUser, error) {
	var u githubUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return NormalizedUser{}, fmt.Errorf("decode github user: %w", err)
	}
	if u.ID == 0 {
		return NormalizedUser{}, fmt.Errorf("github user id is missing")
	}

	return NormalizedUser{
		ID:       strconv.FormatInt(u.ID, 10),
		Email:    u.Email,
		FullName: u.Name,
	}, nil
}
