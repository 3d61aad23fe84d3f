package oauth

import (
	"encoding/json"
	"fmt"

	"github.com/avelov/authkit/pkg/cookie"
)

const ProviderDiscord = "discord"

// DiscordConfig holds configuration for the Discord OAuth provider.
type DiscordConfig struct {
	ClientID        string   `env:"DISCORD_CLIENT_ID,required"`
	ClientSecret    string   `env:"DISCORD_CLIENT_SECRET,required"`
	RedirectBaseURL string   `env:"OAUTH_REDIRECT_BASE_URL,required"`
	Scopes          []string `env:"DISCORD_OAUTH_SCOPES" envSeparator:"," envDefault:"identify,email"`
}

type discordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
}

// NewDiscord creates a client for Discord's OAuth2 endpoints.
func NewDiscord(cfg DiscordConfig, cookies *cookie.Manager, opts ...Option) (*Client, error) {
	return New(Config{
		Provider:        ProviderDiscord,
		ClientID:        cfg.ClientID,
		ClientSecret:    cfg.ClientSecret,
		Scopes:          cfg.Scopes,
		AuthorizeURL:    "https://discord.com/oauth2/authorize",
		TokenURL:        "https://discord.com/api/oauth2/token",
		UserInfoURL:     "https://discord.com/api/users/@me",
		RedirectBaseURL: cfg.RedirectBaseURL,
	}, transformDiscord, cookies, opts...)
}

func transformDiscord(raw []byte) (NormalizedUser, error) {
	var u discordUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return NormalizedUser{}, fmt.Errorf("decode discord user: %w", err)
	}

	fullName := u.Username
	if fullName == "" {
		fullName = u.GlobalName
	}

	return NormalizedUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: fullName,
	}, nil
}
