package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelov/authkit/pkg/cookie"
)

func TestTransformDiscord(t *testing.T) {
	t.Parallel()

	t.Run("prefers username", func(t *testing.T) {
		t.Parallel()

		user, err := transformDiscord([]byte(`{"id":"99","username":"ann","global_name":"Ann A","email":"a@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, NormalizedUser{ID: "99", Email: "a@x.com", FullName: "ann"}, user)
	})

	t.Run("falls back to global name", func(t *testing.T) {
		t.Parallel()

		user, err := transformDiscord([]byte(`{"id":"99","global_name":"Ann A","email":"a@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, "Ann A", user.FullName)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := transformDiscord([]byte(`not-json`))
		assert.Error(t, err)
	})
}

func TestTransformGitHub(t *testing.T) {
	t.Parallel()

	t.Run("stringifies numeric id", func(t *testing.T) {
		t.Parallel()

		user, err := transformGitHub([]byte(`{"id":12345,"name":"Ann","email":"a@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, NormalizedUser{ID: "12345", Email: "a@x.com", FullName: "Ann"}, user)
	})

	t.Run("rejects missing id", func(t *testing.T) {
		t.Parallel()

		_, err := transformGitHub([]byte(`{"name":"Ann","email":"a@x.com"}`))
		assert.Error(t, err)
	})
}

func TestProviderConstructors(t *testing.T) {
	t.Parallel()

	cookies := cookie.New()

	discord, err := NewDiscord(DiscordConfig{
		ClientID:        "id",
		ClientSecret:    "secret",
		RedirectBaseURL: "https://app.example.com/api/oauth/",
		Scopes:          []string{"identify", "email"},
	}, cookies)
	require.NoError(t, err)
	assert.Equal(t, ProviderDiscord, discord.Provider())

	github, err := NewGitHub(GitHubConfig{
		ClientID:        "id",
		ClientSecret:    "secret",
		RedirectBaseURL: "https://app.example.com/api/oauth/",
		Scopes:          []string{"read:user", "user:email"},
	}, cookies)
	require.NoError(t, err)
	assert.Equal(t, ProviderGitHub, github.Provider())
}
