// Command server runs the authentication service: Postgres-backed accounts,
// Redis-backed sessions, credential and OAuth login routes.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/avelov/authkit/migrations"
	"github.com/avelov/authkit/modules/account"
	"github.com/avelov/authkit/pkg/auth"
	"github.com/avelov/authkit/pkg/authpg"
	"github.com/avelov/authkit/pkg/config"
	"github.com/avelov/authkit/pkg/cookie"
	"github.com/avelov/authkit/pkg/httpserver"
	"github.com/avelov/authkit/pkg/logger"
	"github.com/avelov/authkit/pkg/oauth"
	"github.com/avelov/authkit/pkg/password"
	"github.com/avelov/authkit/pkg/pg"
	"github.com/avelov/authkit/pkg/redis"
	"github.com/avelov/authkit/pkg/session"
)

func main() {
	log := logger.New(logger.WithFormat(logger.FormatJSON))

	if err := run(context.Background(), log); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var (
		pgCfg      pg.Config
		redisCfg   redis.Config
		httpCfg    httpserver.Config
		sessionCfg session.Config
		discordCfg oauth.DiscordConfig
		githubCfg  oauth.GitHubConfig
	)
	config.MustLoad(&pgCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&sessionCfg)
	config.MustLoad(&discordCfg)
	config.MustLoad(&githubCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, migrations.FS, ".", log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	cookies := cookie.New()
	sessions := session.New(session.NewRedisStore(redisClient), cookies,
		session.WithConfig(sessionCfg),
		session.WithLogger(log),
	)

	svc := auth.New(authpg.New(pool), password.New(), sessions, auth.WithLogger(log))

	discord, err := oauth.NewDiscord(discordCfg, cookies, oauth.WithLogger(log))
	if err != nil {
		return err
	}
	github, err := oauth.NewGitHub(githubCfg, cookies, oauth.WithLogger(log))
	if err != nil {
		return err
	}

	accounts := account.New(svc, []*oauth.Client{discord, github}, account.WithLogger(log))

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(svc.RefreshSession)

	r.Get("/health", httpserver.Healthcheck(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	r.Mount("/", accounts.Handler())

	r.Group(func(r chi.Router) {
		r.Use(svc.RequireUser("/login"))
		r.Get("/me", func(w http.ResponseWriter, req *http.Request) {
			user, ok := auth.UserFromContext(req.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(user.Email))
		})
	})

	return httpserver.New(httpserver.WithConfig(httpCfg), httpserver.WithLogger(log)).Run(ctx, r)
}
