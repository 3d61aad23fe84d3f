// Package migrations embeds the SQL schema migrations so deployments need
// no migration files on disk; apply them with pg.Migrate(ctx, pool, cfg,
// migrations.FS, ".", log).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
