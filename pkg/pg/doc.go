// Package pg bootstraps a PostgreSQL connection pool using pgx/v5.
//
// It provides a declarative env-backed Config, Connect with retry, goose
// schema migrations over an embedded filesystem, a healthcheck probe and
// error classifiers for unique-key and foreign-key violations.
package pg
