// Package authpg implements auth.Storage on PostgreSQL via pgx/v5.
//
// It covers the two tables the authentication subsystem touches: users and
// user_oauth_accounts. Schema lives in the repository's migrations
// directory and is applied with pg.Migrate.
package authpg
