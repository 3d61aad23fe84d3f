// Package httpserver runs an http.Server with graceful shutdown tied to
// context cancellation and OS signals, plus a readiness handler that
// aggregates dependency healthchecks.
//
// Usage:
//
//	srv := httpserver.New(httpserver.WithAddr(":8080"))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Fatal(err)
//	}
package httpserver
