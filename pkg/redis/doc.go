// Package redis connects to a Redis server with retry and exposes a
// healthcheck helper. The session store depends on the returned client;
// nothing in this package knows about sessions.
package redis
