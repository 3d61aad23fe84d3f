// Package config loads env-tagged configuration structs.
//
// Values come from the process environment, optionally seeded from a .env
// file. Each configuration type is parsed once per process and cached, so
// packages can call Load for their own Config without coordinating.
package config
