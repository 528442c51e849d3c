// Package server holds the configuration for the HTTP query server.
// The Fiber application itself is assembled by the start command from
// the features registered with the loader.
package server
