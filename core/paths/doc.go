// Package paths locates files inside a Freelancer installation.
//
// The game's configuration files were authored on case-insensitive
// filesystems and reference each other with essentially arbitrary casing.
// On case-sensitive filesystems those references do not resolve, so this
// package provides a memoized case-resolution service that recovers the
// true on-disk casing of a path (Cache.Resolve), plus a Session that
// validates an installation root and indexes its configuration and
// string-resource files.
//
// # Concurrency
//
// Neither Cache nor Session locks internally; both assume a single caller
// at a time. Callers that serve the model concurrently must wrap access in
// their own mutual exclusion (feature/server does exactly that).
package paths
