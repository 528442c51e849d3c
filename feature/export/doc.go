// Package export dumps the folded mission model into a relational
// database, flattening the composite entities into one table per record
// kind with the owning base's nickname as the join key. The default target
// is a local sqlite file; mysql is available for feeding a server-side
// database.
package export
