// Package database provides the GORM connection factory for the export
// target. It supports a local sqlite file (default) and mysql for feeding
// an existing server-side database.
package database
