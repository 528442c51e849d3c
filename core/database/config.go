package database

// Config holds configuration for the export database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// File is the database file path, used by the sqlite driver.
	File string `mapstructure:"file" default:"flint.db"`
	// Host is the database host (mysql).
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port (mysql).
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user (mysql).
	User string `mapstructure:"user" default:"root"`
	// Password is the database password (mysql).
	Password string `mapstructure:"password" default:""`
	// Name is the database name (mysql).
	Name string `mapstructure:"name" default:"flint"`
	// TimeoutSeconds is the connection timeout in seconds (mysql).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
