// Package config provides configuration management for flint.
//
// It utilizes Viper for loading configuration from environment variables
// and a .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided
// into subsections:
//   - Install: installation root path, Discovery variant flag, strict case mode
//   - Server: HTTP query server settings (port, API key)
//   - Log: logging level and format
//   - Database: export database connection (mysql or sqlite)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Install.Path)
package config
