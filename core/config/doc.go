// Package config provides configuration management for json-cooker.
//
// Values come from environment variables, optionally seeded from a .env file
// through godotenv, and are decoded with Viper. Defaults live next to the
// fields in 'default' struct tags and are registered by reflection.
//
// # Configuration Structure
//
//   - Fetch: download timeout, concurrency limit, user agent
//   - Output: local artifact directory and bucket key prefix
//   - Storage: S3/MinIO mirror (disabled by default)
//   - Log: logging level and format
//   - Database: run ledger connection (disabled by default)
//
// Nested keys map to upper-case variables joined by underscores, so
// fetch.timeout_seconds is read from FETCH_TIMEOUT_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Dir)
package config
