package cmd

// Config carries the application settings loaded from the environment.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	DelayScanEnabled bool
}
