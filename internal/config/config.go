package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
)

// selectionKey is the fixed key under which the seat selection is
// persisted when SELECTION_STORAGE_KEY is not set.
const selectionKey = "seatselect:selection:v1"

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Database settings locate
// the venue provider; VenueID names the venue this instance serves.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	DBUser        string // database username
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	VenueID       string // id of the venue to load at startup
	SelectionKey  string // key-value storage key for the persisted selection
	PublishEvents bool   // emit selection.changed events to the broker
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		DBUser:        must("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"), // empty allowed
		DBHost:        must("DB_HOST"),
		DBPort:        must("DB_PORT"),
		DBName:        must("DB_NAME"),
		VenueID:       must("VENUE_ID"),
		SelectionKey:  getenv("SELECTION_STORAGE_KEY", selectionKey),
		PublishEvents: getenv("EVENTS_ENABLED", "false") == "true",
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the environment value for key or def when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
