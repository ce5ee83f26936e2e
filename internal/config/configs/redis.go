package configs

import "time"

// Redis configures the optional redis connection used for the poll lock,
// leaderboard publishing and event notifications. An empty URL disables
// redis; the application then falls back to in-process lock and log output.
type Redis struct {
	URL    string `env:"URL"`
	Prefix string `env:"PREFIX" envDefault:"viralizza"`
	// LeaderboardTTL bounds how long a stored leaderboard lives without a
	// refresh. Zero keeps it until overwritten.
	LeaderboardTTL time.Duration `env:"LEADERBOARD_TTL" envDefault:"0s"`
}

// Enabled reports whether a redis URL was configured.
func (r Redis) Enabled() bool { return r.URL != "" }
