package configs

// Payout holds the tunables of the payout engine.
type Payout struct {
	// ClosingThreshold is the spent/budget ratio at which an active
	// campaign moves to closing.
	ClosingThreshold float64 `env:"CLOSING_THRESHOLD" envDefault:"0.95"`
	LeaderboardSize  int     `env:"LEADERBOARD_SIZE" envDefault:"10"`
}
