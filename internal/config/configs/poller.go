package configs

import "time"

// Poller controls the periodic view sampling pass.
type Poller struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"10m"`
	// Concurrency is the number of campaigns sampled in parallel. Submissions
	// of one campaign are always processed in order.
	Concurrency int `env:"CONCURRENCY" envDefault:"1"`
	// LockTTL is the expiry of the distributed pass lock. A running pass
	// extends it every third of the ttl, so it only bounds how long a
	// crashed replica blocks the others.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"9m"`
}
