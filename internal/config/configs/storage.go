package configs

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Storage selects the ledger backend. "memory" keeps everything in process
// and is meant for local runs only.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
