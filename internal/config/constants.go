package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the catalog database file
	DefaultDatabasePath = "./data/books.db"
)
