package config

// Default paths and endpoints
const (
	// DefaultDatabasePath is the default path for the local application database
	DefaultDatabasePath = "./livraria.db"

	// DefaultGoogleBooksBaseURL is the public Google Books volumes API
	DefaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"

	// DefaultBackendBaseURL is the livraria backend used for favorites sync
	DefaultBackendBaseURL = "http://localhost:8080"
)
