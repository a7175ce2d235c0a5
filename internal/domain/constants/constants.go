package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage providers
const (
	StorageProviderFile   = "file"
	StorageProviderMemory = "memory"
	StorageProviderS3     = "s3"
)

// Database drivers
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)

// AssistantProviderGemini selects the Gemini chat responder
const AssistantProviderGemini = "gemini"
