package config

const (
	delimiter = "."

	EnvPrefix = "POLICY"

	KeyLogLevel = "log_level"
	KeySteps    = "steps"

	DefaultEnvFile  = ".env"
	DefaultLogLevel = "info"
)
