// Where: autoshutdown/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

const (
	// Handler Configuration
	EnvInstanceIDs = "INSTANCE_IDS"

	// Logging
	EnvLogLevel = "LOG_LEVEL"

	// AWS Client Configuration
	EnvAWSRegion    = "AWS_REGION"
	EnvEC2Endpoint  = "AUTOSHUTDOWN_EC2_ENDPOINT"
	EnvEC2AccessKey = "AUTOSHUTDOWN_ACCESS_KEY"
	EnvEC2SecretKey = "AUTOSHUTDOWN_SECRET_KEY"
)
