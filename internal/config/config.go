// Where: autoshutdown/internal/config/config.go
// What: Environment-driven configuration for the auto-shutdown function.
// Why: Read INSTANCE_IDS and AWS client settings in one place.
package config

import (
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/constants"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/provider/ec2"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/shutdown"
)

// Config is the resolved configuration for one process.
type Config struct {
	Handler  shutdown.Config
	EC2      ec2.Settings
	LogLevel string
}

// Load reads configuration through get. INSTANCE_IDS is passed through
// untrimmed; parsing belongs to the handler.
func Load(get envutil.Getter) Config {
	return Config{
		Handler: shutdown.Config{
			InstanceIDsRaw: get.Raw(constants.EnvInstanceIDs),
		},
		EC2: ec2.Settings{
			Region:    get.Trimmed(constants.EnvAWSRegion),
			Endpoint:  get.Trimmed(constants.EnvEC2Endpoint),
			AccessKey: get.Trimmed(constants.EnvEC2AccessKey),
			SecretKey: get.Trimmed(constants.EnvEC2SecretKey),
		},
		LogLevel: get.Trimmed(constants.EnvLogLevel),
	}
}

// LoadHandler reads only the handler input. The Lambda entrypoint calls it on
// every invocation so a changed INSTANCE_IDS takes effect without a cold start.
func LoadHandler(get envutil.Getter) shutdown.Config {
	return shutdown.Config{InstanceIDsRaw: get.Raw(constants.EnvInstanceIDs)}
}
