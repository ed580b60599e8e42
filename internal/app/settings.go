// Where: autoshutdown/internal/app/settings.go
// What: Flag-over-environment resolution shared by commands.
// Why: Flags win over environment values; empty flags keep the environment.
package app

import (
	"strings"

	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/config"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
)

func resolveConfig(env envutil.Getter, instanceIDs string, aws AWSFlags) config.Config {
	cfg := config.Load(env)
	if instanceIDs != "" {
		cfg.Handler.InstanceIDsRaw = instanceIDs
	}
	if value := strings.TrimSpace(aws.Region); value != "" {
		cfg.EC2.Region = value
	}
	if value := strings.TrimSpace(aws.Endpoint); value != "" {
		cfg.EC2.Endpoint = value
	}
	return cfg
}
