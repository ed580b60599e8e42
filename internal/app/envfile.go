// Where: autoshutdown/internal/app/envfile.go
// What: .env file layering for local runs.
// Why: Let operators keep INSTANCE_IDS next to the project without exporting it.
package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/envutil"
	"github.com/poruru/alb-healthcheck-demo/autoshutdown/internal/meta"
)

// layerEnvFile returns a Getter that prefers non-empty values from base and
// falls back to the env file. An explicit path must exist; the default
// ./.env is optional. The process environment is never modified.
func layerEnvFile(path string, base envutil.Getter) (envutil.Getter, error) {
	if path == "" {
		if _, err := os.Stat(meta.EnvFile); err != nil {
			return base, nil
		}
		path = meta.EnvFile
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return base, err
	}
	return func(key string) string {
		if value := base.Raw(key); value != "" {
			return value
		}
		return values[key]
	}, nil
}
