package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvGatewaySecret     = "ROUTINEHUB_GATEWAY_SECRET"
	EnvAdminUsername     = "ROUTINEHUB_ADMIN_USERNAME"
	EnvAdminPasswordHash = "ROUTINEHUB_ADMIN_PASSWORD_HASH"
	EnvMCPSecret         = "ROUTINEHUB_MCP_SECRET"
	EnvRedisPassword     = "ROUTINEHUB_REDIS_PASS"
	EnvPostgresPassword  = "ROUTINEHUB_POSTGRES_PASS"
	EnvSentryDSN         = "SENTRY_DSN"
	EnvHoneycombEnabled  = "HONEYCOMB_ENABLED"
	EnvHoneycombAPIKey   = "HONEYCOMB_API_KEY"
)

// Secrets are never kept in the TOML file.
type Secrets struct {
	GatewaySecret     string
	AdminUsername     string
	AdminPasswordHash string
	MCPSecret         string
	RedisPassword     string
	PostgresPassword  string
	SentryDSN         string
	HoneycombEnabled  bool
}

// LoadEnvFiles loads .env.local and .env from the config file directory and
// the working directory. Variables already set in the environment win.
func LoadEnvFiles(configPath string) {
	var files []string
	seen := map[string]bool{}
	for _, dir := range []string{filepath.Dir(configPath), "."} {
		for _, name := range []string{".env.local", ".env"} {
			candidate, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil || seen[candidate] {
				continue
			}
			seen[candidate] = true
			if _, err := os.Stat(candidate); err == nil {
				files = append(files, candidate)
			}
		}
	}
	if len(files) == 0 {
		return
	}
	if err := godotenv.Load(files...); err != nil {
		log.Warnf("load env files %v: %s", files, err)
	}
}

func SecretsFromEnv() Secrets {
	return Secrets{
		GatewaySecret:     os.Getenv(EnvGatewaySecret),
		AdminUsername:     os.Getenv(EnvAdminUsername),
		AdminPasswordHash: os.Getenv(EnvAdminPasswordHash),
		MCPSecret:         os.Getenv(EnvMCPSecret),
		RedisPassword:     os.Getenv(EnvRedisPassword),
		PostgresPassword:  os.Getenv(EnvPostgresPassword),
		SentryDSN:         os.Getenv(EnvSentryDSN),
		HoneycombEnabled:  os.Getenv(EnvHoneycombEnabled) == "true",
	}
}

// Missing returns the names of the env vars the service cannot run
// properly without.
func (s Secrets) Missing() []string {
	var missing []string
	if s.GatewaySecret == "" {
		missing = append(missing, EnvGatewaySecret)
	}
	if s.AdminUsername == "" {
		missing = append(missing, EnvAdminUsername)
	}
	if s.AdminPasswordHash == "" {
		missing = append(missing, EnvAdminPasswordHash)
	}
	if s.MCPSecret == "" {
		missing = append(missing, EnvMCPSecret)
	}
	return missing
}
