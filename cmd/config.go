package cmd

import (
	"time"

	"github.com/caseward/caseward-backend/infra"
	"github.com/caseward/caseward-backend/utils"
)

type AppConfig struct {
	loggingFormat        string
	pgConfig             infra.PgConfig
	reassignmentCoolDown time.Duration
	escalationWindow     time.Duration
}

func loadAppConfig() AppConfig {
	return AppConfig{
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		pgConfig: infra.PgConfig{
			ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
			Database:         utils.GetEnv("PG_DATABASE", "caseward"),
			Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
			Password:         utils.GetEnv("PG_PASSWORD", ""),
			Port:             utils.GetEnv("PG_PORT", "5432"),
			User:             utils.GetEnv("PG_USER", ""),
			SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
		},
		reassignmentCoolDown: utils.GetEnv("REASSIGNMENT_COOL_DOWN", time.Duration(0)),
		escalationWindow:     utils.GetEnv("ESCALATION_WINDOW", 7*24*time.Hour),
	}
}
