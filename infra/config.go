package infra

import (
	"fmt"
)

type PgConfig struct {
	ConnectionString string
	Database         string
	Hostname         string
	Password         string
	Port             string
	User             string
	SslMode          string
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}

	if config.SslMode == "" {
		config.SslMode = "prefer"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}
