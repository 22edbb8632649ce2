package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envTypes interface {
	~string | ~int | ~bool | time.Duration
}

func parseEnv[T envTypes](name, raw string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		v, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not a valid integer: %q", name, raw)
		}
		*ptr = v
	case *bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not a valid boolean: %q", name, raw)
		}
		*ptr = v
	case *time.Duration:
		v, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("environment variable %s is not a valid duration: %q", name, raw)
		}
		*ptr = v
	default:
		panic(fmt.Sprintf("unsupported env type for %s", name))
	}
	return out
}

func GetEnv[T envTypes](name string, fallback T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return fallback
	}
	return parseEnv[T](name, raw)
}

func GetRequiredEnv[T envTypes](name string) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	return parseEnv[T](name, raw)
}
