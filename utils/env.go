package utils

import (
	"os"
	"strconv"
	"time"
)

// GetEnvAsString returns the value of key, or defaultVal when unset.
// An empty value counts as set.
func GetEnvAsString(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

// GetEnvAsInt returns key parsed as an int, falling back to defaultVal
// when unset or unparseable.
func GetEnvAsInt(key string, defaultVal int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

// GetEnvAsUint64 returns key parsed as a uint64, falling back to
// defaultVal when unset or unparseable.
func GetEnvAsUint64(key string, defaultVal uint64) uint64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return n
}

// GetEnvAsBool returns key parsed with strconv.ParseBool, falling back
// to defaultVal when unset or unparseable.
func GetEnvAsBool(key string, defaultVal bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

// GetEnvAsDuration returns key parsed with time.ParseDuration, falling
// back to defaultVal when unset or unparseable.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
