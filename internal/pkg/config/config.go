// Package config abstracts configuration lookup behind a small interface so
// components never touch the loading mechanism directly.
package config

import (
	"io"
	"time"
)

// Config defines the configuration lookups used across the application.
// Implementations handle missing keys by returning the type's zero value.
type Config interface {
	io.Closer

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value for key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetArray retrieves the value for key split on commas.
	GetArray(key string) []string
}
