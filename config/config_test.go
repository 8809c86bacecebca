package config

import (
	"testing"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
)

func validConfig() Config {
	return Config{
		ServerPort:        8280,
		SessionTTLMinutes: 60,
		APISecretKey:      "secret",
	}
}

func TestValidateConfig(t *testing.T) {
	log := logger.New("test")

	testCases := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{
			name:      "valid config",
			mutate:    func(c *Config) {},
			wantError: false,
		},
		{
			name:      "invalid port",
			mutate:    func(c *Config) { c.ServerPort = 0 },
			wantError: true,
		},
		{
			name:      "admin password without signing key",
			mutate:    func(c *Config) { c.AdminPassword = "hunter2" },
			wantError: true,
		},
		{
			name: "admin password with signing key",
			mutate: func(c *Config) {
				c.AdminPassword = "hunter2"
				c.SessionSigningKey = "signing-key"
			},
			wantError: false,
		},
		{
			name:      "zero session ttl",
			mutate:    func(c *Config) { c.SessionTTLMinutes = 0 },
			wantError: true,
		},
		{
			name:      "bucket without region",
			mutate:    func(c *Config) { c.S3Bucket = "listing-photos" },
			wantError: true,
		},
		{
			name: "bucket with region",
			mutate: func(c *Config) {
				c.S3Bucket = "listing-photos"
				c.S3Region = "us-east-1"
			},
			wantError: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := validConfig()
			tc.mutate(&config)

			err := validateConfig(config, log)
			if tc.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
