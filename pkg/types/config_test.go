// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero capacity", mutate: func(c *Config) { c.Cache.Capacity = 0 }, wantErr: ErrCacheCapacity},
		{name: "empty store dir", mutate: func(c *Config) { c.Store.Dir = "" }, wantErr: ErrStoreDir},
		{name: "negative concurrency", mutate: func(c *Config) { c.Batch.Concurrency = -1 }, wantErr: ErrBatchConcurrency},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: ErrLogLevel},
		{name: "unknown format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: ErrLogFormat},
		{name: "json debug", mutate: func(c *Config) { c.Log.Level = "debug"; c.Log.Format = "json" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
