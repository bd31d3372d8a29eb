package database

import (
	"testing"
	"time"

	"movie-review/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg := utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		Name:     "reviews",
		User:     "app",
		Password: "p@ss:word/1",
	}

	t.Run("escapes credentials", func(t *testing.T) {
		pc, err := PoolConfig(cfg)
		require.NoError(t, err)

		cc := pc.ConnConfig
		assert.Equal(t, "db.internal", cc.Host)
		assert.Equal(t, uint16(5433), cc.Port)
		assert.Equal(t, "reviews", cc.Database)
		assert.Equal(t, "app", cc.User)
		assert.Equal(t, "p@ss:word/1", cc.Password)
		assert.Equal(t, 5*time.Second, cc.ConnectTimeout)
	})

	t.Run("default max conns", func(t *testing.T) {
		pc, err := PoolConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, int32(defaultMaxConns), pc.MaxConns)
	})

	t.Run("configured max conns", func(t *testing.T) {
		withMax := cfg
		withMax.MaxConns = 25
		pc, err := PoolConfig(withMax)
		require.NoError(t, err)
		assert.Equal(t, int32(25), pc.MaxConns)
		assert.Equal(t, int32(1), pc.MinConns)
	})
}
