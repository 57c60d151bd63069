package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "NilePlate", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 600, cfg.Planner.Trials)
	assert.InDelta(t, 50, cfg.Planner.DefaultDailyBudget, 0.001)
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("NILEPLATE_SERVER_PORT", "9090")
	t.Setenv("NILEPLATE_PLANNER_TRIALS", "250")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 250, cfg.Planner.Trials)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Planner.Trials = -1
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.Database = "nileplate.db"
	assert.Equal(t, "nileplate.db", cfg.GetDSN())

	cfg.Database.Driver = "postgres"
	cfg.Database.Host = "db"
	cfg.Database.Port = 5432
	cfg.Database.Username = "nileplate"
	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "disable"
	assert.Equal(t,
		"host=db port=5432 user=nileplate password=secret dbname=nileplate.db sslmode=disable",
		cfg.GetDSN())
}
