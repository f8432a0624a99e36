package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
api:
  environment: test
  port: "8080"
  base_url: localhost:8080
gin:
  mode: test
postgres:
  host: localhost
  port: "5432"
  user: postgres
  db: club_points
certificates:
  enabled: false
scheduler:
  enabled: false
`

func writeConfig(t *testing.T, scoring string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(baseConfig+scoring), 0o600))
	return path
}

func TestLoad_EventTimeZone(t *testing.T) {
	t.Run("defaults to UTC", func(t *testing.T) {
		conf, err := Load(writeConfig(t, "scoring:\n  update_concurrency: 4\n"))
		require.NoError(t, err)

		loc, err := conf.Scoring.Location()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	})

	t.Run("rejects an unknown zone", func(t *testing.T) {
		_, err := Load(writeConfig(t, "scoring:\n  time_zone: Mars/Olympus\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TimeZone")
	})
}

func TestPostgresConfig_DSN(t *testing.T) {
	conf := PostgresConfig{Host: "db", Port: "5432", User: "u", Password: "p", DB: "club_points", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=club_points sslmode=disable", conf.DSN())

	conf.TimeZone = "Asia/Riyadh"
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=club_points sslmode=disable TimeZone=Asia/Riyadh", conf.DSN())
}
