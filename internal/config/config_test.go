package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090
public_url = "https://booking.example.org/"

[database]
driver = "postgres"
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking"

[logs]
level = "debug"

[booking]
reject_overlapping_slots = true

[notifications.telegram]
bot_token = "token"
chat_id = 42
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "https://booking.example.org", cfg.Server.PublicURL)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "from-env", cfg.Auth.AdminPassword)
	assert.Equal(t, "Europe/Paris", cfg.Booking.Timezone)
	assert.True(t, cfg.Booking.RejectOverlappingSlots)
	assert.True(t, cfg.Notifications.Telegram.Enabled())
	assert.False(t, cfg.Notifications.SMTP.Enabled())
	assert.Equal(t, "host=localhost port=6543 user=booking password=secret dbname=booking sslmode=disable", cfg.Database.DSN())
}

func TestLoad_InvalidDriver(t *testing.T) {
	_, err := Load(writeConfig(t, "[database]\ndriver = \"mysql\"\n"))
	assert.Error(t, err)
}

func TestLoad_PostgresRequiresHost(t *testing.T) {
	_, err := Load(writeConfig(t, "[database]\ndriver = \"postgres\"\n"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "admin", cfg.Auth.AdminPassword)
	assert.Equal(t, "http://localhost:8080", cfg.Server.PublicURL)
	assert.NoError(t, cfg.Validate())
}
