package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD",
	"REDIS_POOL_SIZE", "REDIS_MIN_IDLE_CONNS", "REDIS_EXP_SECOND",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"JWT_SECRET_KEY", "JWT_EXP_SECOND",
}

// unsetConfigEnv removes config variables for the duration of the test.
func unsetConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "default", args: []string{"cmd"}, expected: "config.env"},
		{name: "custom", args: []string{"cmd", "-c", "myconfig.env"}, expected: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			os.Args = tt.args
			assert.Equal(t, tt.expected, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	unsetConfigEnv(t)

	cfg, err := parseConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, "recipes", cfg.pgDB)
	assert.Equal(t, 16, cfg.pgMaxOpenConns)
	assert.Equal(t, 8, cfg.pgMaxIdleConns)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, 300, cfg.redisExpSecond)
	assert.Empty(t, cfg.kafkaBrokers)
	assert.Equal(t, "recipes.events", cfg.kafkaTopic)
	assert.Equal(t, 3600, cfg.jwtExpSecond)
}

func TestParseConfig_FromFileAndEnv(t *testing.T) {
	unsetConfigEnv(t)

	path := filepath.Join(t.TempDir(), "config.env")
	content := "APP_PORT=9090\nPOSTGRES_HOST=db\nKAFKA_BROKERS=kafka-1:9092, kafka-2:9092,\nREDIS_EXP_SECOND=60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// the environment wins over the file
	t.Setenv("POSTGRES_HOST", "override")

	cfg, err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, "override", cfg.pgHost)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.kafkaBrokers)
	assert.Equal(t, 60, cfg.redisExpSecond)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	unsetConfigEnv(t)
	t.Setenv("REDIS_PORT", "not-a-number")

	_, err := parseConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_PORT")
}
