package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Input.Dir)
	assert.Equal(t, DefaultSnapshotFile, cfg.Report.SnapshotFile)
	assert.Equal(t, DefaultLoaderFile, cfg.Report.LoaderFile)
	assert.Equal(t, DefaultSummaryCSV, cfg.Report.SummaryCSV)
	assert.Equal(t, DefaultTopN, cfg.Report.TopN)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)

	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "empty input dir",
			mutate:  func(c *Config) { c.Input.Dir = "" },
			wantErr: true,
		},
		{
			name:    "zero top N",
			mutate:  func(c *Config) { c.Report.TopN = 0 },
			wantErr: true,
		},
		{
			name:    "negative top N",
			mutate:  func(c *Config) { c.Report.TopN = -3 },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "unknown log output",
			mutate:  func(c *Config) { c.Logging.Output = "syslog" },
			wantErr: true,
		},
		{
			name:    "warning level accepted",
			mutate:  func(c *Config) { c.Logging.Level = "warning" },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				var pe *apperrors.ProcessingError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, apperrors.CodeConfigInvalid, pe.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := []byte("input:\n  dir: from-file\nreport:\n  top_n: 5\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), yaml, 0644))

	t.Setenv("UIDAI_INPUT_DIR", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Input.Dir, "env must beat the config file")
	assert.Equal(t, 5, cfg.Report.TopN, "file must beat the defaults")
	assert.Equal(t, DefaultSnapshotFile, cfg.Report.SnapshotFile, "unset fields keep defaults")
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("UIDAI_REPORT_TOP_N", "not-a-number")

	_, err := Load()
	require.Error(t, err)

	var pe *apperrors.ProcessingError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, apperrors.CodeConfigInvalid, pe.Code)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
