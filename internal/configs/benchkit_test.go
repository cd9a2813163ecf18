package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchkitConfigReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DEFAULT_BENCHKIT_CONFIG_NAME)
	rw := NewFileBasedBenchkitConfigRW(path)

	// Missing file yields an empty, usable config
	cfg, err := rw.Read()
	require.NoError(t, err)
	assert.True(t, cfg.IsEmpty())
	assert.NotNil(t, cfg.CompletedSteps)
	assert.NotNil(t, cfg.Sites)

	cfg.BenchUser = "frappe"
	cfg.BenchDir = "frappe-bench"
	cfg.DBRootPassword = "pwd"
	cfg.MarkStepDone(StepPackages)
	cfg.MarkStepDone(StepBenchUser)
	cfg.Sites["site1.local"] = TenantSite{
		Host:      "site1.local",
		DBName:    "_site1_local",
		Apps:      []string{"erpnext"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, rw.Write(cfg))

	// Config carries credentials, must not be world readable
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := rw.Read()
	require.NoError(t, err)
	assert.False(t, got.IsEmpty())
	assert.Equal(t, "frappe", got.BenchUser)
	assert.True(t, got.StepDone(StepPackages))
	assert.True(t, got.StepDone(StepBenchUser))
	assert.False(t, got.StepDone(StepBenchInit))
	assert.Equal(t, StepBenchUser, got.LastCompletedStep)
	assert.Equal(t, "_site1_local", got.Sites["site1.local"].DBName)
}

func TestBenchkitConfigWriteTo(t *testing.T) {
	dir := t.TempDir()
	rw := NewFileBasedBenchkitConfigRW(filepath.Join(dir, DEFAULT_BENCHKIT_CONFIG_NAME))

	cfg := NewBenchkitConfig()
	cfg.BenchUser = "frappe"

	backup := filepath.Join(dir, "backup.json")
	require.NoError(t, rw.WriteTo(backup, cfg))

	contents, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"bench_user": "frappe"`)
}

func TestMarkStepDone(t *testing.T) {
	cfg := &BenchkitConfig{}

	assert.False(t, cfg.StepDone(StepMultitenant))
	cfg.MarkStepDone(StepMultitenant)
	assert.True(t, cfg.StepDone(StepMultitenant))
	assert.Equal(t, StepMultitenant, cfg.LastCompletedStep)
}

func TestIsRemote(t *testing.T) {
	cfg := NewBenchkitConfig()
	assert.False(t, cfg.IsRemote())
	cfg.RemoteHost = "203.0.113.10"
	assert.True(t, cfg.IsRemote())
}
