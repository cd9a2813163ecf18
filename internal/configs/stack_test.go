package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStackManifestEmbedded(t *testing.T) {
	m, err := LoadStackManifest("")
	require.NoError(t, err)

	assert.NotEmpty(t, m.Packages)
	assert.Contains(t, m.Packages, "mariadb-server")
	assert.Contains(t, m.Packages, "redis-server")
	assert.Contains(t, m.Services, "mariadb")
	assert.Equal(t, DEFAULT_FRAMEWORK_BRANCH, m.FrameworkBranch)
	assert.Contains(t, m.AppNames(), "erpnext")
}

func TestLoadStackManifestFromFile(t *testing.T) {
	manifest := `packages:
  - mariadb-server
  - redis-server
services:
  - mariadb
apps:
  - name: erpnext
  - name: hrms
    branch: version-15
`
	path := filepath.Join(t.TempDir(), "stack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	m, err := LoadStackManifest(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"mariadb-server", "redis-server"}, m.Packages)
	assert.Equal(t, []string{"mariadb"}, m.Services)
	// Unset branch falls back to the default
	assert.Equal(t, DEFAULT_FRAMEWORK_BRANCH, m.FrameworkBranch)
	assert.Equal(t, []string{"erpnext", "hrms"}, m.AppNames())
	assert.Equal(t, "version-15", m.Apps[1].Branch)
}

func TestLoadStackManifestErrors(t *testing.T) {
	_, err := LoadStackManifest("/nonexistent/stack.yaml")
	assert.ErrorContains(t, err, "reading stack manifest")

	path := filepath.Join(t.TempDir(), "stack.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services:\n  - mariadb\n"), 0644))
	_, err = LoadStackManifest(path)
	assert.ErrorContains(t, err, "empty packages list")

	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))
	_, err = LoadStackManifest(path)
	assert.ErrorContains(t, err, "parsing stack manifest")
}
