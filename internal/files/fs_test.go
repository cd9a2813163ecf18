package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceTuples(t *testing.T) {
	contents := "user=%bench_user% dir=%bench_dir% again=%bench_user%"

	got := ReplaceTuples(contents, []ReplacementTuple{
		{Find: "%bench_user%", Replace: "frappe"},
		{Find: "%bench_dir%", Replace: "frappe-bench"},
	})

	assert.Equal(t, "user=frappe dir=frappe-bench again=frappe", got)
}

func TestReplaceAndCopy(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("password: %db_root_password%\n"), 0644))

	fs := NewFileSystemInteractor()
	require.NoError(t, fs.ReplaceAndCopy(in, out, []ReplacementTuple{
		{Find: "%db_root_password%", Replace: "secret"},
	}))

	contents, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "password: secret\n", string(contents))
}

func TestWriteSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password.txt")

	fs := NewFileSystemInteractor()
	require.NoError(t, fs.WriteSecretFile(path, []byte("secret")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(contents))
}
