package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benchkit/benchkit-cli/internal/conn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRunnerFetchFiles(t *testing.T) {
	t.Run("creates missing destination directory", func(t *testing.T) {
		dir := t.TempDir()

		src := filepath.Join(dir, "dump.sql")
		require.NoError(t, os.WriteFile(src, []byte("-- dump"), 0644))

		// Destination mirrors a fresh timestamped backup directory
		dst := filepath.Join(dir, "backups", "2026-01-01-00-00-00", "dump.sql")
		r := &localRunner{}
		require.NoError(t, r.FetchFiles(conn.SftpCopySrcDest{Src: src, Dst: dst}))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "-- dump", string(got))
	})

	t.Run("overwrites existing destination", func(t *testing.T) {
		dir := t.TempDir()

		src := filepath.Join(dir, "src.txt")
		dst := filepath.Join(dir, "dst.txt")
		require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
		require.NoError(t, os.WriteFile(dst, []byte("old contents"), 0644))

		r := &localRunner{}
		require.NoError(t, r.SendFiles(conn.SftpCopySrcDest{Src: src, Dst: dst}))

		got, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))
	})
}
