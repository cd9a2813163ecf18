package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedFileCopier(t *testing.T) {
	dir := t.TempDir()
	copier := NewEmbedFileCopier()

	t.Run("single file", func(t *testing.T) {
		dst := filepath.Join(dir, "nested", "bench.cnf")
		require.NoError(t, copier.Copy(configs.EmbededConfigs, EmbedCopierOp{
			Src: "embedded/mariadb/bench.cnf",
			Dst: dst,
		}))

		contents, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Contains(t, string(contents), "utf8mb4")
	})

	t.Run("no overwrite keeps existing file", func(t *testing.T) {
		dst := filepath.Join(dir, "keep.cnf")
		require.NoError(t, os.WriteFile(dst, []byte("keep me"), 0644))

		require.NoError(t, copier.Copy(configs.EmbededConfigs, EmbedCopierOp{
			Src: "embedded/mariadb/bench.cnf",
			Dst: dst,
		}))

		contents, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(contents))
	})

	t.Run("overwrite replaces existing file", func(t *testing.T) {
		dst := filepath.Join(dir, "replace.cnf")
		require.NoError(t, os.WriteFile(dst, []byte("old"), 0644))

		require.NoError(t, copier.Copy(configs.EmbededConfigs, EmbedCopierOp{
			Src:       "embedded/mariadb/bench.cnf",
			Dst:       dst,
			Overwrite: true,
		}))

		contents, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Contains(t, string(contents), "utf8mb4")
	})

	t.Run("directory tree", func(t *testing.T) {
		dstDir := filepath.Join(dir, "scripts")
		require.NoError(t, copier.Copy(configs.EmbededConfigs, EmbedCopierOp{
			Src:       "embedded/scripts",
			Dst:       dstDir,
			Overwrite: true,
			Dir:       true,
		}))

		entries, err := os.ReadDir(dstDir)
		require.NoError(t, err)
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.Contains(t, names, "add-site.sh")
		assert.Contains(t, names, "autostart.sh")
	})
}
