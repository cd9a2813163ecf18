package files

import (
	"embed"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// EmbedCopierOp describes a single copy operation from an embedded file to a
// destination on the local file system.
type EmbedCopierOp struct {
	// Path in the embedded FS
	Src string
	// Destination on local fs
	Dst string
	// Whether existing Dst should be overwritten. When false and Dst exists,
	// the op is a no-op.
	Overwrite bool
	// Copy the whole embedded directory tree instead of a single file
	Dir bool
}

//go:generate mockgen -package mocks -destination ../mocks/embed.go . EmbedFileCopier

// EmbedFileCopier copies files from an embed.FS to the local file system.
// Nested directories of destination paths are created when missing.
type EmbedFileCopier interface {
	Copy(efs embed.FS, ops ...EmbedCopierOp) error
}

func NewEmbedFileCopier() EmbedFileCopier {
	return &embedFileCopier{}
}

var _ EmbedFileCopier = (*embedFileCopier)(nil)

type embedFileCopier struct{}

func (e *embedFileCopier) Copy(efs embed.FS, ops ...EmbedCopierOp) error {
	for _, op := range ops {
		if op.Dir {
			if err := e.copyDir(efs, op); err != nil {
				return err
			}
			continue
		}
		if err := e.copyFile(efs, op.Src, op.Dst, op.Overwrite); err != nil {
			return err
		}
	}
	return nil
}

func (e *embedFileCopier) copyDir(efs embed.FS, op EmbedCopierOp) error {
	return fs.WalkDir(efs, op.Src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(op.Src, path)
		if err != nil {
			return err
		}
		return e.copyFile(efs, path, filepath.Join(op.Dst, rel), op.Overwrite)
	})
}

func (e *embedFileCopier) copyFile(efs embed.FS, src, dst string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
	}

	// Ensure nested dirs are present
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0766); err != nil {
			return err
		}
	}

	in, err := efs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
