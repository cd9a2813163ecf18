package files

import (
	"bytes"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -package mocks -destination ../mocks/files.go . FSInteractor

type ReplacementTuple struct {
	Find    string
	Replace string
}

// FSInteractor provides abstraction for interacting with file system
type FSInteractor interface {
	// WriteFile creates fileName if it does not exist and writes contents to
	// it
	WriteFile(fileName string, contents []byte) error

	// WriteSecretFile is WriteFile with owner-only permissions. Used for
	// generated credentials files.
	WriteSecretFile(fileName string, contents []byte) error

	// ReplaceAndCopy reads inFile, applies all replacements and writes the
	// result to outFile
	ReplaceAndCopy(inFile, outFile string, replacements []ReplacementTuple) error
}

func NewFileSystemInteractor() FSInteractor {
	return &fsInteractor{}
}

var _ (FSInteractor) = (*fsInteractor)(nil)

type fsInteractor struct {
}

func (f *fsInteractor) WriteFile(fileName string, contents []byte) error {
	return writeFileWithMode(fileName, contents, 0666)
}

func (f *fsInteractor) WriteSecretFile(fileName string, contents []byte) error {
	return writeFileWithMode(fileName, contents, 0600)
}

func writeFileWithMode(fileName string, contents []byte, mode os.FileMode) error {
	fd, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer fd.Close()
	_, err = io.Copy(fd, bytes.NewReader(contents))
	return err
}

func (f *fsInteractor) ReplaceAndCopy(inFile, outFile string, replacements []ReplacementTuple) error {
	contents, err := os.ReadFile(inFile)
	if err != nil {
		return err
	}

	out := ReplaceTuples(string(contents), replacements)

	return f.WriteFile(outFile, []byte(out))
}

// ReplaceTuples applies all replacements to contents in the given order
func ReplaceTuples(contents string, replacements []ReplacementTuple) string {
	for _, r := range replacements {
		contents = strings.ReplaceAll(contents, r.Find, r.Replace)
	}
	return contents
}
