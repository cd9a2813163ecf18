package conn

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type SftpCopySrcDest struct {
	// Source path
	Src string
	// Destination path
	Dst string
}

// CopyFilesOverSftp copies the list of local srcDst files to remote conn.
func CopyFilesOverSftp(
	conn *ssh.Client,
	srcDst ...SftpCopySrcDest,
) error {
	s, err := sftp.NewClient(conn)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, cp := range srcDst {
		// Ensure dir exists on remote
		dir := path.Dir(cp.Dst)
		if err := s.MkdirAll(dir); err != nil {
			return err
		}

		srcFileContents, err := os.ReadFile(cp.Src)
		if err != nil {
			return err
		}

		dstFd, err := s.Create(cp.Dst)
		if err != nil {
			return err
		}

		_, err = dstFd.Write(srcFileContents)
		if err != nil {
			dstFd.Close()
			return err
		}

		dstFd.Close()
	}

	return nil
}

// FetchFilesOverSftp downloads remote srcDst files from conn to local
// destinations. Used for retrieving database dumps and summary files.
func FetchFilesOverSftp(
	conn *ssh.Client,
	srcDst ...SftpCopySrcDest,
) error {
	s, err := sftp.NewClient(conn)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, cp := range srcDst {
		if err := os.MkdirAll(filepath.Dir(cp.Dst), 0766); err != nil {
			return err
		}

		srcFd, err := s.Open(cp.Src)
		if err != nil {
			return err
		}

		dstFd, err := os.OpenFile(cp.Dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			srcFd.Close()
			return err
		}

		_, err = srcFd.WriteTo(dstFd)
		srcFd.Close()
		dstFd.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
