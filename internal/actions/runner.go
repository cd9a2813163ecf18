package actions

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/conn"
)

//go:generate mockgen -package mocks -destination ../mocks/runner.go . CmdRunner,HTTPGetter

// CmdRunner executes shell commands and transfers files on the current
// provisioning target. Local (in-container) targets run through bash, remote
// ones through an ssh connection. All provisioning steps go through this seam
// so they are testable and target-agnostic.
type CmdRunner interface {
	// ExecCommand runs cmd through a shell and returns combined output
	ExecCommand(cmd string) ([]byte, error)
	// ExecCommandPiped runs cmd with std{in,out,err} attached to the current
	// terminal
	ExecCommandPiped(cmd string) error
	// SendFiles places local files at target destinations
	SendFiles(srcDst ...conn.SftpCopySrcDest) error
	// FetchFiles retrieves target files to local destinations
	FetchFiles(srcDst ...conn.SftpCopySrcDest) error
}

// HTTPGetter is the http client seam for health checks
type HTTPGetter interface {
	Do(req *http.Request) (*http.Response, error)
}

// TargetRunner returns the CmdRunner for the target recorded in cfg,
// establishing an ssh connection for remote targets on first use.
func (c *Container) TargetRunner(cfg *configs.BenchkitConfig) (CmdRunner, error) {
	if c.runner != nil {
		return c.runner, nil
	}

	if !cfg.IsRemote() {
		c.runner = &localRunner{}
		return c.runner, nil
	}

	sshConn, err := c.CreateSSHConn(cfg.RemoteHost, cfg.RemoteUser, c.SshKeyPath)
	if err != nil {
		return nil, fmt.Errorf("establishing ssh connection to %s: %w", cfg.RemoteHost, err)
	}
	c.runner = &sshRunner{conn: sshConn}
	return c.runner, nil
}

var _ (CmdRunner) = (*localRunner)(nil)

// localRunner executes commands on the current machine
type localRunner struct{}

func (l *localRunner) ExecCommand(cmd string) ([]byte, error) {
	return exec.Command("bash", "-c", cmd).CombinedOutput()
}

func (l *localRunner) ExecCommandPiped(cmd string) error {
	c := exec.Command("bash", "-c", cmd)
	connectCMDToCurrentTerm(c)
	return c.Run()
}

func (l *localRunner) SendFiles(srcDst ...conn.SftpCopySrcDest) error {
	return copyLocalFiles(srcDst)
}

func (l *localRunner) FetchFiles(srcDst ...conn.SftpCopySrcDest) error {
	return copyLocalFiles(srcDst)
}

func copyLocalFiles(srcDst []conn.SftpCopySrcDest) error {
	for _, cp := range srcDst {
		in, err := os.Open(cp.Src)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(cp.Dst), 0755); err != nil {
			in.Close()
			return err
		}
		out, err := os.OpenFile(cp.Dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			in.Close()
			return err
		}
		_, err = io.Copy(out, in)
		in.Close()
		out.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

var _ (CmdRunner) = (*sshRunner)(nil)

// sshRunner executes commands on a remote target over ssh
type sshRunner struct {
	conn conn.SSHConnection
}

func (s *sshRunner) ExecCommand(cmd string) ([]byte, error) {
	return s.conn.ExecCommand(cmd)
}

func (s *sshRunner) ExecCommandPiped(cmd string) error {
	return s.conn.ExecCommandPiped(cmd)
}

func (s *sshRunner) SendFiles(srcDst ...conn.SftpCopySrcDest) error {
	return s.conn.CopyFilesOverSftp(srcDst...)
}

func (s *sshRunner) FetchFiles(srcDst ...conn.SftpCopySrcDest) error {
	return s.conn.FetchFilesOverSftp(srcDst...)
}
