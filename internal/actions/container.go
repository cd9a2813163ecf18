package actions

import (
	"os"
	"os/exec"

	"github.com/benchkit/benchkit-cli/internal/components"
	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/conn"
	"github.com/benchkit/benchkit-cli/internal/files"
)

// Container is the cli container which provides all the command and subcommand
// actions
type Container struct {
	// ConfigDir is the configuration directory path, defaults to ~/.config/benchkit
	ConfigDir string

	// Default ssh key pathname used for remote targets. For public key same
	// name is used + .pub
	SshKeyPath string

	// Reader and writer of the persistent benchkit state config
	ConfigRWriter configs.BenchkitConfigReadWriter

	// User input collection state
	Input *InputCollector

	// TUI components
	TUI components.ComponentsRunner

	// Copier of embedded templates to local file system
	EmbedCopier files.EmbedFileCopier

	// Local file system interactions
	FS files.FSInteractor

	// Factory for ssh connections to remote targets. Swappable in tests.
	CreateSSHConn func(serverIp, user, idFilePath string) (conn.SSHConnection, error)

	// HttpClient is used for site health checks
	HttpClient HTTPGetter

	// Runner for the current provisioning target, created lazily by
	// TargetRunner
	runner CmdRunner

	// Stack manifest path override (--stack-manifest)
	StackManifestPath string
}

func NewDefaultContainer() *Container {
	return &Container{
		TUI:           components.InteractiveRunner{},
		EmbedCopier:   files.NewEmbedFileCopier(),
		FS:            files.NewFileSystemInteractor(),
		CreateSSHConn: conn.NewSSHConnection,
	}
}

// connectCMDToCurrentTerm connects std{in,out,err} to current terminal
func connectCMDToCurrentTerm(c *exec.Cmd) {
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
}
