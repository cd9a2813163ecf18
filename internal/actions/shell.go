package actions

import (
	"fmt"
	"os"

	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"
)

// Shell attaches an interactive shell on the remote provisioning target to
// the current terminal. Only available when a remote target is configured.
func (c *Container) Shell(ctx *cli.Context) error {
	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if !cfg.IsRemote() {
		return fmt.Errorf("no remote target configured, shell is only available in remote mode")
	}

	fmt.Println(styles.ItalicText.Render(
		fmt.Sprintf("Establishing ssh connection to %s\n", cfg.RemoteHost),
	))

	cn, err := c.CreateSSHConn(cfg.RemoteHost, cfg.RemoteUser, c.SshKeyPath)
	if err != nil {
		return err
	}
	sshClient := cn.GetClient()

	session, err := sshClient.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	fileDescriptor := int(os.Stdin.Fd())
	originalState, err := term.MakeRaw(fileDescriptor)
	if err != nil {
		return err
	}

	w, h, err := term.GetSize(fileDescriptor)
	if err != nil {
		return err
	}
	defer term.Restore(fileDescriptor, originalState)

	if err := session.RequestPty("xterm", h, w, ssh.TerminalModes{
		ssh.ECHO:          1,     // enable echoing
		ssh.TTY_OP_ISPEED: 14400, // input speed = 14.4kbaud
		ssh.TTY_OP_OSPEED: 14400, // output speed = 14.4kbaud
	}); err != nil {
		return err
	}

	session.Stdin = os.Stdin
	session.Stdout = os.Stdout
	session.Stderr = os.Stderr

	if err := session.Shell(); err != nil {
		return err
	}

	if err := session.Wait(); err != nil {
		return err
	}

	return nil
}
