package actions

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
)

// External tools the stack setup shells out to. The bench cli itself is
// installable via pip; everything else comes from the packages step.
var requiredTools = []string{"bench", "mysql", "node", "npm"}

// Init performs initialization of configuration files and installation of the
// bench cli when it is missing.
func (c *Container) Init(ctx *cli.Context) error {
	fmt.Println("Searching for required dependencies on this system...")

	missing := []string{}
	for _, tool := range requiredTools {
		if err := c.findInPath(tool); err != nil {
			missing = append(missing, tool)
			fmt.Println(styles.ErrorText.Render(tool + " was not found!"))
		} else {
			fmt.Println(styles.SuccessText.Render(tool + " found!"))
		}
	}

	// Everything except bench is installed by the setup packages step, so
	// only bench is offered for installation here.
	for _, tool := range missing {
		if tool != "bench" {
			continue
		}
		ok, err := c.TUI.NewPrompt("The bench cli was not found. Install it with pip now?", true)
		if err != nil {
			return err
		}
		if ok {
			if err := c.installBenchCli(); err != nil {
				return fmt.Errorf("installing bench cli: %w\n please refer to the official installation guide: https://docs.frappe.io/framework/user/en/installation", err)
			}
		}
	}

	return c.MakeConfigDir()
}

// findInPath searches for executables in PATH
func (c *Container) findInPath(executable ...string) error {
	for _, exe := range executable {
		_, err := exec.LookPath(exe)
		if err != nil {
			return err
		}
	}
	return nil
}

// installBenchCli attempts to install the bench cli with pip
func (c *Container) installBenchCli() error {
	fmt.Println(styles.ItalicText.Render("Installing bench cli..."))

	cmd := exec.Command("pip3", "install", "--break-system-packages", "frappe-bench")
	if _, err := exec.LookPath("pip3"); err != nil {
		cmd = exec.Command("pip", "install", "frappe-bench")
	}
	connectCMDToCurrentTerm(cmd)
	return cmd.Run()
}

// MakeConfigDir creates the config directory (expanding ~ prefix) and points
// c.ConfigDir at the expanded path
func (c *Container) MakeConfigDir() error {
	if strings.HasPrefix(c.ConfigDir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("determining user home directory: %w", err)
		}
		c.ConfigDir = filepath.Join(home, strings.TrimPrefix(c.ConfigDir, "~"))
	}

	if err := os.MkdirAll(c.ConfigDir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", c.ConfigDir, err)
	}

	if c.ConfigRWriter == nil {
		c.ConfigRWriter = configs.NewFileBasedBenchkitConfigRW(
			filepath.Join(c.ConfigDir, configs.DEFAULT_BENCHKIT_CONFIG_NAME),
		)
	}

	return nil
}
