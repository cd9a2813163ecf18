package actions

import (
	"fmt"
	"strings"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/flags"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
)

// InstallPackages installs the stack's apt packages on the target. Step is
// skipped when the packages marker is already set, unless --force is given.
func (c *Container) InstallPackages(ctx *cli.Context) error {
	styles.PrintCommandTitle("Installing stack packages...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if cfg.StepDone(configs.StepPackages) && !ctx.Bool(flags.Force) {
		fmt.Println(styles.ItalicText.Render("Packages already installed, skipping..."))
		return nil
	}

	manifest, err := configs.LoadStackManifest(c.StackManifestPath)
	if err != nil {
		return err
	}
	cfg.FrameworkBranch = manifest.FrameworkBranch

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	fmt.Println(styles.ItalicText.Render(
		fmt.Sprintf("Installing %d packages: %s", len(manifest.Packages), strings.Join(manifest.Packages, " ")),
	))

	cmd := "export DEBIAN_FRONTEND=noninteractive && apt-get update -y && apt-get install -y " + strings.Join(manifest.Packages, " ")
	if err := runner.ExecCommandPiped(cmd); err != nil {
		return fmt.Errorf("installing packages: %w", err)
	}

	cfg.MarkStepDone(configs.StepPackages)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("Stack packages installed"))

	return nil
}

// EnsureBenchUser creates the system user owning the bench directory. Guard:
// id(1) reports an existing user.
func (c *Container) EnsureBenchUser(ctx *cli.Context) error {
	styles.PrintCommandTitle("Creating bench user...")

	if _, err := c.Input.CollectBenchUser(ctx); err != nil {
		return err
	}

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	if userExists(runner, cfg.BenchUser) {
		fmt.Println(styles.ItalicText.Render(
			fmt.Sprintf("User %s already exists, skipping...", cfg.BenchUser),
		))
		cfg.MarkStepDone(configs.StepBenchUser)
		return c.ConfigRWriter.Write(cfg)
	}

	cmds := []string{
		fmt.Sprintf("useradd -m -s /bin/bash %s", cfg.BenchUser),
		fmt.Sprintf("usermod -aG sudo %s", cfg.BenchUser),
		fmt.Sprintf("echo '%s ALL=(ALL) NOPASSWD: /usr/sbin/service' > /etc/sudoers.d/%s", cfg.BenchUser, cfg.BenchUser),
	}
	if out, err := runner.ExecCommand(strings.Join(cmds, " && ")); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("creating user %s: %w", cfg.BenchUser, err)
	}

	cfg.MarkStepDone(configs.StepBenchUser)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("User " + cfg.BenchUser + " created"))

	return nil
}

// StartServices starts the stack's init services on the target. service start
// is a no-op on an already running service, the status probe is only used for
// reporting.
func (c *Container) StartServices(ctx *cli.Context) error {
	styles.PrintCommandTitle("Starting stack services...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	manifest, err := configs.LoadStackManifest(c.StackManifestPath)
	if err != nil {
		return err
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	for _, svc := range manifest.Services {
		if _, err := runner.ExecCommand("service " + svc + " status"); err == nil {
			fmt.Println(styles.ItalicText.Render(svc + " is already running"))
			continue
		}
		if out, err := runner.ExecCommand("service " + svc + " start"); err != nil {
			fmt.Println(string(out))
			return fmt.Errorf("starting service %s: %w", svc, err)
		}
		fmt.Println(styles.SuccessText.Render(svc + " started"))
	}

	cfg.MarkStepDone(configs.StepServices)
	return c.ConfigRWriter.Write(cfg)
}
