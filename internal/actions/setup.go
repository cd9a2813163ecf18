package actions

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/flags"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
)

// Setup runs the complete provisioning sequence: os packages, bench user,
// services, database hardening, bench init, default tenant site, dns
// multitenant mode, helper files and autostart. Every step records completion
// in config, so a rerun after a failure resumes at the failed step.
func (c *Container) Setup(ctx *cli.Context) error {
	styles.PrintCommandTitle("Running full benchkit setup...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if !cfg.IsEmpty() {
		keep, err := c.TUI.NewPrompt(
			fmt.Sprintf("Found existing configuration in %s\nDo you want to keep it? Choosing no will block until you backup the old config.", c.ConfigRWriter.GetPath()),
			true,
		)
		if err != nil {
			return err
		}
		if !keep {
			backupPath := filepath.Join(
				c.ConfigDir,
				fmt.Sprintf("%s.%s.bak", configs.DEFAULT_BENCHKIT_CONFIG_NAME, time.Now().Format("2006-01-02_15:04:05")),
			)
			if err := c.ConfigRWriter.WriteTo(backupPath, cfg); err != nil {
				return fmt.Errorf("backing up existing config: %w", err)
			}
			fmt.Println(styles.ItalicText.Render("Old config backed up to " + backupPath))

			cfg = configs.NewBenchkitConfig()
			if err := c.ConfigRWriter.Write(cfg); err != nil {
				return err
			}
		}
	}

	if err := c.Input.CollectFullSetupInput(ctx); err != nil {
		return err
	}

	// Admin password of the default site is only known when the site step ran
	// in this invocation. The summary falls back to a hint otherwise.
	var (
		defaultSiteName     string
		defaultSitePassword string
	)

	for _, step := range configs.SetupSteps {
		var err error
		switch step {
		case configs.StepPackages:
			err = c.InstallPackages(ctx)
		case configs.StepBenchUser:
			err = c.EnsureBenchUser(ctx)
		case configs.StepServices:
			err = c.StartServices(ctx)
		case configs.StepDBRoot:
			err = c.SecureDBRoot(ctx)
		case configs.StepDBConfig:
			err = c.WriteDBConfig(ctx)
		case configs.StepBenchInit:
			err = c.BenchInit(ctx)
		case configs.StepDefaultSite:
			defaultSiteName, defaultSitePassword, err = c.setupDefaultSite(ctx)
		case configs.StepMultitenant:
			err = c.Multitenant(ctx)
		case configs.StepHelperFiles:
			err = c.setupHelperFiles(ctx, defaultSiteName, defaultSitePassword)
		case configs.StepAutostart:
			err = c.Autostart(ctx)
		}
		if err != nil {
			return fmt.Errorf("setup step %s: %w", step, err)
		}
	}

	fmt.Println(styles.SuccessText.Render("Setup finished!"))
	fmt.Printf("Site is reachable on port %d. See %s for details.\n",
		configs.DEFAULT_WEBSERVER_PORT,
		filepath.Join(c.ConfigDir, configs.DEFAULT_SUMMARY_FILE),
	)
	if defaultSitePassword != "" {
		fmt.Println(styles.AlertImportant.Render(
			fmt.Sprintf("Administrator password for %s: %s", defaultSiteName, defaultSitePassword),
		))
	}

	return nil
}

// setupDefaultSite creates the default tenant site during full setup. Returns
// the site name and the generated administrator password.
func (c *Container) setupDefaultSite(ctx *cli.Context) (string, string, error) {
	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return "", "", err
	}

	siteName, err := c.Input.CollectDefaultSiteName(ctx)
	if err != nil {
		return "", "", err
	}

	if cfg.StepDone(configs.StepDefaultSite) {
		fmt.Println(styles.ItalicText.Render("Default site already created, skipping..."))
		return siteName, "", nil
	}

	styles.PrintCommandTitle("Creating default tenant site...")

	apps := ctx.StringSlice(flags.SiteApps)
	if len(apps) == 0 {
		manifest, err := configs.LoadStackManifest(c.StackManifestPath)
		if err != nil {
			return "", "", err
		}
		apps = manifest.AppNames()
	}

	password, err := c.createTenantSite(cfg, siteName, apps, "")
	if err != nil {
		return "", "", err
	}

	cfg.MarkStepDone(configs.StepDefaultSite)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return "", "", err
	}

	fmt.Println(styles.SuccessText.Render("Default site " + siteName + " created"))

	return siteName, password, nil
}

func (c *Container) setupHelperFiles(ctx *cli.Context, siteName, adminPassword string) error {
	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if cfg.StepDone(configs.StepHelperFiles) && adminPassword == "" {
		fmt.Println(styles.ItalicText.Render("Helper files already written, skipping..."))
		return nil
	}

	if siteName == "" {
		siteName = configs.DEFAULT_SITE_NAME
	}

	return c.emitHelperFiles(cfg, siteName, adminPassword)
}
