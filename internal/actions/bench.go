package actions

import (
	"fmt"
	"strings"
	"time"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/flags"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
	"github.com/xo/dburl"
	"golang.org/x/crypto/bcrypt"
)

// BenchInit initializes the bench directory as the bench user. Guard: bench
// directory already exists on the target.
func (c *Container) BenchInit(ctx *cli.Context) error {
	styles.PrintCommandTitle("Initializing bench...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	benchPath := fmt.Sprintf("/home/%s/%s", cfg.BenchUser, cfg.BenchDir)
	if dirExists(runner, benchPath) {
		fmt.Println(styles.ItalicText.Render(
			fmt.Sprintf("Bench directory %s already exists, skipping...", benchPath),
		))
		cfg.MarkStepDone(configs.StepBenchInit)
		return c.ConfigRWriter.Write(cfg)
	}

	branch := cfg.FrameworkBranch
	if branch == "" {
		branch = configs.DEFAULT_FRAMEWORK_BRANCH
	}

	initCmd := fmt.Sprintf("bench init --frappe-branch %s %s", branch, cfg.BenchDir)
	done := make(chan struct{})
	var initOut []byte
	var initErr error
	go func() {
		initOut, initErr = runner.ExecCommand(asBenchUser(cfg, initCmd))
		close(done)
	}()
	// bench init fetches the framework and builds assets, expect minutes
	if err := c.TUI.NewSpinner(done,
		fmt.Sprintf("Running bench init (branch %s)...", branch),
	); err != nil {
		return err
	}
	if initErr != nil {
		fmt.Println(string(initOut))
		return fmt.Errorf("bench init failed: %w", initErr)
	}

	cfg.MarkStepDone(configs.StepBenchInit)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("Bench initialized at " + benchPath))

	return nil
}

// NewSite creates a tenant site. Used both as the new-site subcommand action
// and by setup for the default site.
func (c *Container) NewSite(ctx *cli.Context) error {
	styles.PrintCommandTitle("Creating tenant site...")

	siteName := ctx.Args().First()
	if siteName == "" {
		var err error
		siteName, err = c.Input.CollectDefaultSiteName(ctx)
		if err != nil {
			return err
		}
	}

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	apps := ctx.StringSlice(flags.SiteApps)
	if len(apps) == 0 {
		manifest, err := configs.LoadStackManifest(c.StackManifestPath)
		if err != nil {
			return err
		}
		apps = manifest.AppNames()
	}

	password, err := c.createTenantSite(cfg, siteName, apps, ctx.String(flags.AdminPassword))
	if err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("Site " + siteName + " created!"))
	fmt.Printf("Administrator password: %s\n", password)
	fmt.Println(styles.AlertImportant.Render("Store this password now - it is not displayed again."))

	return nil
}

// createTenantSite runs bench new-site and records the tenant in config. Site
// must not exist yet. The admin password is generated unless adminPassword is
// given.
func (c *Container) createTenantSite(cfg *configs.BenchkitConfig, siteName string, apps []string, adminPassword string) (string, error) {
	if !ValidSiteName(siteName) {
		return "", fmt.Errorf("invalid site name %q: must be a valid host name", siteName)
	}

	if _, ok := cfg.Sites[siteName]; ok {
		return "", fmt.Errorf("site %s is already recorded in config", siteName)
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return "", err
	}

	sitePath := fmt.Sprintf("/home/%s/%s/sites/%s", cfg.BenchUser, cfg.BenchDir, siteName)
	if dirExists(runner, sitePath) {
		return "", fmt.Errorf("site directory %s already exists on target", sitePath)
	}

	if cfg.DBRootPassword == "" && cfg.ExternalDBDSN == "" {
		return "", fmt.Errorf("database root password is not set, run setup (or db-root) first")
	}

	if adminPassword == "" {
		// A fresh password for every tenant
		adminPassword, err = generatePassword(24)
		if err != nil {
			return "", fmt.Errorf("generating administrator password: %w", err)
		}
	}

	args := []string{
		"new-site", siteName,
		"--admin-password", shellQuote(adminPassword),
	}
	if cfg.ExternalDBDSN != "" {
		dbArgs, err := externalDBArgs(cfg.ExternalDBDSN)
		if err != nil {
			return "", err
		}
		args = append(args, dbArgs...)
	} else {
		args = append(args, "--mariadb-root-password", shellQuote(cfg.DBRootPassword))
	}
	for _, app := range apps {
		args = append(args, "--install-app", app)
	}

	fmt.Println(styles.ItalicText.Render("Running bench new-site " + siteName + "..."))
	if err := runner.ExecCommandPiped(benchCommand(cfg, strings.Join(args, " "))); err != nil {
		return "", fmt.Errorf("bench new-site failed: %w", err)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("generating hashed password: %w", err)
	}

	cfg.Sites[siteName] = configs.TenantSite{
		Host:              siteName,
		DBName:            siteDBName(siteName),
		AdminPasswordHash: string(h),
		Apps:              apps,
		CreatedAt:         time.Now(),
	}
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return "", err
	}

	return adminPassword, nil
}

// externalDBArgs derives the bench new-site database arguments from the
// configured external database dsn
func externalDBArgs(dsn string) ([]string, error) {
	u, err := dburl.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing external database dsn: %w", err)
	}
	if u.User == nil {
		return nil, fmt.Errorf("external database dsn has no credentials")
	}
	password, _ := u.User.Password()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	return []string{
		"--db-host", u.Hostname(),
		"--db-port", port,
		"--mariadb-root-username", u.User.Username(),
		"--mariadb-root-password", shellQuote(password),
	}, nil
}

// siteDBName derives the database schema name bench assigns to a site
func siteDBName(siteName string) string {
	name := strings.NewReplacer(".", "_", "-", "_").Replace(siteName)
	return "_" + name
}

// Multitenant switches the bench into dns multitenant mode: requests are
// routed to tenant sites by HTTP Host header. Routing itself is fully
// delegated to bench.
func (c *Container) Multitenant(ctx *cli.Context) error {
	styles.PrintCommandTitle("Enabling dns multitenant mode...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	// bench get-config prints the current value; skip when already on
	out, err := runner.ExecCommand(benchCommand(cfg, "get-config -g dns_multitenant"))
	if err == nil && strings.TrimSpace(string(out)) == "on" {
		fmt.Println(styles.ItalicText.Render("dns multitenant mode already on, skipping..."))
		cfg.MarkStepDone(configs.StepMultitenant)
		return c.ConfigRWriter.Write(cfg)
	}

	if out, err := runner.ExecCommand(benchCommand(cfg, "set-config -g dns_multitenant on")); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("enabling dns multitenant mode: %w", err)
	}

	cfg.MarkStepDone(configs.StepMultitenant)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("dns multitenant mode enabled"))

	return nil
}

// Marker lines guarding the .bashrc autostart snippet
const (
	autostartMarkerBegin = "# benchkit autostart"
	autostartMarkerEnd   = "# benchkit autostart end"
)

// Autostart installs the autostart snippet into the bench user's .bashrc and
// a @reboot cron entry so the stack comes up with the container. Guard:
// marker comment already present in .bashrc.
func (c *Container) Autostart(ctx *cli.Context) error {
	styles.PrintCommandTitle("Configuring stack autostart...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	bashrc := fmt.Sprintf("/home/%s/.bashrc", cfg.BenchUser)
	if fileContains(runner, bashrc, autostartMarkerBegin) {
		fmt.Println(styles.ItalicText.Render("Autostart already configured, skipping..."))
		cfg.MarkStepDone(configs.StepAutostart)
		return c.ConfigRWriter.Write(cfg)
	}

	snippet, err := c.renderAutostartSnippet(cfg)
	if err != nil {
		return err
	}

	appendCmd := fmt.Sprintf("cat >> %s <<'BENCHKIT_EOF'\n%s\nBENCHKIT_EOF", bashrc, snippet)
	if out, err := runner.ExecCommand(appendCmd); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("appending autostart snippet to %s: %w", bashrc, err)
	}

	// @reboot cron entry for container runtimes which don't spawn a login
	// shell. crontab replaces the whole table, so the current one is kept.
	cronLine := fmt.Sprintf("@reboot su - %s -c 'cd %s && bench start'", cfg.BenchUser, cfg.BenchDir)
	cronCmd := fmt.Sprintf("(crontab -l 2>/dev/null | grep -vF 'bench start'; echo %s) | crontab -", shellQuote(cronLine))
	if out, err := runner.ExecCommand(cronCmd); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("installing @reboot cron entry: %w", err)
	}

	cfg.MarkStepDone(configs.StepAutostart)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("Autostart configured"))

	return nil
}

// renderAutostartSnippet renders the embedded autostart template for cfg
func (c *Container) renderAutostartSnippet(cfg *configs.BenchkitConfig) (string, error) {
	tpl, err := configs.EmbededConfigs.ReadFile("embedded/scripts/autostart.sh")
	if err != nil {
		return "", fmt.Errorf("reading autostart template: %w", err)
	}

	return replaceTemplateVars(string(tpl), cfg, nil), nil
}
