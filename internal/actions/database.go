package actions

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/conn"
	"github.com/benchkit/benchkit-cli/internal/files"
	"github.com/benchkit/benchkit-cli/internal/flags"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

// Target path of the emitted mariadb configuration
const MARIADB_BENCH_CNF = "/etc/mysql/conf.d/bench.cnf"

// SecureDBRoot generates the database root password and applies it with the
// mysql client. The password is generated once per target; regenerating
// requires explicit confirmation since bench stores it nowhere else.
func (c *Container) SecureDBRoot(ctx *cli.Context) error {
	styles.PrintCommandTitle("Securing database root account...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if cfg.ExternalDBDSN != "" {
		fmt.Println(styles.ItalicText.Render("External database configured, skipping local root setup..."))
		cfg.MarkStepDone(configs.StepDBRoot)
		return c.ConfigRWriter.Write(cfg)
	}

	if cfg.StepDone(configs.StepDBRoot) {
		regenerate := false
		if ctx.Bool(flags.Force) {
			regenerate, err = c.TUI.NewPrompt(
				"Database root password was already generated. Regenerating invalidates the stored one. Continue?",
				false,
			)
			if err != nil {
				return err
			}
		}
		if !regenerate {
			fmt.Println(styles.ItalicText.Render("Database root already secured, skipping..."))
			return nil
		}
		if err := c.TUI.NewConfirmation(
			"The current root password stops working the moment the new one is applied.\nExisting sites keep their own database credentials and are not affected.",
		); err != nil {
			return err
		}
	}

	password, err := generatePassword(20)
	if err != nil {
		return fmt.Errorf("generating database root password: %w", err)
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	// Fresh mariadb installs authenticate root over the unix socket, so this
	// must run as root without a password
	sql := fmt.Sprintf(
		`ALTER USER 'root'@'localhost' IDENTIFIED BY '%s'; FLUSH PRIVILEGES;`,
		password,
	)
	if out, err := runner.ExecCommand("mysql --user=root -e " + shellQuote(sql)); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("setting database root password: %w", err)
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generating hashed password: %w", err)
	}

	cfg.DBRootPassword = password
	cfg.DBRootPasswordHash = string(h)
	cfg.MarkStepDone(configs.StepDBRoot)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	passwordFile := filepath.Join(c.ConfigDir, configs.DEFAULT_DB_ROOT_PASSWORD_FILE)
	if err := c.FS.WriteSecretFile(passwordFile, []byte(password)); err != nil {
		return fmt.Errorf("storing password in %s file: %w", passwordFile, err)
	}
	fmt.Println(
		styles.SuccessText.Render("Database root password was stored in " + passwordFile),
	)

	return nil
}

// WriteDBConfig emits the bench compatible mariadb configuration (utf8mb4)
// and restarts the database. Guard: config file already present on target.
func (c *Container) WriteDBConfig(ctx *cli.Context) error {
	styles.PrintCommandTitle("Writing mariadb configuration...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if cfg.ExternalDBDSN != "" {
		fmt.Println(styles.ItalicText.Render("External database configured, skipping mariadb config..."))
		cfg.MarkStepDone(configs.StepDBConfig)
		return c.ConfigRWriter.Write(cfg)
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	if fileExists(runner, MARIADB_BENCH_CNF) {
		fmt.Println(styles.ItalicText.Render("mariadb config already present, skipping..."))
		cfg.MarkStepDone(configs.StepDBConfig)
		return c.ConfigRWriter.Write(cfg)
	}

	localCnf := "./bench.cnf"
	if err := c.EmbedCopier.Copy(
		configs.EmbededConfigs,
		files.EmbedCopierOp{Src: "embedded/mariadb/bench.cnf", Dst: localCnf, Overwrite: true},
	); err != nil {
		return fmt.Errorf("copying mariadb config to local file system: %w", err)
	}

	if err := runner.SendFiles(
		conn.SftpCopySrcDest{Src: localCnf, Dst: MARIADB_BENCH_CNF},
	); err != nil {
		return fmt.Errorf("placing mariadb config on target: %w", err)
	}

	if out, err := runner.ExecCommand("service mariadb restart"); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("restarting mariadb: %w", err)
	}
	// Give mariadb a moment before the next step connects
	c.TUI.NewTimer(time.Second*5, "Waiting for mariadb to accept connections")

	cfg.MarkStepDone(configs.StepDBConfig)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("mariadb configured for bench"))

	return nil
}

// BackupDb dumps tenant site databases with mysqldump and retrieves the dumps
// into a timestamped local directory
func (c *Container) BackupDb(ctx *cli.Context) error {
	styles.PrintCommandTitle("Backing up tenant databases...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	if len(cfg.Sites) == 0 {
		return fmt.Errorf("no tenant sites recorded in config, nothing to back up")
	}
	if cfg.DBRootPassword == "" {
		return fmt.Errorf("database root password is not set in config")
	}

	selection := make([]string, 0, len(cfg.Sites))
	for host := range cfg.Sites {
		selection = append(selection, host)
	}

	fmt.Println("Select sites to back up")
	selectedSites, err := c.TUI.NewSelection(selection)
	if err != nil {
		return err
	}
	if len(selectedSites) == 0 {
		fmt.Println(styles.ItalicText.Render("No sites selected, nothing to do"))
		return nil
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	stamp := time.Now().Format("2006-01-02-15-04-05")
	localDir := filepath.Join(".", "backups", stamp)
	remoteDir := "/tmp/benchkit-backups/" + stamp
	if out, err := runner.ExecCommand("mkdir -p " + remoteDir); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("creating backup directory on target: %w", err)
	}

	fetches := make([]conn.SftpCopySrcDest, 0, len(selectedSites))
	for _, host := range selectedSites {
		site := cfg.Sites[host]
		dumpFile := remoteDir + "/" + site.DBName + ".sql"

		fmt.Println(styles.ItalicText.Render("Dumping " + site.DBName + " (" + host + ")..."))
		dump := fmt.Sprintf(
			"mysqldump --user=root --password=%s --single-transaction %s > %s",
			shellQuote(cfg.DBRootPassword),
			site.DBName,
			dumpFile,
		)
		if out, err := runner.ExecCommand(dump); err != nil {
			fmt.Println(string(out))
			return fmt.Errorf("dumping database %s: %w", site.DBName, err)
		}

		fetches = append(fetches, conn.SftpCopySrcDest{
			Src: dumpFile,
			Dst: filepath.Join(localDir, site.DBName+".sql"),
		})
	}

	if err := runner.FetchFiles(fetches...); err != nil {
		return fmt.Errorf("retrieving database dumps: %w", err)
	}

	fmt.Println(styles.SuccessText.Render(
		fmt.Sprintf("%d database dump(s) stored in %s", len(fetches), localDir),
	))

	return nil
}
