package actions

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/benchkit/benchkit-cli/internal/components"
	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/conn"
	"github.com/benchkit/benchkit-cli/internal/files"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
)

// baseTemplateTuples are the replacements shared by all emitted files
func baseTemplateTuples(cfg *configs.BenchkitConfig) []files.ReplacementTuple {
	branch := cfg.FrameworkBranch
	if branch == "" {
		branch = configs.DEFAULT_FRAMEWORK_BRANCH
	}
	return []files.ReplacementTuple{
		{Find: "%bench_user%", Replace: cfg.BenchUser},
		{Find: "%bench_dir%", Replace: cfg.BenchDir},
		{Find: "%framework_branch%", Replace: branch},
		{Find: "%timezone%", Replace: cfg.Timezone},
		{Find: "%db_root_password%", Replace: cfg.DBRootPassword},
		{Find: "%webserver_port%", Replace: strconv.Itoa(configs.DEFAULT_WEBSERVER_PORT)},
	}
}

func replaceTemplateVars(contents string, cfg *configs.BenchkitConfig, extra []files.ReplacementTuple) string {
	return files.ReplaceTuples(contents, append(baseTemplateTuples(cfg), extra...))
}

// HelperFiles is the helper-files subcommand action. Regenerates the add-site
// helper and the setup summary from the stored config.
func (c *Container) HelperFiles(ctx *cli.Context) error {
	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	hosts := make([]string, 0, len(cfg.Sites))
	for name := range cfg.Sites {
		hosts = append(hosts, name)
	}
	sort.Strings(hosts)

	siteName := configs.DEFAULT_SITE_NAME
	switch {
	case len(hosts) == 1:
		siteName = hosts[0]
	case len(hosts) > 1:
		fmt.Println("Select the site the setup summary should cover")
		picked, err := c.TUI.NewSelection(hosts,
			components.SelectionOptAllowOnlySingleItem(),
			components.SelectionOptRequireSelection(),
		)
		if err != nil {
			return err
		}
		siteName = picked[0]
	}

	return c.emitHelperFiles(cfg, siteName, "")
}

// installAppArgs renders the bench new-site --install-app arguments for the
// add-site helper. Empty when no apps are configured.
func installAppArgs(apps []string) string {
	args := make([]string, 0, len(apps))
	for _, app := range apps {
		args = append(args, "--install-app "+app)
	}
	return strings.Join(args, " ")
}

// emitHelperFiles renders the add-site helper script and the setup summary,
// stores them in the config directory and places copies in the bench user's
// home on the target. adminPassword may be empty when the site password is no
// longer known.
func (c *Container) emitHelperFiles(cfg *configs.BenchkitConfig, siteName, adminPassword string) error {
	styles.PrintCommandTitle("Writing helper and summary files...")

	manifest, err := configs.LoadStackManifest(c.StackManifestPath)
	if err != nil {
		return err
	}

	helperTpl, err := configs.EmbededConfigs.ReadFile("embedded/scripts/add-site.sh")
	if err != nil {
		return fmt.Errorf("reading add-site helper template: %w", err)
	}
	helper := replaceTemplateVars(string(helperTpl), cfg, []files.ReplacementTuple{
		{Find: "%install_apps%", Replace: installAppArgs(manifest.AppNames())},
	})

	// Helper embeds the database root password, keep it owner-only
	helperPath := filepath.Join(c.ConfigDir, configs.DEFAULT_ADD_SITE_HELPER)
	if err := c.FS.WriteSecretFile(helperPath, []byte(helper)); err != nil {
		return fmt.Errorf("writing add-site helper: %w", err)
	}

	if adminPassword == "" {
		adminPassword = "(shown once when the site was created)"
	}
	summaryTpl, err := configs.EmbededConfigs.ReadFile("embedded/summary.txt")
	if err != nil {
		return fmt.Errorf("reading summary template: %w", err)
	}
	summary := replaceTemplateVars(string(summaryTpl), cfg, []files.ReplacementTuple{
		{Find: "%generated_at%", Replace: time.Now().Format(time.RFC1123)},
		{Find: "%db_root_password_file%", Replace: configs.DEFAULT_DB_ROOT_PASSWORD_FILE},
		{Find: "%site_name%", Replace: siteName},
		{Find: "%admin_password%", Replace: adminPassword},
		{Find: "%add_site_helper%", Replace: configs.DEFAULT_ADD_SITE_HELPER},
	})

	// Summary carries credentials, keep it owner-only
	summaryPath := filepath.Join(c.ConfigDir, configs.DEFAULT_SUMMARY_FILE)
	if err := c.FS.WriteSecretFile(summaryPath, []byte(summary)); err != nil {
		return fmt.Errorf("writing setup summary: %w", err)
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	home := fmt.Sprintf("/home/%s", cfg.BenchUser)
	if err := runner.SendFiles(
		conn.SftpCopySrcDest{Src: helperPath, Dst: home + "/add-site.sh"},
	); err != nil {
		return fmt.Errorf("placing add-site helper on target: %w", err)
	}
	if out, err := runner.ExecCommand(
		fmt.Sprintf("chmod 700 %s/add-site.sh && chown %s: %s/add-site.sh", home, cfg.BenchUser, home),
	); err != nil {
		fmt.Println(string(out))
		return fmt.Errorf("marking add-site helper executable: %w", err)
	}

	cfg.MarkStepDone(configs.StepHelperFiles)
	if err := c.ConfigRWriter.Write(cfg); err != nil {
		return err
	}

	fmt.Println(styles.SuccessText.Render("Helper script: " + helperPath))
	fmt.Println(styles.SuccessText.Render("Setup summary: " + summaryPath))

	return nil
}
