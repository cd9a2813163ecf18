package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/benchkit/benchkit-cli/internal/actions"
	"github.com/benchkit/benchkit-cli/internal/flags"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/benchkit/benchkit-cli/internal/version"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
)

const BenchkitASCII = ` _                     _     _    _ _
| |__   ___ _ __   ___| |__ | | _(_) |_
| '_ \ / _ \ '_ \ / __| '_ \| |/ / | __|
| |_) |  __/ | | | (__| | | |   <| | |_
|_.__/ \___|_| |_|\___|_| |_|_|\_\_|\__|
`

// CmdName defines the name of cli tool
const CmdName = "benchkit"

const CmdUsage = "Bench web stack provisioning CLI tool"

// RunBenchkitCli is the entrypoint to benchkit cli tool
func RunBenchkitCli() {
	ac := actions.NewDefaultContainer()

	// Initialize cli application and its subcommands and bind default values
	// for ac (via flags.Destination)
	app := &cli.App{
		Name:        CmdName,
		HelpName:    CmdName,
		Usage:       CmdUsage,
		Description: MainDescription,
		Commands: []*cli.Command{
			{
				Name:   "init",
				Action: ac.Init,
				Usage:  "Initialize dependencies and configuration directory",
			},
			{
				Name:        "setup",
				Description: SetupDescription,
				Action:      ac.Setup,
				Usage:       "Provision the complete bench stack",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  flags.SiteApps,
						Usage: "App installed on the default site, can be given multiple times",
					},
					&cli.BoolFlag{
						Name:  flags.Force,
						Usage: "Rerun setup steps even when marked as completed",
					},
				},
			},
			{
				Name:   "install-packages",
				Action: ac.InstallPackages,
				Usage:  "Install os packages of the stack",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flags.Force, Usage: "Reinstall even when step is marked as completed"},
				},
			},
			{
				Name:   "bench-user",
				Action: ac.EnsureBenchUser,
				Usage:  "Create the system user owning the bench",
			},
			{
				Name:   "services",
				Action: ac.StartServices,
				Usage:  "Start stack services which are not running",
			},
			{
				Name:   "db-root",
				Action: ac.SecureDBRoot,
				Usage:  "Generate and set the database root password",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: flags.Force, Usage: "Regenerate an already set root password"},
				},
			},
			{
				Name:   "db-config",
				Action: ac.WriteDBConfig,
				Usage:  "Install the mariadb configuration for bench",
			},
			{
				Name:   "bench-init",
				Action: ac.BenchInit,
				Usage:  "Initialize the bench directory",
			},
			{
				Name:        "new-site",
				Description: NewSiteDescription,
				Action:      ac.NewSite,
				Usage:       "Create an additional tenant site",
				ArgsUsage:   "[site host name]",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  flags.SiteApps,
						Usage: "App installed on the site, can be given multiple times",
					},
					&cli.StringFlag{
						Name:  flags.AdminPassword,
						Usage: "Administrator password for the site instead of a generated one",
					},
				},
			},
			{
				Name:        "multitenant",
				Description: MultitenantDescription,
				Action:      ac.Multitenant,
				Usage:       "Enable dns based multitenancy",
			},
			{
				Name:   "helper-files",
				Action: ac.HelperFiles,
				Usage:  "Regenerate the add-site helper and setup summary",
			},
			{
				Name:   "autostart",
				Action: ac.Autostart,
				Usage:  "Configure the stack to start with the container",
			},
			{
				Name:        "status",
				Description: StatusDescription,
				Action:      ac.HealthCheck,
				Usage:       "Report service states and probe tenant sites",
			},
			{
				Name:        "backup",
				Description: BackupDescription,
				Action:      ac.BackupDb,
				Usage:       "Dump tenant site databases",
			},
			{
				Name:   "shell",
				Action: ac.Shell,
				Usage:  "Attach a shell on the remote target",
			},
			{
				Name:   "check-update",
				Action: ac.CheckUpdate,
				Usage:  "Check for newer framework version branches",
			},
		},
		// Global flags accesible to all subcommands
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: flags.ConfigDir,
				// Set the default path to configuration directory on user's home dir
				Value:       "~/.config/benchkit",
				Destination: &ac.ConfigDir,
			},
			&cli.StringFlag{
				Name:  flags.Remote,
				Usage: "Provision the given remote host over ssh instead of this machine",
			},
			&cli.StringFlag{
				Name:  flags.SSHUser,
				Usage: "Ssh user on the remote host",
				Value: "root",
			},
			&cli.StringFlag{
				Name:        flags.SSHKeyPath,
				Usage:       "Path to the ssh private key used for remote targets",
				Value:       "./id_benchkit",
				Destination: &ac.SshKeyPath,
			},
			&cli.StringFlag{
				Name:  flags.BenchUser,
				Usage: "System user owning the bench",
			},
			&cli.StringFlag{
				Name:  flags.BenchDir,
				Usage: "Name of the bench directory in the bench user's home",
			},
			&cli.StringFlag{
				Name:  flags.Timezone,
				Usage: "Timezone configured on created sites",
			},
			&cli.StringFlag{
				Name:        flags.StackManifest,
				Usage:       "Path to a stack manifest overriding the built-in one",
				Destination: &ac.StackManifestPath,
			},
		},
		Action:  ac.Init,
		Version: version.Get(),
		Before: func(ctx *cli.Context) error {
			fmt.Println(styles.TealBgText.Padding(0, 2, 0, 2).Border(lipgloss.NormalBorder()).Render(BenchkitASCII))

			if err := ac.MakeConfigDir(); err != nil {
				return err
			}
			ac.Input = &actions.InputCollector{
				ConfigRWriter: ac.ConfigRWriter,
				TUI:           ac.TUI,
			}
			if ac.HttpClient == nil {
				ac.HttpClient = http.DefaultClient
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
