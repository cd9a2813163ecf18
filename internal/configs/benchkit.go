package configs

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/benchkit/benchkit-cli/internal/styles"
)

//go:generate mockgen -package mocks -destination ../mocks/configs.go . BenchkitConfigReadWriter

// SetupStep identifies a single provisioning step of the full setup sequence.
// Steps are executed in a fixed order and each one is guarded by its
// completion marker in BenchkitConfig.
type SetupStep string

const (
	StepPackages    SetupStep = "packages"
	StepBenchUser   SetupStep = "bench_user"
	StepServices    SetupStep = "services"
	StepDBRoot      SetupStep = "db_root"
	StepDBConfig    SetupStep = "db_config"
	StepBenchInit   SetupStep = "bench_init"
	StepDefaultSite SetupStep = "default_site"
	StepMultitenant SetupStep = "multitenant"
	StepHelperFiles SetupStep = "helper_files"
	StepAutostart   SetupStep = "autostart"
)

// SetupSteps is the canonical execution order of the full setup
var SetupSteps = []SetupStep{
	StepPackages,
	StepBenchUser,
	StepServices,
	StepDBRoot,
	StepDBConfig,
	StepBenchInit,
	StepDefaultSite,
	StepMultitenant,
	StepHelperFiles,
	StepAutostart,
}

type BenchkitConfig struct {
	// Remote target host ip. Empty for local (in-container) provisioning.
	RemoteHost string `json:"remote_host"`
	// User for ssh access to RemoteHost
	RemoteUser string `json:"remote_user"`

	// System user owning the bench directory
	BenchUser string `json:"bench_user"`
	// Bench directory, relative to BenchUser's home
	BenchDir string `json:"bench_dir"`
	// Framework branch passed to bench init
	FrameworkBranch string `json:"framework_branch"`
	// Timezone set on created sites
	Timezone string `json:"timezone"`

	// Generated database root password. Stored so that subsequent site
	// creations can pass it to bench new-site.
	DBRootPassword string `json:"db_root_password"`
	// Bcrypt hash of DBRootPassword, used to verify an externally supplied
	// password matches what setup configured
	DBRootPasswordHash string `json:"db_root_password_hash"`
	// Optional DSN of an external database server (validated mysql:// url).
	// When set, the local mariadb steps are skipped.
	ExternalDBDSN string `json:"external_db_dsn"`

	// Completed setup steps (idempotency markers)
	CompletedSteps map[SetupStep]bool `json:"completed_steps"`
	// Last successfully completed step, recorded so an aborted setup resumes
	// from the right place
	LastCompletedStep SetupStep `json:"last_completed_step"`

	// Tenant sites created on this target, keyed by host name
	Sites map[string]TenantSite `json:"sites"`
}

// TenantSite is a single host-based tenant served by the bench webserver
type TenantSite struct {
	// Host name routed to this tenant (dns multitenant mode)
	Host string `json:"host"`
	// Database schema name derived by bench
	DBName string `json:"db_name"`
	// Bcrypt hash of the generated administrator password. The cleartext is
	// shown once and written to the summary file only.
	AdminPasswordHash string `json:"admin_password_hash"`
	// Apps installed on the site
	Apps []string `json:"apps"`

	CreatedAt time.Time `json:"created_at"`
}

func NewBenchkitConfig() *BenchkitConfig {
	return &BenchkitConfig{
		CompletedSteps: make(map[SetupStep]bool),
		Sites:          make(map[string]TenantSite),
	}
}

// IsEmpty reports whether config carries no setup state yet
func (c *BenchkitConfig) IsEmpty() bool {
	return len(c.CompletedSteps) == 0 && len(c.Sites) == 0 && c.DBRootPassword == ""
}

// StepDone reports whether given setup step already completed on this target
func (c *BenchkitConfig) StepDone(step SetupStep) bool {
	return c.CompletedSteps[step]
}

// MarkStepDone records step completion and advances LastCompletedStep
func (c *BenchkitConfig) MarkStepDone(step SetupStep) {
	if c.CompletedSteps == nil {
		c.CompletedSteps = make(map[SetupStep]bool)
	}
	c.CompletedSteps[step] = true
	c.LastCompletedStep = step
}

// IsRemote reports whether provisioning target is a remote host
func (c *BenchkitConfig) IsRemote() bool {
	return c.RemoteHost != ""
}

// BenchkitConfigReadWriter reads and writes benchkit config to storage system.
// If file does not exist it is created automatically.
type BenchkitConfigReadWriter interface {
	// Read reads the config from underlying storage system. If config is not
	// found, an empty BenchkitConfig is returned
	Read() (*BenchkitConfig, error)
	Write(*BenchkitConfig) error
	// WriteTo writes cfg to the given path instead of the default one
	WriteTo(path string, cfg *BenchkitConfig) error
	GetPath() string
}

func NewFileBasedBenchkitConfigRW(filePath string) BenchkitConfigReadWriter {
	return &benchkitConfigFileReadWriter{filePath: filePath}
}

var _ (BenchkitConfigReadWriter) = (*benchkitConfigFileReadWriter)(nil)

type benchkitConfigFileReadWriter struct {
	filePath string
}

func (d *benchkitConfigFileReadWriter) Read() (*BenchkitConfig, error) {
	cfg := NewBenchkitConfig()
	if contents, err := os.ReadFile(d.filePath); err != nil {
		// Print error message to indicate empty config when not intended
		fmt.Println(
			styles.ErrorText.Render(
				fmt.Sprintf("Config file was not found: %s", d.filePath),
			),
		)
	} else {
		if err := json.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", d.filePath, err)
		}
	}
	// Maps might be nil for configs written by older versions
	if cfg.CompletedSteps == nil {
		cfg.CompletedSteps = make(map[SetupStep]bool)
	}
	if cfg.Sites == nil {
		cfg.Sites = make(map[string]TenantSite)
	}
	return cfg, nil
}

func (d *benchkitConfigFileReadWriter) Write(cfg *BenchkitConfig) error {
	return d.WriteTo(d.filePath, cfg)
}

func (d *benchkitConfigFileReadWriter) WriteTo(path string, cfg *BenchkitConfig) error {
	buf, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0600)
}

func (d *benchkitConfigFileReadWriter) GetPath() string {
	return d.filePath
}
