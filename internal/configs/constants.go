package configs

// Some default values for various things
const (
	// Default file name for main benchkit config in default config directory
	DEFAULT_BENCHKIT_CONFIG_NAME = "benchkit.conf.json"

	// System user which owns the bench directory and under which all bench
	// commands are executed inside the container.
	DEFAULT_BENCH_USER = "frappe"

	// Directory (relative to bench user's home) initialized by bench init
	DEFAULT_BENCH_DIR = "frappe-bench"

	// Site created at the end of full setup
	DEFAULT_SITE_NAME = "site1.local"

	// File where generated database root password will be stored
	DEFAULT_DB_ROOT_PASSWORD_FILE = "./db_root_password.txt"

	// Summary file with credentials and endpoints emitted after setup
	DEFAULT_SUMMARY_FILE = "./setup-summary.txt"

	// Helper script for creating additional tenant sites inside the container
	DEFAULT_ADD_SITE_HELPER = "./add-site.sh"

	// Framework branch checked out by bench init when manifest does not pin
	// another one
	DEFAULT_FRAMEWORK_BRANCH = "version-15"

	// Port the bench webserver listens on inside the container
	DEFAULT_WEBSERVER_PORT = 8000
)
