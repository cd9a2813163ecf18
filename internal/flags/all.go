package flags

// List of flag names. Using constants for better management of flag names. See
// cmd/main.go for flag meanings
const (
	ConfigDir     = "config-directory"
	Remote        = "remote"
	SSHKeyPath    = "ssh-key-path"
	SSHUser       = "ssh-user"
	BenchUser     = "bench-user"
	BenchDir      = "bench-directory"
	StackManifest = "stack-manifest"
	SiteApps      = "install-app"
	AdminPassword = "admin-password"
	Timezone      = "timezone"
	Force         = "force"
)
