package configs

import (
	"embed"
)

// Embedded templates and defaults: stack manifest, mariadb config, helper
// script, autostart snippet and the summary template. Copied or rendered to
// the target by the setup actions.
//
//go:embed embedded
var EmbededConfigs embed.FS
