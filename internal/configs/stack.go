package configs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// StackManifest lists everything the setup installs: apt packages, system
// services and the framework apps installed on the default site. The default
// manifest is embedded, users may point benchkit at their own copy with
// --stack-manifest.
type StackManifest struct {
	// Apt packages installed during the packages step
	Packages []string `yaml:"packages"`
	// Init services that must be running before bench init
	Services []string `yaml:"services"`
	// Framework branch passed to bench init
	FrameworkBranch string `yaml:"framework_branch"`
	// Apps fetched with bench get-app and installed on the default site
	Apps []StackApp `yaml:"apps"`
}

type StackApp struct {
	Name string `yaml:"name"`
	// Optional git url for bench get-app; bench resolves official apps by
	// name alone
	URL string `yaml:"url,omitempty"`
	// Optional branch override
	Branch string `yaml:"branch,omitempty"`
}

// LoadStackManifest parses the manifest from given path, or the embedded
// default when path is empty.
func LoadStackManifest(path string) (*StackManifest, error) {
	var contents []byte
	var err error
	if path == "" {
		contents, err = EmbededConfigs.ReadFile("embedded/stack.yaml")
	} else {
		contents, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading stack manifest: %w", err)
	}

	m := &StackManifest{}
	if err := yaml.Unmarshal(contents, m); err != nil {
		return nil, fmt.Errorf("parsing stack manifest: %w", err)
	}

	if len(m.Packages) == 0 {
		return nil, fmt.Errorf("stack manifest has an empty packages list")
	}
	if m.FrameworkBranch == "" {
		m.FrameworkBranch = DEFAULT_FRAMEWORK_BRANCH
	}

	return m, nil
}

// AppNames returns the names of all manifest apps
func (m *StackManifest) AppNames() []string {
	names := make([]string, len(m.Apps))
	for i, app := range m.Apps {
		names[i] = app.Name
	}
	return names
}
