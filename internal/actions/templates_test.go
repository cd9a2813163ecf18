package actions

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/conn"
	"github.com/benchkit/benchkit-cli/internal/mocks"
	"github.com/benchkit/benchkit-cli/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInstallAppArgs(t *testing.T) {
	assert.Equal(t, "", installAppArgs(nil))
	assert.Equal(t, "--install-app erpnext", installAppArgs([]string{"erpnext"}))
	assert.Equal(t,
		"--install-app erpnext --install-app hrms",
		installAppArgs([]string{"erpnext", "hrms"}),
	)
}

func TestEmitHelperFiles(t *testing.T) {
	ctl := gomock.NewController(t)
	fs := mocks.NewMockFSInteractor(ctl)
	runner := mocks.NewMockCmdRunner(ctl)
	cfgRW := mocks.NewMockBenchkitConfigReadWriter(ctl)

	cfg := configs.NewBenchkitConfig()
	cfg.BenchUser = "frappe"
	cfg.BenchDir = "frappe-bench"
	cfg.DBRootPassword = "root-pwd"
	cfg.Timezone = "UTC"

	helperPath := filepath.Join("cfgdir", configs.DEFAULT_ADD_SITE_HELPER)
	var helper string
	fs.EXPECT().
		WriteSecretFile(helperPath, gomock.Any()).
		DoAndReturn(func(name string, contents []byte) error {
			helper = string(contents)
			return nil
		})
	var summary string
	fs.EXPECT().
		WriteSecretFile(filepath.Join("cfgdir", configs.DEFAULT_SUMMARY_FILE), gomock.Any()).
		DoAndReturn(func(name string, contents []byte) error {
			summary = string(contents)
			return nil
		})
	runner.EXPECT().
		SendFiles(conn.SftpCopySrcDest{Src: helperPath, Dst: "/home/frappe/add-site.sh"}).
		Return(nil)
	runner.EXPECT().
		ExecCommand(testutils.MatchStringContains{Contains: "chmod 700 /home/frappe/add-site.sh"}).
		Return([]byte{}, nil)
	cfgRW.EXPECT().Write(cfg).Return(nil)

	c := &Container{ConfigDir: "cfgdir", FS: fs, runner: runner, ConfigRWriter: cfgRW}
	require.NoError(t, c.emitHelperFiles(cfg, "site1.local", "admin-pwd"))

	// Manifest apps must be passed as --install-app flags, a bare app name
	// would reach bench new-site as a positional argument it rejects
	assert.Contains(t, helper, "--install-app erpnext")
	assert.NotContains(t, helper, "%install_apps%")
	assert.Contains(t, helper, "cd /home/frappe/frappe-bench")
	assert.Contains(t, helper, "--mariadb-root-password 'root-pwd'")
	for _, line := range strings.Split(helper, "\n") {
		assert.NotEqual(t, "erpnext", strings.TrimSpace(line))
	}

	assert.Contains(t, summary, "Site:                   site1.local")
	assert.Contains(t, summary, "Administrator password: admin-pwd")
	assert.True(t, cfg.StepDone(configs.StepHelperFiles))
}
