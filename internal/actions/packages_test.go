package actions

import (
	"testing"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/mocks"
	"github.com/benchkit/benchkit-cli/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnsureBenchUser(t *testing.T) {
	t.Run("user exists", func(t *testing.T) {
		ctl := gomock.NewController(t)
		cfgRW := mocks.NewMockBenchkitConfigReadWriter(ctl)
		runner := mocks.NewMockCmdRunner(ctl)
		tui := mocks.NewMockComponentsRunner(ctl)

		cfg := configs.NewBenchkitConfig()
		cfg.BenchUser = "frappe"
		cfg.BenchDir = "frappe-bench"

		// Input collection reads config twice, EnsureBenchUser once more
		cfgRW.EXPECT().Read().Return(cfg, nil).Times(2)
		tui.EXPECT().
			NewInput(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("frappe", nil)
		runner.EXPECT().ExecCommand("id -u frappe").Return([]byte("1001\n"), nil)
		cfgRW.EXPECT().Write(cfg).Return(nil).Times(2)

		c := &Container{
			ConfigRWriter: cfgRW,
			runner:        runner,
			Input:         &InputCollector{ConfigRWriter: cfgRW, TUI: tui},
		}
		require.NoError(t, c.EnsureBenchUser(emptyCliCtx()))
		assert.True(t, cfg.StepDone(configs.StepBenchUser))
	})

	t.Run("creates user", func(t *testing.T) {
		ctl := gomock.NewController(t)
		cfgRW := mocks.NewMockBenchkitConfigReadWriter(ctl)
		runner := mocks.NewMockCmdRunner(ctl)
		tui := mocks.NewMockComponentsRunner(ctl)

		cfg := configs.NewBenchkitConfig()
		cfg.BenchUser = "frappe"
		cfg.BenchDir = "frappe-bench"

		cfgRW.EXPECT().Read().Return(cfg, nil).Times(2)
		tui.EXPECT().
			NewInput(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("frappe", nil)
		runner.EXPECT().ExecCommand("id -u frappe").Return(nil, assert.AnError)
		runner.EXPECT().
			ExecCommand(testutils.MatchStringContainsAll{Contains: []string{
				"useradd -m -s /bin/bash frappe",
				"usermod -aG sudo frappe",
				"/etc/sudoers.d/frappe",
			}}).
			Return([]byte{}, nil)
		cfgRW.EXPECT().Write(cfg).Return(nil).Times(2)

		c := &Container{
			ConfigRWriter: cfgRW,
			runner:        runner,
			Input:         &InputCollector{ConfigRWriter: cfgRW, TUI: tui},
		}
		require.NoError(t, c.EnsureBenchUser(emptyCliCtx()))
		assert.True(t, cfg.StepDone(configs.StepBenchUser))
	})
}
