package actions

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"
)

const MaxRequestWaitTime = time.Second * 60

// HealthCheck reports the state of stack services and probes each tenant site
// over http with its Host header, the way dns multitenant routing resolves
// tenants.
func (c *Container) HealthCheck(ctx *cli.Context) error {
	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	runner, err := c.TargetRunner(cfg)
	if err != nil {
		return err
	}

	manifest, err := configs.LoadStackManifest(c.StackManifestPath)
	if err != nil {
		return err
	}

	styles.PrintCommandTitle("Service states")
	for _, svc := range manifest.Services {
		if _, err := runner.ExecCommand(fmt.Sprintf("service %s status", svc)); err != nil {
			fmt.Println(styles.ErrorText.Render(svc + " is not running"))
		} else {
			fmt.Println(styles.SuccessText.Render(svc + " is running"))
		}
	}

	if len(cfg.Sites) == 0 {
		fmt.Println(styles.ItalicText.Render("No tenant sites created yet"))
		return nil
	}

	baseAddr := "127.0.0.1"
	if cfg.IsRemote() {
		baseAddr = cfg.RemoteHost
	}
	baseURL := fmt.Sprintf("http://%s:%d", baseAddr, configs.DEFAULT_WEBSERVER_PORT)

	sitesForModel := []*siteProbeStatus{}
	for name := range cfg.Sites {
		sps := &siteProbeStatus{
			site: name,
			url:  baseURL,
		}
		sitesForModel = append(sitesForModel, sps)

		ch := make(chan healthCheckMsg)

		// Start off with a 2 second request deadline, doubled on each retry
		go c.siteCheckWithBackoff(ch, baseURL, name, time.Second*2)

		// Listen for updates from health checker
		go func(ch chan healthCheckMsg, s *siteProbeStatus) {
			for info := range ch {
				if info.done {
					s.responseStatus = info.responseStatus
					s.done = true
					s.success = info.success
					return
				}
				s.currentCtxDeadline = info.nextTimeout
				s.currentRetry++
			}
		}(ch, sps)
	}

	if _, err := tea.NewProgram(initHealthCheckModel(sitesForModel)).Run(); err != nil {
		return err
	}

	return nil
}

type healthCheckMsg struct {
	done           bool
	success        bool
	nextTimeout    time.Time
	responseStatus int
}

// siteCheckWithBackoff probes baseURL with the tenant's Host header, retrying
// with a doubled deadline until MaxRequestWaitTime is exceeded
func (c *Container) siteCheckWithBackoff(ch chan healthCheckMsg, baseURL, siteHost string, timeout time.Duration) error {
	if timeout > MaxRequestWaitTime {
		ch <- healthCheckMsg{
			done:    true,
			success: false,
		}
		return nil
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	nextTimeout, _ := reqCtx.Deadline()
	ch <- healthCheckMsg{nextTimeout: nextTimeout}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, baseURL, nil)
	if err != nil {
		return err
	}
	req.Host = siteHost

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return c.siteCheckWithBackoff(ch, baseURL, siteHost, timeout*2)
	}
	resp.Body.Close()

	ch <- healthCheckMsg{done: true, success: true, responseStatus: resp.StatusCode}

	return nil
}

const (
	notok = "❌"
	ok    = "✅"
)

type siteProbeStatus struct {
	site               string
	url                string
	currentRetry       uint
	currentCtxDeadline time.Time
	done               bool
	success            bool
	responseStatus     int
}

var _ (tea.Model) = (*healthCheckModel)(nil)

type healthCheckModel struct {
	sites   []*siteProbeStatus
	spinner spinner.Model
}

func initHealthCheckModel(sites []*siteProbeStatus) healthCheckModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.BenchTeal)
	return healthCheckModel{
		spinner: s,
		sites:   sites,
	}
}

func (h healthCheckModel) Init() tea.Cmd {
	return h.spinner.Tick
}

func (m healthCheckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		default:
			return m, nil
		}
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		// Check if all site probes are done
		if m.allDone() {
			return m, tea.Quit
		}

		return m, cmd
	}
}

func (m healthCheckModel) allDone() bool {
	numDone := 0
	for _, site := range m.sites {
		if site.done {
			numDone++
		}
	}
	return numDone == len(m.sites)
}

func (h healthCheckModel) View() string {
	b := strings.Builder{}

	for _, site := range h.sites {
		spinner := ""
		sendingRequestTime := ""
		retry := ""
		responseStatus := ""
		reachable := ""
		if site.done {
			if site.success {
				spinner = ok
				reachable = "site was reached"
			} else {
				spinner = notok
				reachable = "site unreachable"
			}

			responseStatus = "HTTP Status (" + strconv.Itoa(site.responseStatus) + ")"
			if site.responseStatus >= 200 && site.responseStatus < 500 {
				responseStatus = styles.SuccessText.Render(responseStatus)
			}
			if site.responseStatus >= 500 {
				responseStatus = styles.ErrorText.Render(responseStatus)
			}

		} else {
			spinner = h.spinner.View()

			if time.Now().Before(site.currentCtxDeadline) {
				// display how many seconds left till request deadline
				sendingRequestTime = "next request timeout in " + strconv.Itoa(int(site.currentCtxDeadline.Unix()-time.Now().Unix())) + "s"
			}

			retry = strconv.Itoa(int(site.currentRetry))
			retry = "(" + retry + ")"
		}

		b.WriteString(
			fmt.Sprintf(
				"%s %s %s %s %s %s %s",
				spinner,
				site.site,
				site.url,
				retry,
				sendingRequestTime,
				reachable,
				responseStatus,
			),
		)

		b.WriteByte('\n')
	}

	title := "Probing tenant sites"
	if h.allDone() {
		title = "Site probes done"
	}

	return title + "\n\n" + b.String()
}
