package actions

import (
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/benchkit/benchkit-cli/internal/configs"
	"github.com/benchkit/benchkit-cli/internal/styles"
	"github.com/urfave/cli/v2"
	"golang.org/x/net/html"
)

const frameworkBranchesURL = "https://github.com/frappe/frappe/branches/all"

var versionBranchRegexp = regexp.MustCompile(`^version-(\d+)$`)

// CheckUpdate scrapes the framework repository branches page and reports
// whether a newer version branch than the configured one is available.
func (c *Container) CheckUpdate(ctx *cli.Context) error {
	styles.PrintCommandTitle("Checking for framework updates...")

	cfg, err := c.ConfigRWriter.Read()
	if err != nil {
		return err
	}

	current := cfg.FrameworkBranch
	if current == "" {
		current = configs.DEFAULT_FRAMEWORK_BRANCH
	}

	branches, err := c.fetchVersionBranches()
	if err != nil {
		return fmt.Errorf("fetching framework branches: %w", err)
	}
	if len(branches) == 0 {
		return fmt.Errorf("no version branches found on %s", frameworkBranchesURL)
	}

	latest := branches[len(branches)-1]
	fmt.Printf("Configured framework branch: %s\n", current)
	fmt.Printf("Latest version branch: %s\n", latest)

	if branchVersionNumber(latest) > branchVersionNumber(current) {
		fmt.Println(styles.AlertImportant.Render(
			fmt.Sprintf("A newer framework branch %s is available. Provision a fresh bench to upgrade major versions.", latest),
		))
	} else {
		fmt.Println(styles.SuccessText.Render("Framework branch is up to date"))
	}

	return nil
}

// fetchVersionBranches returns all version-N branch names found on the
// branches page, sorted ascending by version number
func (c *Container) fetchVersionBranches() ([]string, error) {
	req, err := http.NewRequest(http.MethodGet, frameworkBranchesURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	htmlTree, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	// Branch names appear both as link hrefs and as text nodes, hrefs are the
	// stable choice
	links := []*html.Node{}
	findHtmlNodes(htmlTree, branchLinkFinder, &links)

	seen := map[string]bool{}
	branches := []string{}
	for _, a := range links {
		for _, attr := range a.Attr {
			if attr.Key != "href" {
				continue
			}
			parts := strings.Split(attr.Val, "/")
			name := parts[len(parts)-1]
			if versionBranchRegexp.MatchString(name) && !seen[name] {
				seen[name] = true
				branches = append(branches, name)
			}
		}
	}

	sort.Slice(branches, func(i, j int) bool {
		return branchVersionNumber(branches[i]) < branchVersionNumber(branches[j])
	})

	return branches, nil
}

// htmlFinderFunc is a function that finds matching node and a bool indicating
// that node was found.
type htmlFinderFunc func(*html.Node) (*html.Node, bool)

// branchLinkFinder finds <a> elements linking to a repository tree path
func branchLinkFinder(n *html.Node) (*html.Node, bool) {
	if n.Type == html.ElementNode && n.Data == "a" {
		for _, attr := range n.Attr {
			if attr.Key == "href" && strings.Contains(attr.Val, "/tree/") {
				return n, true
			}
		}
	}
	return nil, false
}

func findHtmlNodes(parent *html.Node, f htmlFinderFunc, result *[]*html.Node) {
	foundNode, found := f(parent)

	if found {
		*result = append(*result, foundNode)
	}

	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		findHtmlNodes(c, f, result)
	}
}

func branchVersionNumber(branch string) int {
	m := versionBranchRegexp.FindStringSubmatch(branch)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
