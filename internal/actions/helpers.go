package actions

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/benchkit/benchkit-cli/internal/configs"
)

func generatePassword(n int) (string, error) {
	set := "_1234567890-ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	l := len(set)
	pwd := ""

	for i := 0; i < n; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(l)))
		if err != nil {
			return "", err
		}
		pwd += string(set[n.Int64()])
	}

	return pwd, nil

}

var siteNameRegexp = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)*$`)

// ValidSiteName reports whether name is a valid dns host name usable as a
// tenant site name. Site names reach bench and the database schema name, so
// they are validated before any command is built from them.
func ValidSiteName(name string) bool {
	if len(name) == 0 || len(name) > 253 {
		return false
	}
	return siteNameRegexp.MatchString(name)
}

// shellQuote single-quotes s for safe interpolation into a bash command line
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// asBenchUser wraps cmd so it executes as the bench user from their home
// directory
func asBenchUser(cfg *configs.BenchkitConfig, cmd string) string {
	return fmt.Sprintf("su - %s -c %s", cfg.BenchUser, shellQuote(cmd))
}

// benchCommand builds a bench subcommand executed as the bench user inside
// the bench directory
func benchCommand(cfg *configs.BenchkitConfig, benchArgs string) string {
	cd := fmt.Sprintf("cd /home/%s/%s && bench %s", cfg.BenchUser, cfg.BenchDir, benchArgs)
	return asBenchUser(cfg, cd)
}

// userExists checks for the system user via id(1) exit code
func userExists(runner CmdRunner, userName string) bool {
	_, err := runner.ExecCommand("id -u " + userName)
	return err == nil
}

// dirExists checks for a directory on the target
func dirExists(runner CmdRunner, path string) bool {
	_, err := runner.ExecCommand(fmt.Sprintf("test -d %s", shellQuote(path)))
	return err == nil
}

// fileExists checks for a regular file on the target
func fileExists(runner CmdRunner, path string) bool {
	_, err := runner.ExecCommand(fmt.Sprintf("test -f %s", shellQuote(path)))
	return err == nil
}

// fileContains checks whether target file contains the marker string.
// Used for .bashrc autostart idempotency guard.
func fileContains(runner CmdRunner, path, marker string) bool {
	_, err := runner.ExecCommand(
		fmt.Sprintf("grep -qF %s %s", shellQuote(marker), shellQuote(path)),
	)
	return err == nil
}

// TrimHttpsPrefix removes http:// or https:// prefix from the url
func TrimHttpsPrefix(url string) string {
	return strings.TrimSpace(strings.TrimPrefix(
		strings.TrimPrefix(url, "http://"),
		"https://",
	))
}
