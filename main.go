package main

import "github.com/benchkit/benchkit-cli/internal/cmd"

func main() {
	cmd.RunBenchkitCli()
}
