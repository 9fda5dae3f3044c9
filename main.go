package main

import (
	"os"

	"github.com/nexuslab/nexus/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	if version != "" {
		cli.SetVersionInfo(version, commit, date)
	}
	os.Exit(cli.Execute())
}
