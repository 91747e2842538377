package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `help:"Show version"`
	Search  SearchCmd        `cmd:"" help:"Search random deals for maximally long games"`
	Check   CheckCmd         `cmd:"" help:"Replay a single deck and report the outcome"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("warsearch"),
		kong.Description("Brute-force search for war-with-penalties deals that maximize game length"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
