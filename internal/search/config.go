package search

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/mwhitt/warsearch/internal/game"
)

// Settings are the file-configurable search parameters. CLI flags override
// whatever the file provides.
type Settings struct {
	Games         int    `hcl:"games,optional"`
	Workers       int    `hcl:"workers,optional"`
	Seed          int64  `hcl:"seed,optional"`
	MoveLimit     int    `hcl:"move_limit,optional"`
	ProgressEvery int    `hcl:"progress_every,optional"`
	HighScoreFile string `hcl:"high_score_file,optional"`
	StatsFile     string `hcl:"stats_file,optional"`
	LogLevel      string `hcl:"log_level,optional"`
}

// fileConfig is the top-level HCL schema: a single optional search block.
type fileConfig struct {
	Search *Settings `hcl:"search,block"`
}

// DefaultSettings returns the built-in defaults: 100000 games, one worker
// per CPU, the standard move ceiling, and high_score.txt in the working
// directory.
func DefaultSettings() *Settings {
	return &Settings{
		Games:         100000,
		Workers:       0, // pool default: runtime.NumCPU
		MoveLimit:     game.DefaultMoveLimit,
		ProgressEvery: DefaultProgressEvery,
		HighScoreFile: "high_score.txt",
		LogLevel:      "info",
	}
}

// LoadSettings loads search settings from an HCL file. A missing or empty
// path yields the defaults; attributes absent from the file keep their
// default values.
func LoadSettings(filename string) (*Settings, error) {
	settings := DefaultSettings()
	if filename == "" {
		return settings, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return settings, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if config.Search == nil {
		return settings, nil
	}

	loaded := config.Search
	if loaded.Games <= 0 {
		loaded.Games = settings.Games
	}
	if loaded.MoveLimit <= 0 {
		loaded.MoveLimit = settings.MoveLimit
	}
	if loaded.ProgressEvery <= 0 {
		loaded.ProgressEvery = settings.ProgressEvery
	}
	if loaded.HighScoreFile == "" {
		loaded.HighScoreFile = settings.HighScoreFile
	}
	if loaded.LogLevel == "" {
		loaded.LogLevel = settings.LogLevel
	}
	return loaded, nil
}
