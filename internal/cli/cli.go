// Package cli is the chantrack command entry point.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chantrack/internal/track"
	"chantrack/internal/tui"
	"chantrack/internal/utils"
)

const version = "0.3.0"

func Run() int {
	if len(os.Args) < 2 {
		return runTUI(nil)
	}
	cmd := os.Args[1]
	if strings.HasPrefix(cmd, "-") {
		return runTUI(os.Args[1:])
	}
	switch cmd {
	case "tui":
		return runTUI(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "version":
		fmt.Println("chantrack " + version)
		return 0
	default:
		usage()
		return 1
	}
}

func usage() {
	fmt.Println("chantrack <command> [options]")
	fmt.Println("Commands: tui, check, version")
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to chantrack.yaml")
	dataDir := fs.String("data", defaultDataDir(), "data directory for settings and transcripts")
	seed := fs.Int64("seed", 0, "demo feed seed (0 for random)")
	verbose := fs.Bool("verbose", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger := utils.NewLogger(level)

	cfg, err := track.LoadConfig(*configPath)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	if err := tui.Run(cfg, *dataDir, *seed, logger); err != nil {
		logger.Errorf("tui: %v", err)
		return 1
	}
	return 0
}

func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to chantrack.yaml")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *configPath == "" && fs.NArg() > 0 {
		*configPath = fs.Arg(0)
	}
	if *configPath == "" {
		fmt.Println("usage: chantrack check <config.yaml>")
		return 1
	}
	cfg, err := track.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid: %v\n", err)
		return 1
	}
	ranked := len(cfg.Tags.Attention) + len(cfg.Tags.Priority)
	fmt.Printf("ok: %d ranked tags, policy %s, shorten %s\n", ranked, cfg.Policy, cfg.Shorten.Mode)
	return 0
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "chantrack")
}
