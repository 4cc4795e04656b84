package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/vitrine/internal/catalog"
	"github.com/tinytelemetry/vitrine/internal/fetch"
	"github.com/tinytelemetry/vitrine/internal/store"
	"github.com/tinytelemetry/vitrine/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var serverAddr string
	var source string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/vitrine/config.yml)")
	flag.StringVar(&serverAddr, "addr", "", "override catalog service address")
	flag.StringVar(&source, "source", "", "catalog source: static or http")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Vitrine - Product Browser\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if serverAddr != "" {
		cfg.ServerAddr = serverAddr
	}
	if source != "" {
		cfg.Source = source
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildFetcher(cfg cliConfig) fetch.Fetcher {
	if cfg.Source == "http" {
		return fetch.NewClient(cfg.ServerAddr, cfg.FetchTimeout)
	}

	f := fetch.NewStatic(catalog.Demo())
	f.Latency = cfg.StaticLatency
	f.FailEvery = cfg.StaticFailRate
	return f
}

func runTUI(cfg cliConfig) error {
	st := store.New(buildFetcher(cfg), store.WithFetchTimeout(cfg.FetchTimeout))
	defer st.Close()

	browser := tui.NewBrowserModel(st)

	p := tea.NewProgram(browser, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
