// Copyright 2026 The KeyHint Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the keybinding search TUI, CLI and IPC server.

KeyHint reads an i3 config, collects the bindings annotated with tagged
comments of the form

	## group // description // keys ##

and lets you fuzzy-search them. It can run as an interactive terminal
picker, as a line-based CLI for testing, or as a MessagePack IPC server for
integration with launchers and editor plugins.

# Usage

Run the picker against the live i3 instance:

	keyhint

Read the config from a file or a raw dotfiles URL instead:

	keyhint -path ~/.config/i3/config
	keyhint -url https://example.org/dotfiles/i3/config

Run the IPC server or the debug CLI:

	keyhint -serve
	keyhint -c -limit 10

# Configuration

Runtime configuration is managed through a TOML file that is created with
defaults on first run under ~/.config/keyhint/config.toml:

	[ui]
	max_results = 32
	highlight_color = "75"

	[server]
	max_limit = 64
	max_query_len = 120

	[source]
	path = ""
	url = ""

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. A filter request
carries the query, the held modifier flags and an optional limit:

	{"id": "req1", "q": "workspace", "mods": {"c": true}, "l": 24}

The response echoes the id and carries the ranked entries with their
highlight spans and microsecond timing. `action: "reload"` re-fetches the
config text from the configured source without restarting.

# Modifier gating

Bindings are filtered by the modifiers held in the request (or toggled in
the picker): a held modifier only keeps entries whose keys text contains
its marker — shift, ctrl, $alt or $mod.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davidwl/keyhint/internal/cli"
	"github.com/davidwl/keyhint/internal/loader"
	"github.com/davidwl/keyhint/internal/tui"
	"github.com/davidwl/keyhint/pkg/config"
	"github.com/davidwl/keyhint/pkg/keyconfig"
	"github.com/davidwl/keyhint/pkg/server"
	"github.com/davidwl/keyhint/pkg/suggest"
)

const (
	Version = "0.3.0"
	AppName = "keyhint"
	gh      = "https://github.com/davidwl/keyhint"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the picker, server or CLI input.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server on stdin/stdout")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	sourcePath := flag.String("path", "", "Read the i3 config from this file")
	sourceURL := flag.String("url", "", "Fetch the i3 config from this URL")
	limit := flag.Int("limit", defaultConfig.UI.MaxResults, "Maximum number of results to show")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	// Flags override the [source] section.
	if *sourcePath != "" {
		appConfig.Source.Path = *sourcePath
	}
	if *sourceURL != "" {
		appConfig.Source.URL = *sourceURL
	}
	if *limit > 0 {
		appConfig.UI.MaxResults = *limit
	}

	source := loader.Pick(appConfig.Source)
	text, err := source()
	if err != nil {
		log.Fatalf("Failed to obtain config text: %v", err)
	}

	meta, err := keyconfig.Parse(text)
	if err != nil {
		log.Fatalf("Failed to parse config text: %v", err)
	}
	log.Debugf("Parsed %d annotated bindings", meta.Len())
	if meta.Len() == 0 {
		log.Warn("No annotated bindings found; add '## group // description // keys ##' comments to your config")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(meta, appConfig.UI.MaxResults, appConfig.Server.MaxQueryLen)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *serveMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(meta, appConfig, server.LoadFunc(source))
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	vocab := suggest.NewVocabulary(meta)
	program := tea.NewProgram(tui.NewModel(meta, vocab, appConfig))
	finalModel, err := program.Run()
	if err != nil {
		log.Fatalf("TUI error: %v", err)
	}
	if m, ok := finalModel.(tui.Model); ok && m.Chosen != "" {
		fmt.Println(m.Chosen)
	}
}

// printVersion displays some basic info in the styled charm output.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ KeyHint ] Fuzzy search for your window manager bindings")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
