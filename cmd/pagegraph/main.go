// Package main provides the pagegraph command line extractor. It turns a
// live URL or a saved HTML file into an action graph (and optionally a
// page-structure report) on stdout, for piping into agents and tooling.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/entrhq/pagegraph/pkg/analyze"
	"github.com/entrhq/pagegraph/pkg/browser"
	"github.com/entrhq/pagegraph/pkg/dom"
	"github.com/entrhq/pagegraph/pkg/dom/htmlsnap"
	"github.com/entrhq/pagegraph/pkg/graph"
	"github.com/entrhq/pagegraph/pkg/logging"
	"github.com/entrhq/pagegraph/pkg/pageinfo"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	URL            string
	File           string
	Headless       bool
	WeightsFile    string
	ViewportWidth  int
	ViewportHeight int
	Timeout        time.Duration
	OutputFile     string
	WithPageInfo   bool
	Pretty         bool
	ShowVersion    bool
}

// output is the combined document written to stdout or the output file.
type output struct {
	Graph    *graph.ActionGraph `json:"graph"`
	PageInfo *pageinfo.PageInfo `json:"pageInfo,omitempty"`
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("pagegraph v%s\n", version)
		return
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() CLIConfig {
	var config CLIConfig

	flag.StringVar(&config.URL, "url", "", "URL to load in a browser and extract")
	flag.StringVar(&config.File, "file", "", "HTML file to extract ('-' for stdin)")
	flag.BoolVar(&config.Headless, "headless", true, "Run the browser headless")
	flag.StringVar(&config.WeightsFile, "weights", "", "YAML file overriding scoring weights")
	flag.IntVar(&config.ViewportWidth, "viewport-width", browser.DefaultViewportWidth, "Viewport width in pixels")
	flag.IntVar(&config.ViewportHeight, "viewport-height", browser.DefaultViewportHeight, "Viewport height in pixels")
	flag.DurationVar(&config.Timeout, "timeout", 30*time.Second, "Navigation timeout")
	flag.StringVar(&config.OutputFile, "output", "", "Write JSON to a file instead of stdout")
	flag.BoolVar(&config.WithPageInfo, "pageinfo", false, "Include the page-structure report")
	flag.BoolVar(&config.Pretty, "pretty", false, "Indent the JSON output")
	flag.BoolVar(&config.ShowVersion, "version", false, "Print the version and exit")
	flag.Parse()

	return config
}

func run(config CLIConfig) error {
	if (config.URL == "") == (config.File == "") {
		return fmt.Errorf("exactly one of -url or -file is required")
	}

	// NewLogger falls back to stderr on its own; the degraded mode is fine
	// for a CLI run.
	logger, _ := logging.NewLogger("cli")
	defer logger.Close()

	weights := analyze.DefaultWeights()
	if config.WeightsFile != "" {
		var err error
		weights, err = analyze.LoadWeights(config.WeightsFile)
		if err != nil {
			return err
		}
	}

	viewport := dom.Viewport{
		Width:  float64(config.ViewportWidth),
		Height: float64(config.ViewportHeight),
	}

	var (
		root    dom.Element
		pageURL string
		err     error
	)
	if config.URL != "" {
		root, pageURL, err = snapshotURL(config, logger)
	} else {
		root, err = snapshotFile(config.File, viewport)
		pageURL = config.File
		if config.File == "-" {
			pageURL = "stdin"
		}
	}
	if err != nil {
		return err
	}

	analyzer := analyze.New(analyze.Options{
		Viewport: viewport,
		Weights:  weights,
		Logger:   logger,
	})

	g, err := analyzer.Extract(root, pageURL)
	if err != nil {
		return err
	}

	doc := output{Graph: g}
	if config.WithPageInfo {
		doc.PageInfo = pageinfo.Analyze(root, pageURL)
	}

	return writeOutput(doc, config)
}

// snapshotURL captures a live page through the browser adapter.
func snapshotURL(config CLIConfig, logger *logging.Logger) (dom.Element, string, error) {
	manager := browser.NewSessionManager()
	if err := manager.Initialize(); err != nil {
		return nil, "", err
	}
	defer manager.Shutdown()

	session, err := manager.StartSession("extract", browser.SessionOptions{
		Headless: config.Headless,
		Viewport: &browser.Viewport{Width: config.ViewportWidth, Height: config.ViewportHeight},
		Timeout:  float64(config.Timeout.Milliseconds()),
	})
	if err != nil {
		return nil, "", err
	}

	logger.Infof("navigating to %s", config.URL)
	if err := session.Navigate(config.URL, browser.NavigateOptions{
		Timeout: float64(config.Timeout.Milliseconds()),
	}); err != nil {
		return nil, "", err
	}

	snap, err := session.Snapshot()
	if err != nil {
		return nil, "", err
	}
	return snap.Root, snap.URL, nil
}

// snapshotFile parses saved HTML with the synthetic layout.
func snapshotFile(path string, viewport dom.Viewport) (dom.Element, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return htmlsnap.Parse(r, htmlsnap.Options{Viewport: viewport})
}

func writeOutput(doc output, config CLIConfig) error {
	var w io.Writer = os.Stdout
	if config.OutputFile != "" {
		f, err := os.Create(config.OutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	if config.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
