package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rgonek/extended-markdown/mdparser"
	"github.com/rgonek/extended-markdown/mdwriter"
)

const (
	presetFull     = "full"
	presetGitHub   = "github"
	presetObsidian = "obsidian"
	presetPlain    = "plain"
)

func presetConfig(preset string) (mdparser.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetFull:
		return mdparser.Config{
			CalloutDetection: mdparser.CalloutDetectAll,
			HTMLTagDetection: mdparser.HTMLTagDetectInline,
		}, nil
	case presetGitHub:
		return mdparser.Config{
			CalloutDetection: mdparser.CalloutDetectMarker,
		}, nil
	case presetObsidian:
		return mdparser.Config{
			CalloutDetection: mdparser.CalloutDetectAll,
		}, nil
	case presetPlain:
		return mdparser.Config{
			CalloutDetection: mdparser.CalloutDetectNone,
			FrontMatter:      mdparser.FrontMatterNone,
		}, nil
	default:
		return mdparser.Config{}, fmt.Errorf("unknown preset %q (allowed: full, github, obsidian, plain)", preset)
	}
}

func resolveConfig(preset string, strictHTML bool) (mdparser.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return mdparser.Config{}, err
	}

	if strictHTML {
		cfg.HTMLTagDetection = mdparser.HTMLTagDetectInline
	}

	return cfg, nil
}

func main() {
	format := flag.String("format", "json", "Output: json|markdown")
	preset := flag.String("preset", presetFull, "Preset: full|github|obsidian|plain")
	strictHTML := flag.Bool("strict-html", false, "Fold <mark>/<ins>/<del> tags into extension nodes")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: exmd [options] <input-file>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile := args[0]

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	cfg, err := resolveConfig(*preset, *strictHTML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid preset: %v\n", err)
		os.Exit(1)
	}

	parser, err := mdparser.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	result := parser.Parse(string(data))
	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", warning.Type, warning.Message)
	}

	switch strings.ToLower(strings.TrimSpace(*format)) {
	case "json":
		pretty, err := json.MarshalIndent(result.Document, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting JSON: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(pretty))
	case "markdown":
		rendered, err := mdwriter.New().WriteDocument(result.Document)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing markdown: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(rendered)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q (allowed: json, markdown)\n", *format)
		os.Exit(1)
	}
}
