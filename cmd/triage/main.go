// Command triage runs one analysis from the command line against an
// ephemeral session and prints the result in the chosen format.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"triagelock/adapters/llm"
	"triagelock/adapters/memory"
	"triagelock/app"
	"triagelock/domain/schema"
	"triagelock/domain/signal"
	"triagelock/export"
	"triagelock/internal"
	"triagelock/internal/config"
)

func main() {
	var (
		domainFlag = flag.String("domain", "", "triage domain (healthcare, industrial, cybersecurity, financial, energy)")
		fileFlag   = flag.String("file", "", "read input text from file instead of stdin")
		formatFlag = flag.String("format", "json", "output format: json, csv, slack, jira")
		force      = flag.Bool("force", false, "run the model call even when the input looks like a different domain")
	)
	flag.Parse()

	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		fatal("configuration error: %v", err)
	}
	if *domainFlag == "" {
		fatal("missing -domain flag")
	}

	text, err := readInput(*fileFlag)
	if err != nil {
		fatal("read input: %v", err)
	}

	registry := schema.DefaultRegistry()
	matcher := signal.NewMatcher(signal.DefaultKeywordSets(), signal.Thresholds{
		MinBestHits:    cfg.Matcher.MinBestHits,
		DominanceRatio: cfg.Matcher.DominanceRatio,
	})
	gen, err := llm.New(cfg.LLM, logger)
	if err != nil {
		fatal("llm setup: %v", err)
	}

	store := memory.NewStore()
	service := app.NewTriageService(registry, matcher, gen, store, store, logger)

	ctx := context.Background()
	session, err := service.NewSession(ctx, cfg.Session.StartingCredits)
	if err != nil {
		fatal("create session: %v", err)
	}

	domain := schema.Domain(*domainFlag)
	result, err := service.Analyze(ctx, session.ID, domain, text)
	if err != nil {
		fatal("%v", err)
	}

	if result.Advisory != nil {
		fmt.Fprintln(os.Stderr, "warning: "+result.Advisory.Message())
		if !*force {
			os.Exit(2)
		}
		// The heuristic is advisory; -force retries with it disabled
		open := signal.NewMatcher(nil, signal.DefaultThresholds())
		service = app.NewTriageService(registry, open, gen, store, store, logger)
		result, err = service.Analyze(ctx, session.ID, domain, text)
		if err != nil {
			fatal("%v", err)
		}
	}

	if err := printResult(result, *formatFlag, cfg.LLM.Model); err != nil {
		fatal("render output: %v", err)
	}
}

func readInput(path string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		return string(data), err
	}
	data, err := io.ReadAll(os.Stdin)
	return string(data), err
}

func printResult(result *app.Result, format, modelLabel string) error {
	switch strings.ToLower(format) {
	case "json":
		out, err := export.JSON(*result.Record)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "csv":
		out, err := export.CSV(*result.Record)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "slack":
		fmt.Println(export.SlackSummary(*result.Record, modelLabel, result.LatencySeconds))
	case "jira":
		fmt.Println(export.JiraSummary(*result.Record, modelLabel, result.LatencySeconds))
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "triage: "+format+"\n", args...)
	os.Exit(1)
}
