package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/manuelguarniz/project-nlp-simplified/internal/analyzer"
	"github.com/manuelguarniz/project-nlp-simplified/internal/resources"
)

func main() {
	var (
		treeFile     = flag.String("tree", os.Getenv("TREE_FILE"), "Decision tree JSON file (or set TREE_FILE env)")
		keywordsFile = flag.String("keywords", os.Getenv("KEYWORDS_FILE"), "Keyword dictionary JSON file (or set KEYWORDS_FILE env)")
		optionsFile  = flag.String("options", os.Getenv("ANALYZER_OPTIONS_FILE"), "Analyzer options JSON file (or set ANALYZER_OPTIONS_FILE env)")
		inputFile    = flag.String("file", "", "File with one text per line; omit to analyze the arguments")
		verbose      = flag.Bool("verbose", false, "Verbose logging")
	)
	flag.Parse()

	// Configure logging
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))

	texts, err := collectTexts(*inputFile, flag.Args())
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if len(texts) == 0 {
		log.Fatal("Nothing to analyze: pass texts as arguments or use --file")
	}

	opts, err := resources.LoadOptions(*optionsFile)
	if err != nil {
		log.Fatalf("Failed to load analyzer options: %v", err)
	}
	decisionTree, err := resources.LoadTree(*treeFile)
	if err != nil {
		log.Fatalf("Failed to load decision tree: %v", err)
	}
	dict, err := resources.LoadDictionary(*keywordsFile)
	if err != nil {
		log.Fatalf("Failed to load keyword dictionary: %v", err)
	}

	svc := analyzer.New(decisionTree, dict, opts, clockwork.NewRealClock())
	results := svc.BatchAnalyze(context.Background(), texts)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		log.Fatalf("Failed to encode results: %v", err)
	}
}

func collectTexts(path string, args []string) ([]string, error) {
	if path == "" {
		return args, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var texts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return texts, nil
}
