package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dns-query-collector/internal/app"
	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/configs"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalLines = 1000
	chunkSize  = 500
)

var (
	clients = []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "10.0.0.4"}
	hosts   = []string{"example.com", "example.org", "api.example.net", "cdn.example.io"}
	types   = []string{"A", "AAAA", "MX", "TXT"}
)

// ### End - fixed configs

// main runs the e2e scenario: 001_two_chunk_submission
//
// It writes a 1000 line query log, runs the collector pipeline against a running local
// collector (go run ./cmd/mockcollector) and checks what the collector stored.
//
// What it tests:
//   - Parsing of every generated line, malformed lines included
//   - Submission of exactly two chunks of 500 records
//   - Collector key check and submission storage
//   - Client and host rankings over the whole file
//
// Expected results:
//   - 1000 lines read, 995 parsed, 5 parse errors
//   - 2 submissions stored under <collector root>/submissions/<collector id>/ (500 and 495 records)
//   - Client 10.0.0.1 ranks first with 189 hits
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080"                    // Base URL of the local collector
	collectorID := "5ab55d08-ae72-4017-a41c-d9d735360288" // Must match sink.collector_id of the collector
	key := "local-dev-key"                                // Must match sink.key of the collector
	collectorRootDir := "data/collector"                  // collector.root_dir, relative to project root
	workDir := ".tmp/e2e/001_two_chunk_submission"        // Where the generated log file is written

	projectRoot, err := findProjectRoot()
	if err != nil {
		fail("%v", err)
	}

	submissionsDir := filepath.Join(projectRoot, collectorRootDir, "submissions", collectorID)
	before := countFiles(submissionsDir)

	logPath := filepath.Join(projectRoot, workDir, "queries.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		fail("create work dir: %v", err)
	}
	if err := os.WriteFile(logPath, []byte(generateLog()), 0o644); err != nil {
		fail("write log file: %v", err)
	}

	fmt.Println("Starting e2e scenario: 001_two_chunk_submission")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_FILE: %s\n", logPath)
	fmt.Printf("SUBMISSIONS_DIR: %s\n", submissionsDir)
	fmt.Println()

	cfg := &configs.Config{
		Log: configs.LogConfig{Level: "warn"},
		Sink: configs.SinkConfig{
			Enabled:     true,
			BaseURL:     baseURL,
			CollectorID: collectorID,
			Key:         key,
			Timeout:     30,
			ChunkSize:   chunkSize,
			Concurrency: 2,
		},
		Report: configs.ReportConfig{TopN: 5},
	}
	application, err := app.New(cfg)
	if err != nil {
		fail("init app: %v", err)
	}

	report, err := application.Run(context.Background(), logPath, os.Stdout)
	if err != nil {
		fail("run: %v", err)
	}
	fmt.Println()

	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(report.TotalRecords == totalLines, "total records = %d, want %d", report.TotalRecords, totalLines)
	check(report.ParseFailures == 5, "parse failures = %d, want 5", report.ParseFailures)
	check(len(report.Chunks) == 2, "chunks = %d, want 2", len(report.Chunks))
	for _, chunk := range report.Chunks {
		check(chunk.Succeeded(), "chunk %d failed: %v", chunk.Index, chunk.Err)
	}
	check(countFiles(submissionsDir)-before == 2, "stored submissions = %d, want 2", countFiles(submissionsDir)-before)
	check(len(report.ClientRank) > 0 && *report.ClientRank[0] == models.GroupStat{Key: "10.0.0.1", Total: 189, AvgPercent: "0.19%"},
		"top client = %+v, want 10.0.0.1 with 189 hits", firstOrNil(report.ClientRank))

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", p)
		}
		os.Exit(1)
	}
	fmt.Println("PASS")
}

// generateLog returns totalLines lines. Every 200th line is malformed and every 4th line is a miss.
func generateLog() string {
	var sb strings.Builder
	for i := 0; i < totalLines; i++ {
		if i%200 == 199 {
			sb.WriteString("14-Feb-2024 10:15:32.123 queries: info: truncated\n")
			continue
		}
		flags := "+E(0)K"
		if i%4 == 3 {
			flags = "-E(0)K"
		}
		client := clients[(i/4)%len(clients)]
		host := hosts[i%len(hosts)]
		fmt.Fprintf(&sb, "14-Feb-2024 10:%02d:%02d.%03d queries: info: client @0x%x %s#%d (%s): query: %s IN %s %s (10.0.0.53)\n",
			15+i/3600, (i/60)%60, i%1000, 0x7f000000+i, client, 40000+i, host, host, types[i%len(types)], flags)
	}
	return sb.String()
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod above the working directory")
		}
		dir = parent
	}
}

func countFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			n++
		}
	}
	return n
}

func firstOrNil(stats []*models.GroupStat) *models.GroupStat {
	if len(stats) == 0 {
		return nil
	}
	return stats[0]
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
