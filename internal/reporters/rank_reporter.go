package reporters

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"dns-query-collector/internal/models"

	"github.com/mattn/go-runewidth"
)

const (
	DefaultTopN = 5

	separatorWidth = 60
	keyWidth       = 45
	valueWidth     = 6
)

// Rank returns the topN stats ordered by Total descending. Ties keep their
// aggregation order. The input slice is left untouched.
func Rank(stats []*models.GroupStat, topN int) []*models.GroupStat {
	if topN < 1 {
		topN = DefaultTopN
	}

	ranked := append([]*models.GroupStat(nil), stats...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// Render writes stats as a fixed-width table. Nothing is written for an empty slice.
func Render(w io.Writer, stats []*models.GroupStat) error {
	if len(stats) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("-", separatorWidth))
	sb.WriteByte('\n')
	for _, stat := range stats {
		sb.WriteString(runewidth.FillRight(stat.Key, keyWidth))
		sb.WriteByte(' ')
		sb.WriteString(runewidth.FillRight(strconv.Itoa(stat.Total), valueWidth))
		sb.WriteByte(' ')
		sb.WriteString(runewidth.FillRight(stat.AvgPercent, valueWidth))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Report prints the run summary followed by the client, host and query type tables.
// Rankings in report are expected to be ranked already.
func Report(w io.Writer, report *models.RunReport) error {
	if _, err := fmt.Fprintf(w, "Total records %d\n", report.TotalRecords); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Parse errors %d\n", report.ParseFailures); err != nil {
		return err
	}
	if _, err := io.WriteString(w, chunkSummary(report)); err != nil {
		return err
	}

	tables := []struct {
		title string
		stats []*models.GroupStat
	}{
		{title: "Client IPs Rank", stats: report.ClientRank},
		{title: "Host Rank", stats: report.HostRank},
		{title: "Query Type Rank", stats: report.TypeRank},
	}
	for _, table := range tables {
		if _, err := fmt.Fprintf(w, "\n%s\n", table.title); err != nil {
			return err
		}
		if err := Render(w, table.stats); err != nil {
			return err
		}
	}
	return nil
}

func chunkSummary(report *models.RunReport) string {
	if !report.SinkEnabled {
		return "Chunks not sent (sink disabled)\n"
	}
	failed := report.FailedChunks()
	return fmt.Sprintf("Chunks sent %d, failed %d\n", len(report.Chunks)-failed, failed)
}
