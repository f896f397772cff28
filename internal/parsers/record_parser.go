package parsers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"dns-query-collector/internal/models"
	"dns-query-collector/internal/shared/metrics"

	"github.com/miekg/dns"
)

const (
	// timestampLayout reads "14-Feb-2024 10:15:32.123".
	timestampLayout = "2-Jan-2006 15:04:05.000"
	// TimestampFormat is the normalized form sent to the collector.
	TimestampFormat = "2006-01-02T15:04:05.000Z"
)

// queryLogPattern matches one BIND "queries" channel line, e.g.
//
//	14-Feb-2024 10:15:32.123 queries: info: client @0x7f3a 10.0.0.5#53 (example.com): query: example.com IN A +E(0)K (10.0.0.1)
//
// The search is unanchored so that syslog prefixes are tolerated.
var queryLogPattern = regexp.MustCompile(
	`(?P<date>\d{1,2}-\w{3}-\d{4})\s+(?P<time>\d{2}:\d{2}:\d{2}\.\d{3})\s+` +
		`queries: info: client\s+(?P<hex_client>@0x[0-9a-fA-F]+)\s+(?P<client_ip>[\d.]+)#\d+\s+` +
		`\((?P<name>.+)\): query:.* IN (?P<type>[A-Z0-9]+)\s+(?P<query>\S+)\s+.+$`)

var (
	groupDate      = queryLogPattern.SubexpIndex("date")
	groupTime      = queryLogPattern.SubexpIndex("time")
	groupHexClient = queryLogPattern.SubexpIndex("hex_client")
	groupClientIP  = queryLogPattern.SubexpIndex("client_ip")
	groupName      = queryLogPattern.SubexpIndex("name")
	groupType      = queryLogPattern.SubexpIndex("type")
	groupQuery     = queryLogPattern.SubexpIndex("query")
)

//go:generate mockgen -source=record_parser.go -destination=./mocks/record_parser_mock.go -package=mocks
type RecordParser interface {
	// Parse converts one log line (trailing newline optional) into a record.
	// It returns a PRS_1000 error when the line does not match the query log
	// format and a PRS_1001 error when its date or time is not a valid instant.
	Parse(line string) (*models.ParsedRecord, error)
}

type recordParser struct{}

func NewRecordParser() RecordParser {
	return &recordParser{}
}

func (p *recordParser) Parse(line string) (*models.ParsedRecord, error) {
	line = strings.TrimSuffix(line, "\n")

	match := queryLogPattern.FindStringSubmatch(line)
	if match == nil {
		metricLineParsedTotal.WithLabelValues(codeFormatError).Inc()
		return nil, errFormat()
	}

	record := &models.ParsedRecord{
		Date:      match[groupDate],
		Time:      match[groupTime],
		HexClient: match[groupHexClient],
		ClientIP:  match[groupClientIP],
		Name:      match[groupName],
		Type:      match[groupType],
		Query:     match[groupQuery],
	}

	timestamp, err := normalizeTimestamp(record.Date, record.Time)
	if err != nil {
		metricLineParsedTotal.WithLabelValues(codeTimestampError).Inc()
		return nil, errTimestamp(record.Date+" "+record.Time, err)
	}
	record.Timestamp = timestamp
	record.Hit = strings.Contains(record.Query, "+")

	if _, known := dns.StringToType[record.Type]; !known {
		metricUnknownTypeTotal.Inc()
	}
	metricLineParsedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	return record, nil
}

// normalizeTimestamp turns "14-Feb-2024" and "10:15:32.123" into "2024-02-14T10:15:32.123Z".
// The log carries no zone; the instant is taken as UTC.
func normalizeTimestamp(date, clock string) (string, error) {
	t, err := time.Parse(timestampLayout, date+" "+clock)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", date+" "+clock, err)
	}
	return t.UTC().Format(TimestampFormat), nil
}
