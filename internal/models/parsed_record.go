package models

// ParsedRecord is one DNS query log line broken into its fields.
// The JSON form is the record object submitted to the collector.
//
// Example JSON:
//
//	{
//	  "date": "14-Feb-2024",
//	  "time": "10:15:32.123",
//	  "hex_client": "@0xdeadbeef",
//	  "client_ip": "10.0.0.5",
//	  "name": "example.com",
//	  "type": "A",
//	  "query": "example.com+",
//	  "timestamp": "2024-02-14T10:15:32.123Z",
//	  "hit": true
//	}
type ParsedRecord struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	HexClient string `json:"hex_client"`
	ClientIP  string `json:"client_ip"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"`
	Hit       bool   `json:"hit"`
}
