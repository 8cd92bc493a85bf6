// Package export serializes tabular report data into downloadable CSV and
// PDF documents.
package export

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Header defines one CSV column: the row key it reads and the title printed
// in the header row.
type Header struct {
	Key   string
	Label string
}

// Metadata holds optional preamble lines printed before the header row.
type Metadata struct {
	ReportName    string
	Period        string
	GeneratedDate string
}

// escapeField renders one CSV field. Double quotes are always doubled;
// wrapping quotes are added only when the value contains a comma. This
// mirrors the download format the dashboard has always produced, so it is
// kept as the contract rather than switching to encoding/csv quoting.
func escapeField(value interface{}) string {
	if value == nil {
		return ""
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case *float64:
		if v == nil {
			return ""
		}
		s = strconv.FormatFloat(*v, 'f', -1, 64)
	case *string:
		if v == nil {
			return ""
		}
		s = *v
	default:
		s = fmt.Sprintf("%v", v)
	}

	s = strings.ReplaceAll(s, `"`, `""`)
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}

// WriteCSV writes the report as CSV: optional metadata preamble, one blank
// line, the header row, then one line per data row, "\n"-joined.
func WriteCSV(w io.Writer, data []map[string]interface{}, headers []Header, meta *Metadata) error {
	var lines []string

	if meta != nil {
		if meta.ReportName != "" {
			lines = append(lines, escapeField(meta.ReportName))
		}
		if meta.Period != "" {
			lines = append(lines, escapeField("Period: "+meta.Period))
		}
		if meta.GeneratedDate != "" {
			lines = append(lines, escapeField("Generated: "+meta.GeneratedDate))
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
	}

	labels := make([]string, len(headers))
	for i, h := range headers {
		labels[i] = escapeField(h.Label)
	}
	lines = append(lines, strings.Join(labels, ","))

	for _, row := range data {
		fields := make([]string, len(headers))
		for i, h := range headers {
			fields[i] = escapeField(row[h.Key])
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

// ServeCSV writes the report to the response as a file download named
// "{filename}.csv".
func ServeCSV(w http.ResponseWriter, filename string, data []map[string]interface{}, headers []Header, meta *Metadata) error {
	w.Header().Set("Content-Type", "text/csv;charset=utf-8;")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".csv"))
	return WriteCSV(w, data, headers, meta)
}
