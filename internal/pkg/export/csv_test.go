package export

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeField(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"plain string", "Alice", "Alice"},
		{"comma gets wrapped", "A, B", `"A, B"`},
		{"quotes doubled without wrapping", `say "hi"`, `say ""hi""`},
		{"quotes and comma", `"A, B"`, `"""A, B"""`},
		{"float", 7.5, "7.5"},
		{"nil string pointer", (*string)(nil), ""},
		{"nil float pointer", (*float64)(nil), ""},
		{"int falls back to Sprintf", 42, "42"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, escapeField(c.value))
		})
	}
}

func TestWriteCSV(t *testing.T) {
	headers := []Header{
		{Key: "name", Label: "Name"},
		{Key: "hours", Label: "Hours"},
	}
	data := []map[string]interface{}{
		{"name": "Lim, Wei Jie", "hours": "8.0"},
		{"name": "Nor Aisyah", "hours": "4.5"},
	}
	meta := &Metadata{
		ReportName:    "Monthly Overtime Report",
		Period:        "March 2026",
		GeneratedDate: "2026-04-01 09:00",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, data, headers, meta))

	want := strings.Join([]string{
		"Monthly Overtime Report",
		"Period: March 2026",
		"Generated: 2026-04-01 09:00",
		"",
		"Name,Hours",
		`"Lim, Wei Jie",8.0`,
		"Nor Aisyah,4.5",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVWithoutMetadata(t *testing.T) {
	headers := []Header{{Key: "name", Label: "Name"}}
	data := []map[string]interface{}{{"name": "Alice"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, data, headers, nil))
	assert.Equal(t, "Name\nAlice", buf.String())
}

func TestWriteCSVMissingKeysRenderEmpty(t *testing.T) {
	headers := []Header{
		{Key: "name", Label: "Name"},
		{Key: "dept", Label: "Department"},
	}
	data := []map[string]interface{}{{"name": "Alice"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, data, headers, nil))
	assert.Equal(t, "Name,Department\nAlice,", buf.String())
}

func TestServeCSVHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	headers := []Header{{Key: "name", Label: "Name"}}

	require.NoError(t, ServeCSV(rec, "overtime_report_2026-03", nil, headers, nil))

	assert.Equal(t, "text/csv;charset=utf-8;", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="overtime_report_2026-03.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Name", rec.Body.String())
}
