package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revenue-check/config"
	"revenue-check/models"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		verdict models.Verdict
		strict  bool
		want    int
	}{
		{"complete", models.VerdictComplete, false, exitOK},
		{"missing order without strict", models.VerdictMissingOrder, false, exitOK},
		{"review without strict", models.VerdictReviewRequired, false, exitOK},
		{"complete strict", models.VerdictComplete, true, exitOK},
		{"missing order strict", models.VerdictMissingOrder, true, exitMissingOrder},
		{"review strict", models.VerdictReviewRequired, true, exitReviewRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.verdict, tt.strict))
		})
	}
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "./export.csv", sourceName(&config.Config{SalesSource: config.SourceFile, SalesFile: "./export.csv"}))
	assert.Equal(t, "postgres table sales_export", sourceName(&config.Config{SalesSource: config.SourcePostgres, SalesTable: "sales_export"}))
}

const exportHeader = "Sales order Number,Issued date,Year-month,Sales person,Product,Total Price\n"

// decemberRows sum to the complete December 2025 reference total.
var decemberRows = []string{
	`9701,12/01/2025,December 2025,BenW,Widget A,"$150,000.00"`,
	`9702,12/02/2025,December 2025,BenW,Widget B,"$125,807.50"`,
	`9703,12/03/2025,December 2025,Zalak,Widget A,"$200,000.00"`,
	`9703,12/03/2025,December 2025,Zalak,Widget C,"$193,355.20"`,
	`9704,12/04/2025,December 2025,DerekW,Widget A,"$318,966.95"`,
	`9705,12/05/2025,December 2025,BrandonG,Widget B,"$267,930.38"`,
	`9706,12/08/2025,December 2025,Jared,Widget A,"$100,000.00"`,
	`9707,12/09/2025,December 2025,Jared,Widget C,"$60,166.70"`,
	`9650,11/20/2025,November 2025,Zalak,Widget A,"$5,000.00"`,
}

const order9715Row = `9715,12/31/2025,December 2025,BenW,Widget A,"$16,072.00"`

func writeExport(t *testing.T, header string, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	content := header + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunExitCodes(t *testing.T) {
	withOrder := append(append([]string{}, decemberRows...), order9715Row)
	badPrice := append(append([]string{}, decemberRows...), `9716,12/31/2025,December 2025,BenW,Widget A,N/A`)
	extraRevenue := append(append([]string{}, withOrder...), `9716,12/31/2025,December 2025,Jared,Widget A,$0.01`)

	tests := []struct {
		name   string
		file   func(t *testing.T) string
		strict string
		want   int
	}{
		{
			name:   "complete file",
			file:   func(t *testing.T) string { return writeExport(t, exportHeader, withOrder...) },
			strict: "true",
			want:   exitOK,
		},
		{
			name:   "missing order strict",
			file:   func(t *testing.T) string { return writeExport(t, exportHeader, decemberRows...) },
			strict: "true",
			want:   exitMissingOrder,
		},
		{
			name:   "missing order lenient",
			file:   func(t *testing.T) string { return writeExport(t, exportHeader, decemberRows...) },
			strict: "false",
			want:   exitOK,
		},
		{
			name:   "unexpected revenue strict",
			file:   func(t *testing.T) string { return writeExport(t, exportHeader, extraRevenue...) },
			strict: "true",
			want:   exitReviewRequired,
		},
		{
			name:   "unparsable price",
			file:   func(t *testing.T) string { return writeExport(t, exportHeader, badPrice...) },
			strict: "false",
			want:   exitFatal,
		},
		{
			name: "missing column",
			file: func(t *testing.T) string {
				return writeExport(t, "Sales order Number,Issued date,Year-month,Sales person,Product\n",
					"9701,12/01/2025,December 2025,BenW,Widget A")
			},
			strict: "false",
			want:   exitFatal,
		},
		{
			name:   "file not found",
			file:   func(t *testing.T) string { return filepath.Join(t.TempDir(), "gone.csv") },
			strict: "false",
			want:   exitFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SALES_SOURCE", config.SourceFile)
			t.Setenv("SALES_FILE", tt.file(t))
			t.Setenv("STRICT_EXIT", tt.strict)
			t.Setenv("NO_COLOR", "1")
			t.Setenv("LOG_LEVEL", "error")
			for _, key := range []string{"PERIOD", "TARGET_ORDER", "REFERENCE_FILE"} {
				t.Setenv(key, "")
			}

			assert.Equal(t, tt.want, run())
		})
	}
}
