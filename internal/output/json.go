package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sofic/sofic/internal/lint"
	"github.com/sofic/sofic/internal/types"
	"github.com/sofic/sofic/internal/version"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	out    io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(out io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		out:    out,
		indent: indent,
	}
}

// Format formats the summary as JSON
func (f *JSONFormatter) Format(summary *lint.Summary) error {
	report := JSONReport{
		Header: JSONHeader{
			Tool:      version.Tool,
			Version:   version.Version,
			Timestamp: time.Now().Format(time.RFC3339),
			Root:      summary.Root,
		},
		Summary: JSONSummary{
			TotalDirectories:  len(summary.Results),
			FailedDirectories: summary.FailedDirectories,
			TotalFindings:     summary.TotalFindings,
			BaselineIgnored:   summary.BaselineIgnored,
		},
		Results: make([]JSONResult, len(summary.Results)),
	}
	if !summary.StartTime.IsZero() {
		report.Summary.Duration = time.Since(summary.StartTime).Round(time.Millisecond).String()
	}

	for i, result := range summary.Results {
		jsonResult := JSONResult{
			Directory: result.Dir,
			Success:   !result.HasIssues(),
			Findings:  result.Findings,
		}
		if jsonResult.Findings == nil {
			jsonResult.Findings = []types.Finding{}
		}
		if result.Info != nil {
			jsonResult.GitRepo = result.Info.IsGitRepo
			jsonResult.JSPackage = result.Info.IsJSPackage
			jsonResult.Host = string(result.Info.Host)
		}
		if result.Err != nil {
			jsonResult.Error = result.Err.Error()
		}
		report.Results[i] = jsonResult
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if _, err := fmt.Fprintln(f.out, string(jsonBytes)); err != nil {
		return fmt.Errorf("error writing JSON: %w", err)
	}
	return nil
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Header  JSONHeader   `json:"header"`
	Summary JSONSummary  `json:"summary"`
	Results []JSONResult `json:"results"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Root      string `json:"root"`
}

// JSONSummary contains summary statistics
type JSONSummary struct {
	TotalDirectories  int    `json:"total_directories"`
	FailedDirectories int    `json:"failed_directories"`
	TotalFindings     int    `json:"total_findings"`
	BaselineIgnored   int    `json:"baseline_ignored,omitempty"`
	Duration          string `json:"duration,omitempty"`
}

// JSONResult represents a single directory's result
type JSONResult struct {
	Directory string          `json:"directory"`
	Success   bool            `json:"success"`
	GitRepo   bool            `json:"git_repo"`
	JSPackage bool            `json:"js_package"`
	Host      string          `json:"host,omitempty"`
	Findings  []types.Finding `json:"findings"`
	Error     string          `json:"error,omitempty"`
}
