package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Summary aggregates the results of several suite runs.
type Summary struct {
	ID          string        `json:"id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Suites      []SuiteLine   `json:"suites"`
	TotalSuites int           `json:"total_suites"`
	TotalCases  int           `json:"total_cases"`
	PassedCases int           `json:"passed_cases"`
	FailedCases int           `json:"failed_cases"`
	Duration    time.Duration `json:"duration"`
	PassRate    float64       `json:"pass_rate"`
}

// SuiteLine is the per-suite row of a summary.
type SuiteLine struct {
	Suite    string        `json:"suite"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// BuildSummary creates a summary from suite results.
func BuildSummary(results []*Result) *Summary {
	summary := &Summary{
		ID: fmt.Sprintf(
			"summary_%s",
			time.Now().Format("20060102_150405"),
		),
		GeneratedAt: time.Now(),
		Suites:      make([]SuiteLine, 0, len(results)),
	}

	for _, r := range results {
		summary.Suites = append(summary.Suites, SuiteLine{
			Suite:    r.Suite,
			Passed:   r.Passed,
			Failed:   r.Failed,
			Duration: r.Duration,
		})

		summary.TotalSuites++
		summary.TotalCases += r.Passed + r.Failed
		summary.PassedCases += r.Passed
		summary.FailedCases += r.Failed
		summary.Duration += r.Duration
	}

	if summary.TotalCases > 0 {
		summary.PassRate =
			float64(summary.PassedCases) /
				float64(summary.TotalCases)
	}

	return summary
}

// SaveSummary writes the summary to both JSON and Markdown files
// in the given output directory.
func SaveSummary(summary *Summary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("suite_summary_%s.json", ts),
	)
	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("suite_summary_%s.md", ts),
	)
	mdContent := summaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	return nil
}

// summaryMarkdown renders a summary as Markdown.
func summaryMarkdown(summary *Summary) string {
	var sb strings.Builder

	sb.WriteString("# Check Suite Summary\n\n")
	sb.WriteString(
		fmt.Sprintf("**Summary ID:** %s\n\n", summary.ID),
	)
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Suites\n\n")
	sb.WriteString("| Suite | Passed | Failed | Duration |\n")
	sb.WriteString("|-------|--------|--------|----------|\n")

	for _, s := range summary.Suites {
		sb.WriteString(
			fmt.Sprintf(
				"| %s | %d | %d | %v |\n",
				s.Suite, s.Passed, s.Failed, s.Duration,
			),
		)
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf(
			"| Total Suites | %d |\n", summary.TotalSuites,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Total Cases | %d |\n", summary.TotalCases,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Passed | %d |\n", summary.PassedCases,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Failed | %d |\n", summary.FailedCases,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n", summary.PassRate*100,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Total Duration | %v |\n", summary.Duration,
		),
	)

	return sb.String()
}
