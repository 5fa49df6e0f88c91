package lint

import (
	"path/filepath"

	"github.com/sofic/sofic/internal/baseline"
	"github.com/sofic/sofic/internal/types"
)

// relativeDir returns dir relative to root, or dir itself when that fails.
func relativeDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return dir
	}
	return rel
}

// FilterResults drops findings known to the baseline and returns how many were ignored.
func FilterResults(summary *Summary, b *baseline.Baseline) int {
	if b == nil {
		return 0
	}

	ignored := 0
	for i := range summary.Results {
		result := &summary.Results[i]
		dir := relativeDir(summary.Root, result.Dir)

		filtered := make([]types.Finding, 0, len(result.Findings))
		for _, f := range result.Findings {
			if b.IsKnown(baseline.Issue{Dir: dir, Finding: f}) {
				ignored++
				continue
			}
			filtered = append(filtered, f)
		}
		result.Findings = filtered
	}

	summary.BaselineIgnored += ignored
	summary.recalculateTotals()
	return ignored
}

// CollectAllIssues collects every finding of a summary for baseline creation.
func CollectAllIssues(summary *Summary) []baseline.Issue {
	var issues []baseline.Issue
	for _, result := range summary.Results {
		dir := relativeDir(summary.Root, result.Dir)
		for _, f := range result.Findings {
			issues = append(issues, baseline.Issue{Dir: dir, Finding: f})
		}
	}
	return issues
}
