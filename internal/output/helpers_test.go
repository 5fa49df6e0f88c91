package output

import (
	"errors"
	"time"

	"github.com/sofic/sofic/internal/git"
	"github.com/sofic/sofic/internal/lint"
	"github.com/sofic/sofic/internal/project"
	"github.com/sofic/sofic/internal/types"
)

func sampleSummary() *lint.Summary {
	summary := &lint.Summary{
		Root:      "/work",
		StartTime: time.Now(),
		Results: []lint.DirectoryResult{
			{
				Dir:  "/work/clean",
				Info: &project.Info{Dir: "/work/clean", IsGitRepo: true, Host: git.HostGitHub},
			},
			{
				Dir:  "/work/pkg",
				Info: &project.Info{Dir: "/work/pkg", IsJSPackage: true},
				Findings: []types.Finding{
					{Kind: types.KindMissingFile, Subsystem: types.SubsystemFiles, Subject: ".editorconfig", Message: "missing `.editorconfig`"},
					{Kind: types.KindMissingDependency, Subsystem: types.SubsystemPackageJSON, Subject: "eslint", Message: "missing `eslint` in `devDependencies`"},
				},
			},
			{
				Dir: "/work/broken",
				Err: errors.New("parse package.json: unexpected end of JSON input"),
			},
		},
	}
	summary.TotalFindings = 2
	summary.FailedDirectories = 1
	return summary
}
