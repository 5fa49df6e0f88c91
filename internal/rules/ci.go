package rules

import (
	"path/filepath"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/git"
	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/types"
)

// CIRule checks that a CI workflow exists for the repository's host.
// Hosts other than GitHub and GitLab are not checked.
type CIRule struct {
	Host git.Host
}

// Name implements Rule.
func (r CIRule) Name() string { return "ci:" + string(r.Host) }

// Evaluate implements Rule. The manifest is unused and may be nil.
func (r CIRule) Evaluate(dir string, _ *manifest.Manifest) ([]types.Finding, error) {
	switch r.Host {
	case git.HostGitHub:
		return checkGitHubActions(dir)
	case git.HostGitLab:
		return checkGitLabCI(dir)
	default:
		return nil, nil
	}
}

func checkGitHubActions(dir string) ([]types.Finding, error) {
	missing := []types.Finding{{
		Kind:      types.KindMissingWorkflow,
		Subsystem: types.SubsystemGitHubActions,
		Subject:   ".github/workflows",
		Message:   "missing workflow file in `.github/workflows`",
	}}

	workflows := filepath.Join(dir, ".github", "workflows")
	if !fsprobe.IsDirectory(workflows) {
		return missing, nil
	}

	found, err := fsprobe.HasFileWithSuffix(workflows, ".yml", ".yaml")
	if err != nil {
		return nil, err
	}
	if found {
		return nil, nil
	}
	return missing, nil
}

func checkGitLabCI(dir string) ([]types.Finding, error) {
	found, err := fsprobe.HasFileWithSuffix(dir, ".gitlab-ci.yml")
	if err != nil {
		return nil, err
	}
	if found {
		return nil, nil
	}
	return []types.Finding{{
		Kind:      types.KindMissingWorkflow,
		Subsystem: types.SubsystemGitLabCI,
		Subject:   ".gitlab-ci.yml",
		Message:   "missing `.gitlab-ci.yml` file",
	}}, nil
}
