package project

import (
	"fmt"
	"path/filepath"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/git"
	"github.com/sofic/sofic/internal/manifest"
)

// Info describes which rule sets apply to a directory.
// Named 'Info' instead of 'ProjectInfo' to avoid stuttering (project.Info vs project.ProjectInfo).
type Info struct {
	Dir         string
	IsGitRepo   bool
	IsJSPackage bool
	Host        git.Host // only set for git repositories
}

// Qualifies reports whether Info describes a directory worth checking.
func (i *Info) Qualifies() bool {
	return i.IsGitRepo || i.IsJSPackage
}

// IsJSPackage reports whether dir has a package.json regular file.
func IsJSPackage(dir string) bool {
	return fsprobe.FileExists(filepath.Join(dir, manifest.FileName))
}

// Qualifies reports whether dir is a git repository or a JS package without
// reading any file contents.
func Qualifies(dir string) bool {
	return git.IsGitRepo(dir) || IsJSPackage(dir)
}

// Detect classifies dir. Git repositories also get their origin host
// resolved; an unreadable .git/config is an error.
// Named 'Detect' instead of 'DetectProjectInfo' to avoid stuttering.
func Detect(dir string) (*Info, error) {
	info := &Info{
		Dir:         dir,
		IsGitRepo:   git.IsGitRepo(dir),
		IsJSPackage: IsJSPackage(dir),
		Host:        git.HostOther,
	}

	if info.IsGitRepo {
		host, err := git.DetectHost(dir)
		if err != nil {
			return nil, fmt.Errorf("detecting git host for %s: %w", dir, err)
		}
		info.Host = host
	}

	return info, nil
}
