// Package git inspects git repositories on disk without spawning git.
package git

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/sofic/sofic/internal/fsprobe"
)

// Host identifies the hosting service of a repository's origin remote.
type Host string

// Known hosts. HostOther covers every remote that is neither GitHub nor GitLab,
// including repositories without an origin.
const (
	HostGitHub Host = "github"
	HostGitLab Host = "gitlab"
	HostOther  Host = ""
)

const originSection = `remote "origin"`

// IsGitRepo reports whether dir has a .git entry that is itself a directory.
func IsGitRepo(dir string) bool {
	return fsprobe.IsDirectory(filepath.Join(dir, ".git"))
}

// OriginURL returns the url of the origin remote from <dir>/.git/config.
// It returns "" when the config has no origin. A config that exists but
// cannot be parsed is an error.
func OriginURL(dir string) (string, error) {
	path := filepath.Join(dir, ".git", "config")
	if !fsprobe.FileExists(path) {
		return "", nil
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowBooleanKeys:    true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	section, err := cfg.GetSection(originSection)
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(section.Key("url").String()), nil
}

// Hostname extracts the host from a remote URL. It understands URLs with a
// scheme (https://, ssh://, git://) and scp-style "user@host:owner/repo".
func Hostname(remote string) string {
	remote = strings.TrimSpace(remote)
	if remote == "" {
		return ""
	}

	if strings.Contains(remote, "://") {
		u, err := url.Parse(remote)
		if err != nil {
			return ""
		}
		return strings.ToLower(u.Hostname())
	}

	// scp-like syntax: [user@]host:path
	colon := strings.Index(remote, ":")
	if colon <= 0 {
		return ""
	}
	host := remote[:colon]
	if at := strings.LastIndex(host, "@"); at >= 0 {
		host = host[at+1:]
	}
	if strings.Contains(host, "/") {
		return ""
	}
	return strings.ToLower(host)
}

// HostOf classifies a remote URL.
func HostOf(remote string) Host {
	switch Hostname(remote) {
	case "github.com":
		return HostGitHub
	case "gitlab.com":
		return HostGitLab
	default:
		return HostOther
	}
}

// DetectHost reads the origin remote of the repository at dir and classifies it.
func DetectHost(dir string) (Host, error) {
	remote, err := OriginURL(dir)
	if err != nil {
		return HostOther, err
	}
	return HostOf(remote), nil
}
