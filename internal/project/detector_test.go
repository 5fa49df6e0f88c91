package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sofic/sofic/internal/git"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T, dir string)
		wantGit     bool
		wantJS      bool
		wantHost    git.Host
		wantQualify bool
	}{
		{
			name:      "plain directory",
			setupFunc: func(t *testing.T, dir string) {},
		},
		{
			name: "js package",
			setupFunc: func(t *testing.T, dir string) {
				if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0644); err != nil {
					t.Fatalf("failed to create package.json: %v", err)
				}
			},
			wantJS:      true,
			wantQualify: true,
		},
		{
			name: "package.json directory is not a js package",
			setupFunc: func(t *testing.T, dir string) {
				if err := os.Mkdir(filepath.Join(dir, "package.json"), 0755); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "github repository and js package",
			setupFunc: func(t *testing.T, dir string) {
				if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
					t.Fatalf("failed to create .git: %v", err)
				}
				config := "[remote \"origin\"]\n\turl = https://github.com/sofic/sofic.git\n"
				if err := os.WriteFile(filepath.Join(dir, ".git", "config"), []byte(config), 0644); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0644); err != nil {
					t.Fatal(err)
				}
			},
			wantGit:     true,
			wantJS:      true,
			wantHost:    git.HostGitHub,
			wantQualify: true,
		},
		{
			name: "repository without remote",
			setupFunc: func(t *testing.T, dir string) {
				if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
					t.Fatal(err)
				}
			},
			wantGit:     true,
			wantHost:    git.HostOther,
			wantQualify: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setupFunc(t, dir)

			info, err := Detect(dir)
			if err != nil {
				t.Fatalf("Detect() error = %v", err)
			}
			if info.IsGitRepo != tt.wantGit {
				t.Errorf("IsGitRepo = %v, want %v", info.IsGitRepo, tt.wantGit)
			}
			if info.IsJSPackage != tt.wantJS {
				t.Errorf("IsJSPackage = %v, want %v", info.IsJSPackage, tt.wantJS)
			}
			if info.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", info.Host, tt.wantHost)
			}
			if info.Qualifies() != tt.wantQualify || Qualifies(dir) != tt.wantQualify {
				t.Errorf("Qualifies = %v, want %v", info.Qualifies(), tt.wantQualify)
			}
		})
	}
}
