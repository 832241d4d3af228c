// Package scaffold installs the devdocs methodology into a repository: beads issue
// tracking, the devdocs/ tree, AGENTS.md guidance, and the pi hooks that provide the
// slash commands.
package scaffold

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mrexodia/devdocs-cli/pkg/logger"
	"github.com/mrexodia/devdocs-cli/pkg/templates"
	"github.com/mrexodia/devdocs-cli/pkg/utils"
)

//go:embed assets/*
var assets embed.FS

const (
	// AgentsMarker identifies an AGENTS.md that already carries the methodology.
	AgentsMarker = "## Issue Tracking (bd)"
	// beadsLandingMarker identifies the stock AGENTS.md written by `bd init`.
	beadsLandingMarker = "Landing the Plane"
)

// Runner executes external tools such as bd.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Reporter receives progress lines.
type Reporter interface {
	Info(msg string)
	Warn(msg string)
}

type Installer struct {
	Dir        string
	Runner     Runner
	Reporter   Reporter
	Catalog    *templates.Catalog
	CustomType string
	SkipBeads  bool
}

// Run performs every installation step in order and stops at the first error.
// Steps are idempotent: existing files are left alone.
func (in *Installer) Run(ctx context.Context) error {
	if in.Runner == nil {
		return errors.New("installer has no runner")
	}
	if in.Reporter == nil {
		return errors.New("installer has no reporter")
	}
	if in.Catalog == nil {
		in.Catalog = templates.Default()
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"beads", in.initBeads},
		{"devdocs", in.initDevdocs},
		{"agents", in.initAgentsMd},
		{"hooks", in.initPiHooks},
	}
	for _, s := range steps {
		logger.DebugCF("scaffold", "Running step", map[string]any{"step": s.name, "dir": in.Dir})
		if err := s.fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (in *Installer) path(parts ...string) string {
	return filepath.Join(append([]string{in.Dir}, parts...)...)
}

func (in *Installer) initBeads(ctx context.Context) error {
	if in.SkipBeads {
		in.Reporter.Warn("Skipped beads setup")
		return nil
	}

	if dirExists(in.path(".beads")) {
		in.Reporter.Info("Beads already initialized")
	} else {
		if err := in.Runner.Run(ctx, in.Dir, "bd", "init"); err != nil {
			return fmt.Errorf("failed to initialize beads: %w", err)
		}
		in.Reporter.Info("Initialized beads")
	}

	if err := in.Runner.Run(ctx, in.Dir, "bd", "config", "set", "no-git-ops", "true"); err != nil {
		in.Reporter.Warn(fmt.Sprintf("failed to set no-git-ops config: %v", err))
	} else {
		in.Reporter.Info("Set no-git-ops config")
	}
	return nil
}

func (in *Installer) initDevdocs(context.Context) error {
	if err := os.MkdirAll(in.path("devdocs", "archive"), 0o755); err != nil {
		return fmt.Errorf("failed to create devdocs directory: %w", err)
	}

	created, err := writeIfMissing(in.path("devdocs", "README.md"), mustAsset("devdocs-README.md"))
	if err != nil {
		return err
	}
	if created {
		in.Reporter.Info("Created devdocs/README.md")
	} else {
		in.Reporter.Info("devdocs/README.md already exists")
	}
	return nil
}

func (in *Installer) initAgentsMd(context.Context) error {
	content := mustAsset("AGENTS.md")
	path := in.path("AGENTS.md")

	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write AGENTS.md: %w", err)
		}
		in.Reporter.Info("Created AGENTS.md")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read AGENTS.md: %w", err)
	}

	switch text := string(existing); {
	case strings.Contains(text, AgentsMarker):
		in.Reporter.Info("AGENTS.md already contains devdocs methodology")
		return nil

	case strings.Contains(text, beadsLandingMarker):
		// Stock bd content assumes bd commits for you; with no-git-ops it is wrong.
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write AGENTS.md: %w", err)
		}
		in.Reporter.Info("Replaced beads AGENTS.md with devdocs methodology (no-git-ops mode)")
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open AGENTS.md: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + content); err != nil {
		return fmt.Errorf("failed to append to AGENTS.md: %w", err)
	}
	in.Reporter.Info("Appended devdocs methodology to AGENTS.md")
	return nil
}

func (in *Installer) initPiHooks(context.Context) error {
	hookDir := in.path(".pi", "hooks")
	if err := os.MkdirAll(hookDir, 0o755); err != nil {
		return fmt.Errorf("failed to create .pi/hooks directory: %w", err)
	}

	commands, err := GenerateHook(in.Catalog, in.CustomType)
	if err != nil {
		return fmt.Errorf("failed to generate command hook: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{"bd-prime.ts", mustAsset("bd-prime.ts")},
		{"devdocs-commands.ts", commands},
	}
	for _, f := range files {
		created, err := writeIfMissing(filepath.Join(hookDir, f.name), f.content)
		if err != nil {
			return err
		}
		if created {
			in.Reporter.Info("Created .pi/hooks/" + f.name)
		} else {
			in.Reporter.Info(".pi/hooks/" + f.name + " already exists")
		}
	}
	return nil
}

func writeIfMissing(path, content string) (bool, error) {
	created, err := utils.WriteFileIfMissing(path, []byte(content), 0o644)
	if err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return created, nil
}

func mustAsset(name string) string {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		panic(fmt.Sprintf("missing embedded asset %s: %v", name, err))
	}
	return string(data)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
