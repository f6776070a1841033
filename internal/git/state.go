package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitport.dev/gitport/internal/engine"
)

// InProgress reports whether a merge, rebase or cherry-pick is mid-flight,
// detected from the repository's state files the same way git itself does.
func (r *Repository) InProgress() (engine.ProgressKind, error) {
	gitDir, err := r.gitDir()
	if err != nil {
		return engine.ProgressNone, err
	}

	if _, err := os.Stat(filepath.Join(gitDir, "CHERRY_PICK_HEAD")); err == nil {
		return engine.ProgressCherryPick, nil
	}
	if _, err := os.Stat(filepath.Join(gitDir, "MERGE_HEAD")); err == nil {
		return engine.ProgressMerge, nil
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-merge")); err == nil {
		return engine.ProgressRebase, nil
	}
	if _, err := os.Stat(filepath.Join(gitDir, "rebase-apply")); err == nil {
		return engine.ProgressRebase, nil
	}
	return engine.ProgressNone, nil
}

// Status returns working-tree paths by category, parsed from porcelain status.
// The raw output is parsed line by line; trimming it first would eat the
// leading space of codes like " M".
func (r *Repository) Status() (engine.Status, error) {
	out, err := r.runner.RunRaw(context.Background(), "status", "--porcelain")
	if err != nil {
		return engine.Status{}, fmt.Errorf("failed to read status: %w", err)
	}

	var status engine.Status
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		code := line[:2]
		path := strings.TrimSpace(line[3:])
		switch {
		case code == "??":
			status.Untracked = append(status.Untracked, path)
		case isConflictCode(code):
			status.Conflicting = append(status.Conflicting, path)
		default:
			status.Uncommitted = append(status.Uncommitted, path)
		}
	}
	return status, nil
}

// isConflictCode reports whether a porcelain XY code denotes an unmerged path.
func isConflictCode(code string) bool {
	switch code {
	case "DD", "AU", "UD", "UA", "DU", "AA", "UU":
		return true
	}
	return false
}

func (r *Repository) gitDir() (string, error) {
	out, err := r.runner.Run(context.Background(), "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git dir: %w", err)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(r.root, out)
	}
	return out, nil
}
