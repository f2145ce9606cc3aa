// Package git reads repository facts by running the git CLI inside a working
// tree. It never changes the repository.
package git

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var ErrNotRepository = errors.New("not a git repository")

// Repo is a working tree on disk.
type Repo struct {
	Dir string
}

// Open returns the repository rooted at dir. A directory nested inside some
// other working tree is not a repository of its own.
func Open(dir string) (Repo, error) {
	// .git is a directory in a main worktree and a file in a linked one
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return Repo{}, fmt.Errorf("%s: %w", dir, ErrNotRepository)
	}
	return Repo{Dir: dir}, nil
}

func (r Repo) Name() string {
	return filepath.Base(r.Dir)
}

func (r Repo) run(args ...string) ([]byte, error) {
	cmd := exec.Command("git", append([]string{"-C", r.Dir}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git %s failed: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return output, nil
}
