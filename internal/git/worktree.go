package git

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Worktree is one checkout of the repository.
type Worktree struct {
	Path string
	Bare bool
}

// Worktrees lists the main working tree followed by any linked ones
func (r Repo) Worktrees() ([]Worktree, error) {
	output, err := r.run("worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return parseWorktrees(output), nil
}

// parseWorktrees reads `git worktree list --porcelain`: one blank-line
// separated stanza per worktree, each starting with "worktree <path>".
func parseWorktrees(output []byte) []Worktree {
	var trees []Worktree
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		label, value, _ := strings.Cut(line, " ")

		switch label {
		case "worktree":
			trees = append(trees, Worktree{Path: value})
		case "bare":
			if n := len(trees); n > 0 {
				trees[n-1].Bare = true
			}
		}
	}

	return trees
}

// Checkouts counts the worktrees that have files checked out, leaving out a
// bare main repository.
func Checkouts(trees []Worktree) int {
	n := 0
	for _, t := range trees {
		if !t.Bare {
			n++
		}
	}
	return n
}
