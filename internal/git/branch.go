package git

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

type Branch struct {
	Name      string
	IsCurrent bool
	IsRemote  bool
}

// Branches returns local and remote-tracking branches
func (r Repo) Branches() ([]Branch, error) {
	output, err := r.run("branch", "--all")
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	return parseBranches(output), nil
}

func parseBranches(output []byte) []Branch {
	var branches []Branch
	scanner := bufio.NewScanner(bytes.NewReader(output))

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		branch := Branch{}

		// Current branch is marked with *
		// + marks a branch checked out in another worktree
		if strings.HasPrefix(line, "*") {
			branch.IsCurrent = true
			line = strings.TrimPrefix(line, "*")
		} else {
			line = strings.TrimPrefix(line, "+")
		}

		parts := strings.Fields(line)
		if len(parts) == 0 || strings.HasPrefix(parts[0], "(") {
			// (HEAD detached at 1a2b3c4)
			continue
		}
		if len(parts) > 1 && parts[1] == "->" {
			// symbolic refs such as remotes/origin/HEAD -> origin/main
			continue
		}

		branch.Name = parts[0]
		if strings.HasPrefix(branch.Name, "remotes/") {
			branch.IsRemote = true
			branch.Name = strings.TrimPrefix(branch.Name, "remotes/")
		}

		branches = append(branches, branch)
	}

	return branches
}

// LocalBranches filters out remote-tracking branches
func LocalBranches(branches []Branch) []Branch {
	var local []Branch
	for _, b := range branches {
		if !b.IsRemote {
			local = append(local, b)
		}
	}
	return local
}
