package repos

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Johannes-Berggren/repodash/internal/git"
	"github.com/Johannes-Berggren/repodash/internal/models"
)

// Scan lists the git repositories directly under Root, one record per
// repository, in directory order. Nothing below the first level is visited.
type Scan struct {
	Root string
	// Now anchors the relative last commit times; nil means time.Now.
	Now func() time.Time
}

func (s Scan) Repositories() ([]models.Repository, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan repositories: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	out := []models.Repository{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		repo, err := git.Open(filepath.Join(s.Root, entry.Name()))
		if errors.Is(err, git.ErrNotRepository) {
			continue
		}
		if err != nil {
			return nil, err
		}

		record, err := describe(repo, now())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", repo.Name(), err)
		}
		out = append(out, record)
	}
	return out, nil
}

// describe fills a record from git. Pull requests live on the forge, not in
// the repository, so that column stays empty.
func describe(repo git.Repo, now time.Time) (models.Repository, error) {
	branches, err := repo.Branches()
	if err != nil {
		return models.Repository{}, err
	}

	trees, err := repo.Worktrees()
	if err != nil {
		return models.Repository{}, err
	}

	lastCommit, ok, err := repo.LastCommit()
	if err != nil {
		return models.Repository{}, err
	}

	record := models.Repository{
		Name:       repo.Name(),
		Branches:   branchSummary(git.LocalBranches(branches)),
		Workspaces: strconv.Itoa(git.Checkouts(trees)),
	}
	if ok {
		record.LastCommit = git.RelativeTime(lastCommit, now)
	}
	return record, nil
}

// branchSummary reads "3 (main)": the local branch count and the checked out
// branch. nil when there are no branches yet.
func branchSummary(local []git.Branch) *string {
	if len(local) == 0 {
		return nil
	}
	summary := strconv.Itoa(len(local))
	for _, b := range local {
		if b.IsCurrent {
			summary += " (" + b.Name + ")"
			break
		}
	}
	return models.Text(summary)
}
