package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// LastCommit returns when the newest commit on any ref was made. ok is false
// for a repository without commits.
func (r Repo) LastCommit() (when time.Time, ok bool, err error) {
	output, err := r.run("log", "--all", "--date-order", "-1", "--pretty=format:%at")
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to run git log: %w", err)
	}
	return parseCommitTime(output)
}

func parseCommitTime(output []byte) (time.Time, bool, error) {
	field := strings.TrimSpace(string(output))
	if field == "" {
		return time.Time{}, false, nil
	}
	unixTime, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("unexpected commit time %q: %w", field, err)
	}
	return time.Unix(unixTime, 0), true, nil
}

// RelativeTime renders t the way the last commit column shows it
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s ago", unit)
		}
		return fmt.Sprintf("%d %ss ago", n, unit)
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24/7), "week")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}
