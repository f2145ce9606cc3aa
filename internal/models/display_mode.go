package models

import (
	"fmt"
	"strings"
)

// DisplayMode selects the density/border variant of the repositories table.
type DisplayMode string

const (
	DisplayModeDefault           DisplayMode = "default"
	DisplayModeCompact           DisplayMode = "compact"
	DisplayModeCompactBorderless DisplayMode = "compactBorderless"
)

// DefaultDisplayMode is the mode a fresh view starts in.
const DefaultDisplayMode = DisplayModeCompact

// DisplayModes returns every mode in toggle-group order.
func DisplayModes() []DisplayMode {
	return []DisplayMode{DisplayModeDefault, DisplayModeCompact, DisplayModeCompactBorderless}
}

// ParseDisplayMode matches s against the mode ids, ignoring case.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for _, m := range DisplayModes() {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown display mode %q (want one of: %s)", s, strings.Join(displayModeIDs(), ", "))
}

func (m DisplayMode) Label() string {
	switch m {
	case DisplayModeDefault:
		return "Default"
	case DisplayModeCompact:
		return "Compact"
	case DisplayModeCompactBorderless:
		return "Compact borderless"
	}
	return string(m)
}

// Compact reports whether rows use the dense layout.
func (m DisplayMode) Compact() bool {
	return m != DisplayModeDefault
}

// Borders reports whether the table draws its container and header rules.
func (m DisplayMode) Borders() bool {
	return m != DisplayModeCompactBorderless
}

func (m DisplayMode) Valid() bool {
	return m.index() >= 0
}

// Next returns the following mode, wrapping around.
func (m DisplayMode) Next() DisplayMode {
	modes := DisplayModes()
	return modes[(m.index()+1)%len(modes)]
}

// Prev returns the preceding mode, wrapping around.
func (m DisplayMode) Prev() DisplayMode {
	modes := DisplayModes()
	i := m.index()
	if i <= 0 {
		return modes[len(modes)-1]
	}
	return modes[i-1]
}

func (m DisplayMode) index() int {
	for i, mode := range DisplayModes() {
		if mode == m {
			return i
		}
	}
	return -1
}

func displayModeIDs() []string {
	modes := DisplayModes()
	ids := make([]string, len(modes))
	for i, m := range modes {
		ids[i] = string(m)
	}
	return ids
}
