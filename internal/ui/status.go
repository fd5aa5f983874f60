package ui

import (
	"fmt"
	"strings"

	"infigrid/internal/core"
)

// StatusLines formats the HUD text. origin and stats are optional.
func StatusLines(name string, origin *[2]int32, stats *core.Stats) []string {
	if name == "" {
		name = "sim"
	}
	lines := []string{strings.ToUpper(name[:1]) + name[1:]}
	if origin != nil {
		lines = append(lines, fmt.Sprintf("origin %d,%d", origin[0], origin[1]))
	}
	if stats != nil {
		lines = append(lines,
			fmt.Sprintf("gen    %d", stats.Generation),
			fmt.Sprintf("chunks %d", stats.Chunks),
			fmt.Sprintf("hits   %.1f%%", 100*stats.HitRatio()),
			fmt.Sprintf("allocs %d", stats.Cache.Creates),
		)
	}
	return lines
}
