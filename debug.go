package starfield

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and primitive counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	emitTime     time.Duration
	submitTime   time.Duration
	commandCount int
	starCount    int
	lineCount    int
	byType       map[CommandType]int
}

// debugLogInterval is the number of frames between timing lines. Logging
// every frame at 60 TPS floods the terminal.
const debugLogInterval = 60

// debugLog prints timing and command stats to the debug writer.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug || s.frame%debugLogInterval != 0 {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut,
		"[starfield] emit: %v | submit: %v | total: %v\n",
		stats.emitTime, stats.submitTime, stats.emitTime+stats.submitTime)
	_, _ = fmt.Fprintf(s.debugOut,
		"[starfield] commands: %d (lines %d, glows %d, discs %d, rings %d) | stars: %d | lines: %d | pan: %.1f\n",
		stats.commandCount, stats.byType[CommandLine], stats.byType[CommandGlow],
		stats.byType[CommandDisc], stats.byType[CommandRing],
		stats.starCount, stats.lineCount, s.Pan())
}

// countCommands tallies emitted commands by type.
func countCommands(commands []RenderCommand) map[CommandType]int {
	counts := make(map[CommandType]int, 4)
	for i := range commands {
		counts[commands[i].Type]++
	}
	return counts
}
