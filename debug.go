package motion

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut receives debug-mode diagnostics. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// globalDebug mirrors the most recently set debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
	timerCount   int
}

// debugf prints a prefixed diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[motion] "+format+"\n", args...)
}

// debugLog prints per-frame timing and draw stats.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[motion] traverse: %v | submit: %v | commands: %d | pending timers: %d\n",
		stats.traverseTime, stats.submitTime, stats.commandCount, stats.timerCount)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("motion debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}

// SetDebug enables or disables debug diagnostics for code that runs without
// a Scene, such as a Playground driven by a terminal host.
func SetDebug(enabled bool) {
	globalDebug = enabled
}
