package motion

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// captureDebug swaps debugOut for a buffer and enables debug mode for the
// duration of the test.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	SetDebug(true)
	t.Cleanup(func() {
		debugOut = old
		SetDebug(false)
	})
	return &buf
}

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewCircle("child", 10)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestReleaseMode_DisposedNodeNoPanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewCircle("child", 10)
	child.Dispose()
	parent.AddChild(child)
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	buf := captureDebug(t)

	current := NewContainer("root")
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	if !strings.Contains(buf.String(), "warning: tree depth") {
		t.Errorf("expected tree depth warning, got: %q", buf.String())
	}
}

func TestDebugLogsTriggersAndIgnoredInput(t *testing.T) {
	buf := captureDebug(t)
	p, _ := newTestPlayground(t)

	p.Execute("pulse")
	p.Execute("spin")
	p.Elements().SpeedInput.Input("fast")

	out := buf.String()
	for _, want := range []string{
		"[motion] trigger pulse",
		`[motion] unknown trigger "spin"`,
		`[motion] ignoring speed "fast"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugfSilentWhenOff(t *testing.T) {
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	defer func() { debugOut = old }()

	debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debugf wrote %q with debug off", buf.String())
	}
}

func TestSceneDebugLog(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene()
	s.SetDebugMode(true)
	s.debugLog(debugStats{commandCount: 12, timerCount: 3})
	if out := buf.String(); !strings.Contains(out, "commands: 12") || !strings.Contains(out, "pending timers: 3") {
		t.Errorf("debugLog output = %q", out)
	}
}
