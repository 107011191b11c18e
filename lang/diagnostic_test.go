package lang

import (
	"strings"
	"testing"
)

func TestStack_CoalescesAdjacentIdenticalLines(t *testing.T) {
	var s Stack

	line := Span{Start: Position{Line: 1, Column: 1}, Text: "echo hi"}
	s.Push(Frame{Span: line, Label: "parse"})
	s.Push(Frame{Span: line, Label: "bind"})
	s.Push(Frame{Span: Span{Start: Position{Line: 2, Column: 1}, Text: "other"}, Label: "call"})

	rendered := s.Render()
	if strings.Count(rendered, "echo hi") != 1 {
		t.Fatalf("expected adjacent identical-line frames to coalesce, got:\n%s", rendered)
	}

	if !strings.Contains(rendered, "other") {
		t.Fatalf("expected distinct frame to survive, got:\n%s", rendered)
	}
}

func TestStack_PopClear(t *testing.T) {
	var s Stack

	s.Push(Frame{Span: Span{Text: "a"}})
	s.Push(Frame{Span: Span{Text: "b"}})
	s.Pop()

	if s.Len() != 1 {
		t.Fatalf("expected 1 frame after pop, got %d", s.Len())
	}

	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("expected 0 frames after clear, got %d", s.Len())
	}
}

func TestShellError_ReportIncludesStack(t *testing.T) {
	err := NewError(KindNoSuchCommand, "no such command %q", "frobnicate")
	err.Stack.Push(Frame{Span: Span{Start: Position{Line: 3, Column: 1}, Text: "frobnicate 1 2"}, Label: "call"})

	report := err.Report()
	if !strings.Contains(report, "no-such-command") {
		t.Fatalf("expected kind in report, got: %s", report)
	}

	if !strings.Contains(report, "frobnicate 1 2") {
		t.Fatalf("expected source line in report, got: %s", report)
	}
}
