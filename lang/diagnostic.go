package lang

import "strings"

// Frame is a single entry in a [Stack]: the source line being evaluated
// when an error occurred or propagated, and an optional label describing
// what was being done (e.g. the command path being resolved).
type Frame struct {
	Span  Span
	Label string
}

// Stack is an ordered list of [Frame] values describing the nested source
// positions that led to a failure, outermost first (i.e. in the order
// frames were pushed). Rendering presents them innermost first, the way a
// reader wants to see "what broke" before "what called it".
//
// Grounded on original_source/shellsy/exceptions.py's StackTrace, including
// its Simplify rule: adjacent frames referring to the same source line
// collapse into one, since they usually represent different stages of
// evaluating the same literal (parse, then bind, then invoke).
type Stack struct {
	frames []Frame
}

// Push appends a frame to the stack.
func (s *Stack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes and discards the most recently pushed frame, if any.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}

	s.frames = s.frames[:len(s.frames)-1]
}

// Clear empties the stack.
func (s *Stack) Clear() {
	s.frames = nil
}

// Len reports the number of frames currently on the stack.
func (s *Stack) Len() int { return len(s.frames) }

// Frames returns a copy of the pushed frames, outermost first.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)

	return out
}

// simplify coalesces adjacent frames whose spans cover the same source
// line, keeping the last (innermost) frame of the collapsed group.
func simplify(frames []Frame) []Frame {
	if len(frames) == 0 {
		return nil
	}

	out := make([]Frame, 0, len(frames))

	for _, f := range frames {
		if n := len(out); n > 0 &&
			out[n-1].Span.Start.Line == f.Span.Start.Line &&
			out[n-1].Span.Text == f.Span.Text {
			out[n-1] = f

			continue
		}

		out = append(out, f)
	}

	return out
}

// Render renders the stack innermost-first, one line per coalesced frame.
func (s *Stack) Render() string {
	frames := simplify(s.frames)
	if len(frames) == 0 {
		return ""
	}

	var b strings.Builder

	for i := len(frames) - 1; i >= 0; i-- {
		f := frames[i]

		b.WriteString("  at ")

		if f.Label != "" {
			b.WriteString(f.Label)
			b.WriteString(" ")
		}

		b.WriteString(f.Span.String())
		b.WriteString(": ")
		b.WriteString(strings.TrimRight(f.Span.Text, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}
