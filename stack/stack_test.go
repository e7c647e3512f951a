package stack

import "testing"

// Test a new stack is empty
func TestEmpty(t *testing.T) {
	s := New(4)

	if !s.Empty() {
		t.Errorf("new stack should be empty")
	}

	s.Push(3.14)
	if s.Empty() {
		t.Errorf("stack should not be empty after push")
	}

	s.Pop()
	if !s.Empty() {
		t.Errorf("stack should be empty after final pop")
	}
}

// Test push/pop ordering
func TestStack(t *testing.T) {
	s := New(3)

	s.Push(1)
	s.Push(2)
	s.Push(3)

	if s.Depth() != 3 {
		t.Errorf("unexpected depth %d", s.Depth())
	}

	for _, want := range []float64{3, 2, 1} {
		got := s.Pop()
		if got != want {
			t.Errorf("popped %f, want %f", got, want)
		}
	}
}

// Test in-place replacement of the top cell
func TestReplaceTop(t *testing.T) {
	s := New(2)

	s.Push(9)
	s.ReplaceTop(-9)

	if got := s.Top(); got != -9 {
		t.Errorf("top is %f, want -9", got)
	}
	if s.Depth() != 1 {
		t.Errorf("ReplaceTop changed the depth to %d", s.Depth())
	}

	s.Reset()
	if !s.Empty() {
		t.Errorf("stack should be empty after reset")
	}
}
