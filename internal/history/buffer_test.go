package history

import (
	"reflect"
	"testing"
)

func TestUndoRedo(t *testing.T) {
	b := New[string](DefaultCapacity)
	b.Push("A")
	b.Push("B")
	b.Push("C")

	steps := []struct {
		op       func() (string, bool)
		expected string
		ok       bool
	}{
		{b.Undo, "B", true},
		{b.Undo, "A", true},
		{b.Undo, "", false},
		{b.Redo, "B", true},
		{b.Redo, "C", true},
		{b.Redo, "", false},
		{b.Undo, "B", true},
	}
	for i, step := range steps {
		out, ok := step.op()
		if out != step.expected || ok != step.ok {
			t.Fatalf("step %d: got (%q, %v), expected (%q, %v)", i, out, ok, step.expected, step.ok)
		}
	}
	if !reflect.DeepEqual(b.past, []string{"A", "B"}) {
		t.Fatalf("past corrupted: %v", b.past)
	}
}

func TestPushClearsRedo(t *testing.T) {
	b := New[int](DefaultCapacity)
	b.Push(1)
	b.Push(2)
	b.Undo()
	if !b.CanRedo() {
		t.Fatal("expected redo after undo")
	}
	b.Push(3)
	if b.CanRedo() {
		t.Fatal("push kept redo history")
	}
	if _, ok := b.Redo(); ok {
		t.Fatal("redo succeeded after push")
	}
	if v, _ := b.Current(); v != 3 {
		t.Fatalf("expected current 3, got %d", v)
	}
	if v, _ := b.Undo(); v != 1 {
		t.Fatalf("expected undo to 1, got %d", v)
	}
}

func TestCapacity(t *testing.T) {
	b := New[int](40)
	for i := 0; i < 100; i++ {
		b.Push(i)
		if b.Len() > 40 {
			t.Fatalf("past grew to %d", b.Len())
		}
	}
	if b.past[0] != 60 {
		t.Fatalf("expected oldest kept entry 60, got %d", b.past[0])
	}
	undos := 0
	for {
		if _, ok := b.Undo(); !ok {
			break
		}
		undos++
	}
	if undos != 39 {
		t.Fatalf("expected 39 undos, got %d", undos)
	}
}

func TestClear(t *testing.T) {
	b := New[int](0)
	if b.Capacity() != DefaultCapacity {
		t.Fatalf("expected default capacity, got %d", b.Capacity())
	}
	b.Push(1)
	b.Push(2)
	b.Undo()
	b.Clear()
	if b.Len() != 0 || b.CanRedo() || b.CanUndo() {
		t.Fatal("clear left entries behind")
	}
	if _, ok := b.Current(); ok {
		t.Fatal("current after clear")
	}
}
