package worker

import (
	"sync/atomic"
	"testing"
)

func TestSubmitRunsInOrder(t *testing.T) {
	w := New(4)
	var got []int
	for i := range 100 {
		w.Submit(func() { got = append(got, i) })
	}
	w.Close()
	if len(got) != 100 {
		t.Fatalf("expected 100 functions to run, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("function %d ran at position %d", v, i)
		}
	}
}

func TestSubmitAfterClose(t *testing.T) {
	w := New(1)
	w.Close()
	if w.Submit(func() {}) {
		t.Fatalf("submitting to a closed worker should fail")
	}
	w.Close()
}

func TestPanicsDoNotStopWorker(t *testing.T) {
	w := New(2)
	var ran atomic.Int32
	w.Submit(func() { panic("exhibit fell over") })
	w.Submit(func() { ran.Add(1) })
	w.Close()
	if ran.Load() != 1 {
		t.Fatalf("expected the worker to keep running after a panic")
	}
}
