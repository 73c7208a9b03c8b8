package lit

import "testing"

func TestQueuePushPop(t *testing.T) {
	q := NewQueue()
	l1, l2, l3 := New(0, false), New(1, false), New(2, true)

	q.Push(l1)
	q.Push(l2)
	q.Push(l3)

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}
	for _, want := range []Lit{l1, l2, l3} {
		if got := q.Pop(); got != want {
			t.Fatalf("Pop() = %v, want %v", got, want)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after draining", q.Len())
	}
	if got := q.Pop(); got != Undef {
		t.Fatalf("Pop() on empty queue = %v, want Undef", got)
	}
}

func TestQueueClear(t *testing.T) {
	q := NewQueue()
	q.Push(New(0, false))
	q.Push(New(1, false))

	q.Clear()

	if q.Len() != 0 {
		t.Fatalf("Len() = %d after Clear(), want 0", q.Len())
	}
}
