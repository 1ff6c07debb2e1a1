package arena

import "testing"

func TestAllocAndStrdup(t *testing.T) {
	a := New()
	s, err := a.Strdup("hello")
	if err != nil {
		t.Fatalf("Strdup: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q", s)
	}
}

func TestAllocationExhausted(t *testing.T) {
	a := New()
	a.MaxBytes = 4
	if _, err := a.Alloc(8); err != ErrAllocationExhausted {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
}

func TestNewGeneric(t *testing.T) {
	a := New()
	type point struct{ X, Y int }
	p, err := NewValue[point](a)
	if err != nil {
		t.Fatalf("NewValue: %v", err)
	}
	p.X, p.Y = 1, 2
	if p.X != 1 || p.Y != 2 {
		t.Fatalf("unexpected point %+v", p)
	}
}

func TestGrowsAcrossSlabs(t *testing.T) {
	a := New()
	for i := 0; i < 1000; i++ {
		if _, err := a.Alloc(200); err != nil {
			t.Fatalf("Alloc #%d: %v", i, err)
		}
	}
	if len(a.slabs) < 2 {
		t.Fatalf("expected multiple slabs, got %d", len(a.slabs))
	}
}
