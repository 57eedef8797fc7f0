package shop

import (
	"fmt"
	mathrand "math/rand"
	"testing"

	"blockparty/internal/config"
)

func TestQueueCapKeepsLatest(t *testing.T) {
	q := NewQueue(5)
	for i := 0; i < 9; i++ {
		q.Push(Customer{ID: fmt.Sprintf("c%d", i), Mood: MoodNeutral, Spend: 5})
		if q.Len() > 5 {
			t.Fatalf("queue length %d exceeds cap after push %d", q.Len(), i)
		}
	}
	got := q.Customers()
	if len(got) != 5 {
		t.Fatalf("queue length got %d want 5", len(got))
	}
	for i, c := range got {
		want := fmt.Sprintf("c%d", i+4)
		if c.ID != want {
			t.Fatalf("slot %d got %s want %s (oldest must be dropped)", i, c.ID, want)
		}
	}
}

func TestNewCustomerRanges(t *testing.T) {
	bal := config.Default()
	rng := mathrand.New(mathrand.NewSource(1))
	moods := map[Mood]int{}
	for i := 0; i < 2000; i++ {
		c := NewCustomer(rng, bal)
		switch c.Mood {
		case MoodHappy, MoodNeutral, MoodImpatient:
		default:
			t.Fatalf("unexpected mood %q", c.Mood)
		}
		if c.Spend < 5 || c.Spend > 10 {
			t.Fatalf("spend %d out of [5,10]", c.Spend)
		}
		if c.ID == "" {
			t.Fatal("customer id must not be empty")
		}
		moods[c.Mood]++
	}
	// All three moods should show up over 2000 draws.
	for _, m := range []Mood{MoodHappy, MoodNeutral, MoodImpatient} {
		if moods[m] == 0 {
			t.Fatalf("mood %s never drawn", m)
		}
	}
}

func TestSweepFrontOnlyRemovesImpatientHead(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(1))

	q := NewQueue(5)
	q.Push(Customer{ID: "calm", Mood: MoodNeutral})
	q.Push(Customer{ID: "angry", Mood: MoodImpatient})
	if _, left := q.SweepFront(rng, 1.0); left {
		t.Fatal("neutral front customer must never abandon")
	}
	if q.Len() != 2 {
		t.Fatalf("queue length changed to %d", q.Len())
	}

	q2 := NewQueue(5)
	q2.Push(Customer{ID: "angry", Mood: MoodImpatient})
	if c, left := q2.SweepFront(rng, 1.0); !left || c.ID != "angry" {
		t.Fatalf("impatient front must leave at prob 1.0, got left=%v c=%v", left, c)
	}

	q3 := NewQueue(5)
	q3.Push(Customer{ID: "angry", Mood: MoodImpatient})
	if _, left := q3.SweepFront(rng, 0.0); left {
		t.Fatal("impatient front must stay at prob 0.0")
	}
}

func TestServeFrontFIFO(t *testing.T) {
	q := NewQueue(5)
	if _, ok := q.ServeFront(); ok {
		t.Fatal("serving an empty queue must report empty")
	}
	q.Push(Customer{ID: "a"})
	q.Push(Customer{ID: "b"})
	c, ok := q.ServeFront()
	if !ok || c.ID != "a" {
		t.Fatalf("expected to serve a first, got %v ok=%v", c, ok)
	}
	c, ok = q.ServeFront()
	if !ok || c.ID != "b" {
		t.Fatalf("expected to serve b second, got %v ok=%v", c, ok)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty, got %d", q.Len())
	}
}
