package shop

import (
	mathrand "math/rand"

	"github.com/google/uuid"

	"blockparty/internal/config"
)

// Queue is the FIFO line of waiting customers, soft-capped at spawn time:
// pushing beyond capacity silently drops the oldest entries.
type Queue struct {
	cap       int
	customers []Customer
}

func NewQueue(capacity int) Queue {
	return Queue{cap: capacity}
}

// Push appends a customer and reports how many were dropped to stay under
// the cap.
func (q *Queue) Push(c Customer) int {
	q.customers = append(q.customers, c)
	dropped := len(q.customers) - q.cap
	if dropped <= 0 {
		return 0
	}
	q.customers = append(q.customers[:0], q.customers[dropped:]...)
	return dropped
}

// SweepFront rolls the abandonment check for the customer at the head of
// the line. Only an impatient front customer can leave, and only with the
// given per-sweep probability; an unlucky streak keeping one around forever
// is intended behavior, not a timeout bug.
func (q *Queue) SweepFront(rng *mathrand.Rand, prob float64) (Customer, bool) {
	if len(q.customers) == 0 {
		return Customer{}, false
	}
	front := q.customers[0]
	if front.Mood != MoodImpatient {
		return Customer{}, false
	}
	if rng.Float64() >= prob {
		return Customer{}, false
	}
	q.customers = q.customers[1:]
	return front, true
}

// ServeFront removes and returns the head of the line.
func (q *Queue) ServeFront() (Customer, bool) {
	if len(q.customers) == 0 {
		return Customer{}, false
	}
	front := q.customers[0]
	q.customers = q.customers[1:]
	return front, true
}

func (q *Queue) Len() int {
	return len(q.customers)
}

// Customers returns a copy safe to hand to renderers.
func (q *Queue) Customers() []Customer {
	out := make([]Customer, len(q.customers))
	copy(out, q.customers)
	return out
}

// NewCustomer draws a fresh customer: impatient 15%, then neutral with 60%
// of the remainder, else happy; spend uniform in [SpendMin, SpendMax].
func NewCustomer(rng *mathrand.Rand, bal config.Balance) Customer {
	mood := MoodHappy
	if rng.Float64() < bal.ImpatientProb {
		mood = MoodImpatient
	} else if rng.Float64() < bal.NeutralProb {
		mood = MoodNeutral
	}
	return Customer{
		ID:    uuid.NewString(),
		Mood:  mood,
		Spend: bal.SpendMin + rng.Intn(bal.SpendMax-bal.SpendMin+1),
	}
}
