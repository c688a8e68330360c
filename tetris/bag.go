package tetris

import (
	"math/rand/v2"
	"time"
)

// Bag is a 7-bag randomizer: it deals every kind exactly once per refill,
// in a uniformly shuffled order.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

// NewBag creates a filled bag drawing its shuffles from rng. A nil rng
// selects a time-seeded PCG source.
func NewBag(rng *rand.Rand) *Bag {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32|1))
	}
	b := &Bag{
		rng:   rng,
		kinds: make([]Kind, 0, len(Kinds)),
	}
	b.fill()
	return b
}

func (b *Bag) fill() {
	if len(b.kinds) > 0 {
		return
	}
	b.kinds = append(b.kinds, Kinds[:]...)
	b.rng.Shuffle(len(b.kinds), func(i, j int) {
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	})
}

// Next removes and returns one kind, refilling first if the bag is empty.
func (b *Bag) Next() Kind {
	b.fill()
	last := len(b.kinds) - 1
	k := b.kinds[last]
	b.kinds = b.kinds[:last]
	return k
}

// Len returns the number of kinds left before the next refill.
func (b *Bag) Len() int {
	return len(b.kinds)
}

// QueueLen is the number of upcoming kinds kept visible.
const QueueLen = 4

// Queue holds the next QueueLen kinds in dealing order.
type Queue struct {
	kinds [QueueLen]Kind
}

func newQueue(bag *Bag) Queue {
	var q Queue
	for i := range q.kinds {
		q.kinds[i] = bag.Next()
	}
	return q
}

// next pops the front kind and backfills from bag.
func (q *Queue) next(bag *Bag) Kind {
	front := q.kinds[0]
	copy(q.kinds[:], q.kinds[1:])
	q.kinds[QueueLen-1] = bag.Next()
	return front
}

// Peek returns the upcoming kinds, front first.
func (q *Queue) Peek() [QueueLen]Kind {
	return q.kinds
}
