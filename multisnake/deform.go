package multisnake

import (
	"context"
	"math"
	"sync"

	"github.com/plan-systems/klog"

	"github.com/NoSuchProcess/SOAX/snake"
	"github.com/NoSuchProcess/SOAX/solver"
)

// DeformSnakes evolves every initial snake. Snakes are taken from the back
// of the initial list (the longest first); a snake that stays viable joins
// the converged set, otherwise its subsnakes are queued. The previous
// converged set is discarded.
func (m *Multisnake) DeformSnakes(ctx context.Context) error {
	if m.env == nil {
		return ErrNoImage
	}
	klog.V(1).Infof("multisnake: evolving %d initial snakes on %d worker(s)", len(m.initial), m.opts.workers)
	m.converged = nil

	var err error
	if m.opts.workers > 1 {
		err = m.deformParallel(ctx)
	} else {
		err = m.deformSerial(ctx)
	}
	klog.V(1).Infof("multisnake: %d converged snakes", len(m.converged))

	return err
}

func (m *Multisnake) deformSerial(ctx context.Context) error {
	for len(m.initial) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := m.initial[len(m.initial)-1]
		m.initial = m.initial[:len(m.initial)-1]

		m.bank.Reset(false)
		s.Evolve(m.bank, m.converged, math.MaxInt)
		if s.Viable() {
			m.converged = append(m.converged, s)
		} else {
			m.initial = append(m.initial, s.Subsnakes()...)
		}
	}

	return nil
}

// queue is the shared work list of the parallel evolution. Workers block
// while it is empty but other workers may still produce subsnakes.
type queue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []*snake.Snake
	active  int
	stopped bool
}

func newQueue(pending []*snake.Snake) *queue {
	q := &queue{pending: pending}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// pop returns the next snake, or false once the queue is drained and no
// worker is running.
func (q *queue) pop() (*snake.Snake, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.pending) == 0 && q.active > 0 && !q.stopped {
		q.cond.Wait()
	}
	if q.stopped || len(q.pending) == 0 {
		return nil, false
	}
	s := q.pending[len(q.pending)-1]
	q.pending = q.pending[:len(q.pending)-1]
	q.active++

	return s, true
}

// done marks one snake finished and queues its subsnakes.
func (q *queue) done(subsnakes []*snake.Snake) {
	q.mu.Lock()
	q.pending = append(q.pending, subsnakes...)
	q.active--
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *queue) stop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// convergedSet guards the converged snakes shared by the workers.
type convergedSet struct {
	mu     sync.RWMutex
	snakes []*snake.Snake
}

func (c *convergedSet) snapshot() []*snake.Snake {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]*snake.Snake(nil), c.snakes...)
}

func (c *convergedSet) add(s *snake.Snake) {
	c.mu.Lock()
	c.snakes = append(c.snakes, s)
	c.mu.Unlock()
}

func (m *Multisnake) deformParallel(ctx context.Context) error {
	q := newQueue(m.initial)
	m.initial = nil
	conv := &convergedSet{}
	coef := m.bank.Coefficients()

	stopWatch := make(chan struct{})
	defer close(stopWatch)
	go func() {
		select {
		case <-ctx.Done():
			q.stop()
		case <-stopWatch:
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < m.opts.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bank := solver.NewBank(coef)
			for {
				s, ok := q.pop()
				if !ok {
					return
				}
				bank.Reset(false)
				s.Evolve(bank, conv.snapshot(), math.MaxInt)
				if s.Viable() {
					conv.add(s)
					q.done(nil)
				} else {
					q.done(s.Subsnakes())
				}
			}
		}()
	}
	wg.Wait()
	m.converged = conv.snakes

	if err := ctx.Err(); err != nil {
		q.mu.Lock()
		m.initial = q.pending
		q.mu.Unlock()
		return err
	}

	return nil
}
