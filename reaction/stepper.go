package reaction

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/grayscott/field"
)

// DefaultMinParallelRows is the interior row count below which stepping
// stays on the calling goroutine. Smaller grids lose more to handoff than
// they gain from extra cores.
const DefaultMinParallelRows = 64

// rowChunk is a contiguous band of rows handed to one worker.
type rowChunk struct {
	current, next *field.Field
	params        Params
	y0, y1        int
}

// Stepper runs Step across a persistent pool of worker goroutines. Each
// call blocks until every row is written, so callers observe the same
// synchronous contract as Step and the output is identical bit for bit.
type Stepper struct {
	numWorkers int
	minRows    int

	workChan chan rowChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool
}

// NewStepper creates a stepper with the given worker count (0 = GOMAXPROCS)
// and parallel threshold (0 = DefaultMinParallelRows). Workers start lazily.
func NewStepper(workers, minRows int) *Stepper {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if minRows <= 0 {
		minRows = DefaultMinParallelRows
	}
	return &Stepper{numWorkers: workers, minRows: minRows}
}

// Workers returns the pool size.
func (s *Stepper) Workers() int { return s.numWorkers }

// Step advances current into next. It is not safe for concurrent use.
func (s *Stepper) Step(current, next *field.Field, p Params) {
	checkPair(current, next)

	rows := current.H - 2
	if rows <= 0 {
		return
	}
	if s.numWorkers == 1 || rows < s.minRows {
		stepRows(current, next, p, 1, current.H-1)
		return
	}
	s.start()

	chunks := s.numWorkers
	if chunks > rows {
		chunks = rows
	}
	per := rows / chunks
	extra := rows % chunks

	y := 1
	for i := 0; i < chunks; i++ {
		n := per
		if i < extra {
			n++
		}
		s.workChan <- rowChunk{current: current, next: next, params: p, y0: y, y1: y + n}
		y += n
	}
	for i := 0; i < chunks; i++ {
		<-s.doneChan
	}
}

// start launches the worker goroutines.
func (s *Stepper) start() {
	if s.running {
		return
	}
	s.workChan = make(chan rowChunk, s.numWorkers)
	s.doneChan = make(chan struct{}, s.numWorkers)
	s.stopChan = make(chan struct{})
	s.running = true

	for i := 0; i < s.numWorkers; i++ {
		s.wg.Add(1)
		go s.worker()
	}
}

// Close stops the workers and waits for them to exit. The stepper can be
// used again afterwards; workers restart on the next parallel step.
func (s *Stepper) Close() {
	if !s.running {
		return
	}
	close(s.stopChan)
	s.wg.Wait()
	close(s.workChan)
	close(s.doneChan)
	s.running = false
}

func (s *Stepper) worker() {
	defer s.wg.Done()
	for {
		select {
		case <-s.stopChan:
			return
		case c, ok := <-s.workChan:
			if !ok {
				return
			}
			stepRows(c.current, c.next, c.params, c.y0, c.y1)
			s.doneChan <- struct{}{}
		}
	}
}
