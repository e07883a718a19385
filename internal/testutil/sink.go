package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/sink"
)

// MemorySink is an in-memory sink.Sink for orchestrator tests. It records
// every committed realization and the time each write took.
type MemorySink struct {
	// FailAt makes the write of that ordinal fail. Zero disables it.
	FailAt int
	// Delay is slept inside every write.
	Delay time.Duration

	mu             sync.Mutex
	written        map[int]*generator.Realization
	executionTimes map[int]ExecutionRecord
	inFlight       int
	maxInFlight    int
}

var _ sink.Sink = (*MemorySink)(nil)

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		written:        make(map[int]*generator.Realization),
		executionTimes: make(map[int]ExecutionRecord),
	}
}

// Write implements sink.Sink.
func (s *MemorySink) Write(ctx context.Context, r *generator.Realization) error {
	s.mu.Lock()
	s.inFlight++
	s.maxInFlight = max(s.maxInFlight, s.inFlight)
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	start := time.Now()
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return &sink.Error{Op: "write", Path: "memory", Ordinal: r.Ordinal, Err: ctx.Err()}
		}
	}
	if r.Ordinal == s.FailAt {
		return &sink.Error{Op: "write", Path: "memory", Ordinal: r.Ordinal, Err: fmt.Errorf("%w at ordinal %d", ErrInjected, r.Ordinal)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.written[r.Ordinal]; dup {
		return &sink.Error{Op: "write", Path: "memory", Ordinal: r.Ordinal, Err: fmt.Errorf("ordinal %d written twice", r.Ordinal)}
	}
	s.written[r.Ordinal] = r
	s.executionTimes[r.Ordinal] = ExecutionRecord{Start: start, End: time.Now()}
	return nil
}

// Ordinals returns the committed ordinals in ascending order.
func (s *MemorySink) Ordinals() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, 0, len(s.written))
	for o := range s.written {
		out = append(out, o)
	}
	sort.Ints(out)
	return out
}

// Realization returns the committed realization with the given ordinal.
func (s *MemorySink) Realization(ordinal int) (*generator.Realization, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.written[ordinal]
	return r, ok
}

// Len returns the number of committed realizations.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.written)
}

// ExecutionTime returns the recorded write interval of ordinal.
func (s *MemorySink) ExecutionTime(ordinal int) (ExecutionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.executionTimes[ordinal]
	return rec, ok
}

// MaxInFlight returns the highest number of concurrent writes observed.
func (s *MemorySink) MaxInFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}
