package safety

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/joeycumines/go-catrate"
	"github.com/joeycumines/go-microbatch"
	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/rtlog"
)

// ReportFunc is the single report sink a Sink delivers batches of
// violations to. Delivery is fire-and-forget: the validator never blocks
// on, or aborts because of, a report sink failure.
type ReportFunc func(batch []*diagnostic.Violation)

// recentCapacity bounds how many violations Sink.Recent retains per
// category and source location.
const recentCapacity = 16

// Sink is the single report sink every safety check delivers violations
// to. It throttles repeated identical violations (same category + source
// location) with a catrate.Limiter, so a tight loop re-triggering the same
// static check cannot flood the report callback, and batches the
// survivors with a microbatch.Batcher so a burst of violations from one
// analysis pass becomes one delivery instead of N.
type Sink struct {
	report  ReportFunc
	limiter *catrate.Limiter
	batcher *microbatch.Batcher[*diagnostic.Violation]

	mu     sync.Mutex
	recent map[string]*violationRing

	log *rtlog.Logger
}

// SinkOption configures a Sink.
type SinkOption func(*sinkOptions)

type sinkOptions struct {
	rates          map[time.Duration]int
	maxBatchSize   int
	flushInterval  time.Duration
	maxConcurrency int
	log            *rtlog.Logger
}

// WithThrottleRates overrides the catrate.Limiter sliding-window rates
// applied to repeated identical violations. Defaults to at most 3 per
// second and 20 per minute, per category+location.
func WithThrottleRates(rates map[time.Duration]int) SinkOption {
	return func(o *sinkOptions) { o.rates = rates }
}

// WithBatch overrides the microbatch.Batcher sizing used to group
// violations before delivery to the report callback.
func WithBatch(maxSize int, flushInterval time.Duration) SinkOption {
	return func(o *sinkOptions) {
		o.maxBatchSize = maxSize
		o.flushInterval = flushInterval
	}
}

// WithSinkLogger sets the structured logger used for sink-level events
// (throttled violations, batch delivery failures).
func WithSinkLogger(log *rtlog.Logger) SinkOption {
	return func(o *sinkOptions) { o.log = log }
}

// NewSink constructs a Sink delivering batches to report. A nil report is
// replaced with a no-op sink (violations are still throttled/batched, but
// silently dropped — used by Release-mode validators that disable every
// check anyway).
func NewSink(report ReportFunc, opts ...SinkOption) *Sink {
	o := sinkOptions{
		rates:          map[time.Duration]int{time.Second: 3, time.Minute: 20},
		maxBatchSize:   32,
		flushInterval:  50 * time.Millisecond,
		maxConcurrency: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if report == nil {
		report = func([]*diagnostic.Violation) {}
	}

	s := &Sink{
		report: report,
		log:    rtlog.Or(o.log),
		recent: make(map[string]*violationRing),
	}
	if len(o.rates) > 0 {
		s.limiter = catrate.NewLimiter(o.rates)
	}
	s.batcher = microbatch.NewBatcher(&microbatch.BatcherConfig{
		MaxSize:        o.maxBatchSize,
		FlushInterval:  o.flushInterval,
		MaxConcurrency: o.maxConcurrency,
	}, func(ctx context.Context, batch []*diagnostic.Violation) error {
		s.report(batch)
		return nil
	})
	return s
}

// Close releases the underlying batcher's worker goroutine. Safe to call
// more than once.
func (s *Sink) Close() error {
	return s.batcher.Close()
}

// violationKey identifies a violation for throttling purposes: same
// category at the same source location is "the same violation" re-firing.
func violationKey(v *diagnostic.Violation) string {
	return v.Category + "|" + v.File + ":" + strconv.Itoa(v.Line)
}

// Report records v, delivering it to the sink unless an identical
// violation (same category + location) has fired too recently. Never
// blocks the caller on delivery; the batcher's Submit is used, but its
// result is not awaited (reporting is fire-and-forget per spec §7).
func (s *Sink) Report(v *diagnostic.Violation) {
	if v == nil {
		return
	}
	key := violationKey(v)

	s.mu.Lock()
	ring, ok := s.recent[key]
	if !ok {
		ring = newViolationRing(recentCapacity)
		s.recent[key] = ring
	}
	ring.add(v)
	s.mu.Unlock()

	if s.limiter != nil {
		if _, ok := s.limiter.Allow(key); !ok {
			s.log.Debug("safety.sink").Str("category", v.Category).Log("violation throttled")
			return
		}
	}

	if _, err := s.batcher.Submit(context.Background(), v); err != nil {
		s.log.Warn("safety.sink").Str("category", v.Category).Err(err).Log("violation batch submit failed")
	}
}

// Recent returns the most recently reported violations for category,
// oldest first, regardless of whether they were throttled before
// delivery.
func (s *Sink) Recent(category string) []*diagnostic.Violation {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := category + "|"
	var out []*diagnostic.Violation
	for key, ring := range s.recent {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, ring.recent()...)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}
