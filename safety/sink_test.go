package safety

import (
	"sync"
	"testing"
	"time"

	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkDeliversReportedViolations(t *testing.T) {
	var mu sync.Mutex
	var delivered []*diagnostic.Violation

	sink := NewSink(func(batch []*diagnostic.Violation) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, batch...)
	}, WithBatch(1, time.Millisecond))
	defer sink.Close()

	sink.Report(&diagnostic.Violation{Category: "test", Message: "boom", File: "a.lum", Line: 1})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(delivered) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSinkThrottlesRepeatedIdenticalViolations(t *testing.T) {
	var mu sync.Mutex
	var delivered []*diagnostic.Violation

	sink := NewSink(func(batch []*diagnostic.Violation) {
		mu.Lock()
		defer mu.Unlock()
		delivered = append(delivered, batch...)
	}, WithBatch(1, time.Millisecond), WithThrottleRates(map[time.Duration]int{time.Minute: 1}))
	defer sink.Close()

	for i := 0; i < 5; i++ {
		sink.Report(&diagnostic.Violation{Category: "dup", Message: "boom", File: "a.lum", Line: 1})
	}

	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, delivered, 1)
}

func TestSinkRecentReturnsBufferedViolationsEvenWhenThrottled(t *testing.T) {
	sink := NewSink(nil, WithThrottleRates(map[time.Duration]int{time.Minute: 1}))
	defer sink.Close()

	for i := 0; i < 3; i++ {
		sink.Report(&diagnostic.Violation{Category: "dup", Message: "boom", File: "a.lum", Line: 1})
	}

	assert.Len(t, sink.Recent("dup"), 3)
}

func TestSinkIgnoresNilViolation(t *testing.T) {
	sink := NewSink(nil)
	defer sink.Close()
	assert.NotPanics(t, func() { sink.Report(nil) })
}
