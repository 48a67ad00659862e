package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseDisablesEveryCheck(t *testing.T) {
	cfg := Release()
	assert.Equal(t, Config{}, *cfg)
}

func TestParanoidEnablesEveryCheck(t *testing.T) {
	cfg := Paranoid()
	assert.True(t, cfg.ParserValidation)
	assert.True(t, cfg.PatternMatchChecks)
	assert.True(t, cfg.TypeSafetyChecks)
	assert.True(t, cfg.FFIAnnotationVerification)
	assert.True(t, cfg.BoundaryChecks)
	assert.True(t, cfg.OwnershipTracking)
	assert.True(t, cfg.VariadicValidation)
	assert.True(t, cfg.StringOpValidation)
	assert.True(t, cfg.SliceBounds)
	assert.True(t, cfg.MemoryLayout)
	assert.True(t, cfg.ConcurrencyDebug)
	assert.True(t, cfg.ErrorHandlingAids)
	assert.True(t, cfg.SecurityEnforcement)
	assert.True(t, cfg.StackCanaries)
	assert.True(t, cfg.FFICallLogging)
	assert.True(t, cfg.ConstantTimeVerification)
	assert.True(t, cfg.SecureMemoryValidation)
	assert.True(t, cfg.FaultInjection)
	assert.True(t, cfg.PerformanceMonitoring)
}

func TestDebugAndTestingEnableCoreChecksOnly(t *testing.T) {
	for _, cfg := range []*Config{Debug(), Testing()} {
		assert.True(t, cfg.ParserValidation)
		assert.True(t, cfg.PatternMatchChecks)
		assert.True(t, cfg.TypeSafetyChecks)
		assert.False(t, cfg.FaultInjection)
		assert.False(t, cfg.ConstantTimeVerification)
	}
}

func TestNewConfigAppliesOptionsInOrder(t *testing.T) {
	cfg := NewConfig(WithParserValidation(true), WithParserValidation(false))
	assert.False(t, cfg.ParserValidation)
}

func TestNewConfigSkipsNilOptions(t *testing.T) {
	cfg := NewConfig(nil, WithSliceBounds(true), nil)
	assert.True(t, cfg.SliceBounds)
}
