package safety

import (
	"time"

	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/rtlog"
)

// Validator runs the safety checks gated by a Config, delivering any
// resulting diagnostic.Violation to a Sink. A process constructs one
// Validator per active Config (the presets in config.go cover the common
// cases) and shares it across every analysis pass.
type Validator struct {
	cfg  *Config
	sink *Sink
	log  *rtlog.Logger
}

// NewValidator constructs a Validator. A nil sink discards every
// violation (still useful for a Release-mode validator, where every check
// is off and report() is never reached).
func NewValidator(cfg *Config, sink *Sink, log *rtlog.Logger) *Validator {
	if cfg == nil {
		cfg = Release()
	}
	if sink == nil {
		sink = NewSink(nil)
	}
	return &Validator{cfg: cfg, sink: sink, log: rtlog.Or(log)}
}

// Config returns the Validator's active configuration.
func (v *Validator) Config() *Config { return v.cfg }

// report constructs a Violation and delivers it to the Validator's Sink.
func (v *Validator) report(category string, severity diagnostic.Severity, loc diagnostic.Location, message string, ctx any) *diagnostic.Violation {
	viol := &diagnostic.Violation{
		Category:  category,
		Severity:  severity,
		Timestamp: time.Now(),
		File:      loc.File,
		Line:      loc.Line,
		Function:  "",
		Message:   message,
		Context:   ctx,
	}
	v.sink.Report(viol)
	v.log.Warn("safety.violation").Str("category", category).Log(message)
	return viol
}
