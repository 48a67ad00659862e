package safety

// Config enumerates which checks are active. All nineteen flags are
// independent; an off flag makes its check report "valid" trivially
// instead of performing any work.
type Config struct {
	ParserValidation          bool
	PatternMatchChecks        bool
	TypeSafetyChecks          bool
	FFIAnnotationVerification bool
	BoundaryChecks            bool
	OwnershipTracking         bool
	VariadicValidation        bool
	StringOpValidation        bool
	SliceBounds               bool
	MemoryLayout              bool
	ConcurrencyDebug          bool
	ErrorHandlingAids         bool
	SecurityEnforcement       bool
	StackCanaries             bool
	FFICallLogging            bool
	ConstantTimeVerification  bool
	SecureMemoryValidation    bool
	FaultInjection            bool
	PerformanceMonitoring     bool
}

// Option configures a Config.
type Option interface {
	applyConfig(*Config)
}

type configOptionImpl struct {
	fn func(*Config)
}

func (o *configOptionImpl) applyConfig(cfg *Config) { o.fn(cfg) }

func optionFunc(fn func(*Config)) Option {
	return &configOptionImpl{fn: fn}
}

// WithParserValidation toggles delimiter-balance scanning.
func WithParserValidation(enabled bool) Option {
	return optionFunc(func(c *Config) { c.ParserValidation = enabled })
}

// WithPatternMatchChecks toggles match-arm completeness/redundancy checking.
func WithPatternMatchChecks(enabled bool) Option {
	return optionFunc(func(c *Config) { c.PatternMatchChecks = enabled })
}

// WithTypeSafetyChecks toggles result.Any type-identity verification.
func WithTypeSafetyChecks(enabled bool) Option {
	return optionFunc(func(c *Config) { c.TypeSafetyChecks = enabled })
}

// WithFFIAnnotationVerification toggles #[...] annotation well-formedness checks.
func WithFFIAnnotationVerification(enabled bool) Option {
	return optionFunc(func(c *Config) { c.FFIAnnotationVerification = enabled })
}

// WithBoundaryChecks toggles container boundary validation.
func WithBoundaryChecks(enabled bool) Option {
	return optionFunc(func(c *Config) { c.BoundaryChecks = enabled })
}

// WithOwnershipTracking toggles ownership-hint discipline verification.
func WithOwnershipTracking(enabled bool) Option {
	return optionFunc(func(c *Config) { c.OwnershipTracking = enabled })
}

// WithVariadicValidation toggles variadic-call argument validation.
func WithVariadicValidation(enabled bool) Option {
	return optionFunc(func(c *Config) { c.VariadicValidation = enabled })
}

// WithStringOpValidation toggles string-operation validation.
func WithStringOpValidation(enabled bool) Option {
	return optionFunc(func(c *Config) { c.StringOpValidation = enabled })
}

// WithSliceBounds toggles slice type/bounds checking.
func WithSliceBounds(enabled bool) Option {
	return optionFunc(func(c *Config) { c.SliceBounds = enabled })
}

// WithMemoryLayout toggles struct/enum memory-layout verification.
func WithMemoryLayout(enabled bool) Option {
	return optionFunc(func(c *Config) { c.MemoryLayout = enabled })
}

// WithConcurrencyDebug toggles task/registry debug instrumentation.
func WithConcurrencyDebug(enabled bool) Option {
	return optionFunc(func(c *Config) { c.ConcurrencyDebug = enabled })
}

// WithErrorHandlingAids toggles extra diagnostic context on error paths.
func WithErrorHandlingAids(enabled bool) Option {
	return optionFunc(func(c *Config) { c.ErrorHandlingAids = enabled })
}

// WithSecurityEnforcement toggles the security-hardening check group.
func WithSecurityEnforcement(enabled bool) Option {
	return optionFunc(func(c *Config) { c.SecurityEnforcement = enabled })
}

// WithStackCanaries toggles emitted stack-canary verification hooks.
func WithStackCanaries(enabled bool) Option {
	return optionFunc(func(c *Config) { c.StackCanaries = enabled })
}

// WithFFICallLogging toggles structured logging of every FFI call.
func WithFFICallLogging(enabled bool) Option {
	return optionFunc(func(c *Config) { c.FFICallLogging = enabled })
}

// WithConstantTimeVerification toggles constant-time-operation verification.
func WithConstantTimeVerification(enabled bool) Option {
	return optionFunc(func(c *Config) { c.ConstantTimeVerification = enabled })
}

// WithSecureMemoryValidation toggles secure-memory-wipe validation.
func WithSecureMemoryValidation(enabled bool) Option {
	return optionFunc(func(c *Config) { c.SecureMemoryValidation = enabled })
}

// WithFaultInjection toggles fault-injection hooks for test builds.
func WithFaultInjection(enabled bool) Option {
	return optionFunc(func(c *Config) { c.FaultInjection = enabled })
}

// WithPerformanceMonitoring toggles the performance-monitoring check group.
func WithPerformanceMonitoring(enabled bool) Option {
	return optionFunc(func(c *Config) { c.PerformanceMonitoring = enabled })
}

// NewConfig builds a Config from opts, starting from every check disabled
// (equivalent to Release()).
func NewConfig(opts ...Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyConfig(cfg)
	}
	return cfg
}

// allChecks lists every With* constructor, for use by the presets.
func allChecks(enabled bool) []Option {
	return []Option{
		WithParserValidation(enabled),
		WithPatternMatchChecks(enabled),
		WithTypeSafetyChecks(enabled),
		WithFFIAnnotationVerification(enabled),
		WithBoundaryChecks(enabled),
		WithOwnershipTracking(enabled),
		WithVariadicValidation(enabled),
		WithStringOpValidation(enabled),
		WithSliceBounds(enabled),
		WithMemoryLayout(enabled),
		WithConcurrencyDebug(enabled),
		WithErrorHandlingAids(enabled),
		WithSecurityEnforcement(enabled),
		WithStackCanaries(enabled),
		WithFFICallLogging(enabled),
		WithConstantTimeVerification(enabled),
		WithSecureMemoryValidation(enabled),
		WithFaultInjection(enabled),
		WithPerformanceMonitoring(enabled),
	}
}

// Debug returns the preset used by development builds: the checks a
// developer wants to see fail loudly and often, excluding the
// performance-sensitive hardening checks reserved for Paranoid.
func Debug() *Config {
	return NewConfig(append(allChecks(false),
		WithParserValidation(true),
		WithPatternMatchChecks(true),
		WithTypeSafetyChecks(true),
		WithBoundaryChecks(true),
		WithOwnershipTracking(true),
		WithSliceBounds(true),
		WithMemoryLayout(true),
		WithConcurrencyDebug(true),
		WithErrorHandlingAids(true),
		WithFFICallLogging(true),
	)...)
}

// Release returns the preset with every check disabled, for optimized
// production builds where the validator must not add overhead.
func Release() *Config {
	return NewConfig(allChecks(false)...)
}

// Testing returns the preset used by the test suite: enough checks to
// catch regressions in the core invariants without the full hardening
// surface.
func Testing() *Config {
	return NewConfig(append(allChecks(false),
		WithParserValidation(true),
		WithPatternMatchChecks(true),
		WithTypeSafetyChecks(true),
		WithBoundaryChecks(true),
		WithSliceBounds(true),
		WithErrorHandlingAids(true),
	)...)
}

// Paranoid returns the preset with every check enabled, for security
// audits and fuzzing.
func Paranoid() *Config {
	return NewConfig(allChecks(true)...)
}
