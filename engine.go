package uaes

// DefaultMaxMessageSize is the mode-layer message ceiling: four blocks, the
// scratch capacity of the embedded targets this design comes from. It is a
// default, not a cryptographic limit; see WithMaxMessageSize.
const DefaultMaxMessageSize = 64

// A TraceFunc receives the cipher state at round boundaries, mirroring the
// state a diagnostic sink would dump between transforms. The state slice is
// the live block: it is only valid for the duration of the call and must
// not be modified or retained. A nil TraceFunc disables tracing.
type TraceFunc func(round int, step string, state []byte)

// Step labels passed to a TraceFunc.
const (
	TraceRoundStart   = "start"
	TraceSubBytes     = "sub_bytes"
	TraceShiftRows    = "shift_rows"
	TraceMixColumns   = "mix_columns"
	TraceAddRoundKey  = "add_round_key"
	TraceInvShiftRows = "inv_shift_rows"
	TraceInvSubBytes  = "inv_sub_bytes"
	TraceRoundEnd     = "end"
)

// emit forwards a round boundary to the installed sink. Safe on the nil
// func value, so the round pipeline never branches on configuration.
func (t TraceFunc) emit(round int, step string, state []byte) {
	if t != nil {
		t(round, step, state)
	}
}

// An Engine carries the configuration of the mode layer: the message
// ceiling and the optional trace sink. It holds no cipher state (the key
// schedule and state block of every operation are call-scoped), so a single
// Engine is safe for concurrent use as long as each call owns its buffers.
type Engine struct {
	maxMessage int
	trace      TraceFunc
}

// An Option configures an Engine.
type Option func(*Engine)

// WithMaxMessageSize overrides the four-block default ceiling enforced by
// the ECB/CBC and Seal entry points. n <= 0 removes the ceiling entirely.
func WithMaxMessageSize(n int) Option {
	return func(e *Engine) {
		e.maxMessage = n
	}
}

// WithTrace installs a diagnostic sink invoked at round boundaries. Meant
// for debugging against published intermediate-state vectors; leave unset
// in production.
func WithTrace(fn TraceFunc) Option {
	return func(e *Engine) {
		e.trace = fn
	}
}

// New returns an Engine with the default message ceiling and no trace sink.
func New(opts ...Option) *Engine {
	e := &Engine{maxMessage: DefaultMaxMessageSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultEngine backs the package-level entry points.
var defaultEngine = New()
