package reflow

import (
	"fmt"
	"time"
)

// Session owns one live engine instance and the staged conversion
// settings. It is created uninitialized; Init allocates the engine and
// Close releases it. All other operations fail with ErrNotInitialized
// outside the Init/Close window.
//
// A Session has no internal locking. A single logical caller must drive
// it sequentially; concurrent use from multiple goroutines is the
// caller's responsibility to serialize.
type Session struct {
	cfg         sessionConfig
	engine      Engine
	settings    Settings
	initialized bool
}

// sessionConfig holds internal configuration for Session.
type sessionConfig struct {
	timeout   time.Duration
	newEngine func() (Engine, error)
}

// Option configures a Session.
type Option func(*Session)

// WithTimeout bounds each Process call. Zero (the default) means no
// timeout: a conversion blocks until the engine finishes.
// Panics if d < 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("reflow: WithTimeout duration must not be negative")
	}
	return func(s *Session) {
		s.cfg.timeout = d
	}
}

// WithEngine makes Init use the given engine instead of constructing
// the default pdfcpu-backed one. Close still closes it; a session that
// is re-initialized after Close constructs nothing new and reuses e,
// so e must tolerate Close followed by further calls if the session is
// recycled.
func WithEngine(e Engine) Option {
	return func(s *Session) {
		s.cfg.newEngine = func() (Engine, error) { return e, nil }
	}
}

// NewSession creates an uninitialized Session.
// Call Init before any other operation and Close when done.
func NewSession(opts ...Option) *Session {
	s := &Session{
		cfg: sessionConfig{
			newEngine: func() (Engine, error) { return newPDFCPUEngine(), nil },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init allocates the engine and resets settings to engine defaults.
// On an already-initialized session it is a safe no-op returning the
// informational ErrAlreadyInitialized; the existing engine is kept and
// nothing is reallocated. Engine allocation failure leaves the session
// uninitialized.
func (s *Session) Init() error {
	if s.initialized {
		return ErrAlreadyInitialized
	}

	eng, err := s.cfg.newEngine()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineInit, err)
	}

	s.engine = eng
	s.settings = defaultSettings()
	s.initialized = true
	return nil
}

// Close releases the engine and marks the session uninitialized.
// Safe from any state: before Init, and repeatedly after the first
// call, it does nothing and returns nil. The engine is released at
// most once per Init.
func (s *Session) Close() error {
	if !s.initialized {
		return nil
	}

	eng := s.engine
	s.engine = nil
	s.settings = Settings{}
	s.initialized = false

	if eng != nil {
		return eng.Close()
	}
	return nil
}
