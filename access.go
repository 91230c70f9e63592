// Package access decides whether an actor may perform a named grading
// action. Rules compose role allowances and contextual checks as flag sets;
// the table is built once at engine construction and read-only thereafter.
package access

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/gradeway/access/internal/policy"
	"github.com/gradeway/access/types"
)

// New creates an authorization Engine loaded with the built-in grading
// rule table plus any rules added via WithRule
func New(opts ...EngineOption) (types.Engine, error) {
	cfg := &EngineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.log == nil {
		l := stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
		cfg.log = &l
	}

	table := policy.DefaultTable()
	for _, r := range cfg.rules {
		if r.Action == "" {
			return nil, fmt.Errorf("rule with empty action name")
		}
		if r.Flags == types.NoFlags {
			return nil, fmt.Errorf("rule %s carries no flags", r.Action)
		}
		table.Register(r.Action, r.Flags)
	}

	return policy.New(table, cfg.store, cfg.now, cfg.log.WithName("policy")), nil
}

// WithStore sets the data-access collaborator answering section and peer
// lookups. Could be omitted if no evaluated rule checks grading sections or
// peer assignments.
func WithStore(s types.Store) EngineOption {
	return func(cfg *EngineConfig) {
		cfg.store = s
	}
}

// WithRule registers a caller-defined action on top of the built-in table.
// Registering an action the table already knows is fatal, same as a
// duplicate built-in registration.
func WithRule(action string, flags types.Flag) EngineOption {
	return func(cfg *EngineConfig) {
		cfg.rules = append(cfg.rules, types.Rule{Action: action, Flags: flags})
	}
}

// WithClock sets the time source used for grade-start comparisons,
// defaults to time.Now
func WithClock(now func() time.Time) EngineOption {
	return func(cfg *EngineConfig) {
		cfg.now = now
	}
}

// WithLogger sets logger for the engine
func WithLogger(l logr.Logger) EngineOption {
	return func(cfg *EngineConfig) {
		cfg.log = &l
	}
}

// EngineConfig works together with EngineOption to control the
// initialization of the engine
type EngineConfig struct {
	store types.Store
	rules []types.Rule
	now   func() time.Time
	log   *logr.Logger
}

// EngineOption controls how to init an engine
type EngineOption func(*EngineConfig)
