package reconcile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"school-onboarder/internal/clean"
	"school-onboarder/internal/detect"
	"school-onboarder/internal/diagnostic"
	"school-onboarder/internal/keywords"
	"school-onboarder/internal/match"
	"school-onboarder/internal/project"
	"school-onboarder/internal/schema"
	"school-onboarder/internal/table"
)

// Option configures an Engine.
type Option func(*Engine)

// WithDictionary replaces the built-in keyword dictionaries.
func WithDictionary(set keywords.Set) Option {
	return func(e *Engine) {
		e.dict = set
	}
}

// WithPasswordGenerator sets the generator used to backfill parent passwords.
func WithPasswordGenerator(gen clean.PasswordGenerator) Option {
	return func(e *Engine) {
		e.passwords = gen
	}
}

// WithLogger sets the logger for stage-level debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// Engine reconciles raw tables. It holds only read-only configuration and
// may be reused across calls.
type Engine struct {
	dict      keywords.Set
	passwords clean.PasswordGenerator
	logger    zerolog.Logger
	cleaner   *clean.Cleaner
}

// New returns an Engine. It fails only when the configured dictionary
// violates its canonical schemas; such errors match
// keywords.ErrInvalidDictionary.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		dict:   keywords.Default(),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := keywords.Validate(e.dict); err != nil {
		return nil, fmt.Errorf("configure engine: %w", err)
	}

	e.cleaner = clean.New(e.passwords)

	return e, nil
}

// Dictionary returns the keyword dictionaries in use.
func (e *Engine) Dictionary() keywords.Set {
	return e.dict
}

// Result is the output of one Process call.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	Parents  *schema.Table
	Students *schema.Table
	Payments *schema.Table

	// Mappings holds the resolved field → column mapping per entity, after
	// composite ID splitting.
	Mappings map[schema.Entity]*match.Mapping
	// Extraction describes what installment detection did.
	Extraction detect.Extraction

	Notifications *diagnostic.Log
}

// Table returns the canonical table of entity en.
func (r *Result) Table(en schema.Entity) *schema.Table {
	switch en {
	case schema.EntityParent:
		return r.Parents
	case schema.EntityStudent:
		return r.Students
	case schema.EntityPayment:
		return r.Payments
	default:
		return nil
	}
}

// Process reconciles raw into the three canonical tables. A nil table is
// treated as an empty one.
func (e *Engine) Process(raw *table.Table) *Result {
	if raw == nil {
		raw = table.New()
	}

	res := &Result{
		RunID:         uuid.New(),
		Mappings:      make(map[schema.Entity]*match.Mapping, len(schema.Entities)),
		Notifications: &diagnostic.Log{},
	}
	log := res.Notifications
	logger := e.logger.With().Str("run_id", res.RunID.String()).Logger()

	logger.Debug().Int("rows", raw.Len()).Strs("columns", raw.Names()).Msg("reconciling table")

	// 1. wide fee columns
	payments := schema.NewBuilder(schema.For(schema.EntityPayment))
	res.Extraction = detect.Installments(raw, payments, log)
	mainTable := raw.Drop(res.Extraction.Consumed...)

	if len(res.Extraction.Consumed) > 0 {
		logger.Debug().
			Strs("consumed", res.Extraction.Consumed).
			Int("payments", res.Extraction.Rows).
			Msg("installment columns extracted")
	}

	// 2. header matching, one pool per entity
	for _, en := range schema.Entities {
		m, _ := match.Columns(mainTable.Names(), e.dict.For(en))
		res.Mappings[en] = m
	}

	// 3. combined parent/student id
	mainTable = detect.CompositeID(mainTable, res.Mappings[schema.EntityStudent], log)

	for _, en := range schema.Entities {
		m := res.Mappings[en]
		log.Info(diagnostic.CodeMapping, "%s column mapping: %s", en, m)
		logger.Debug().Stringer("entity", en).Stringer("mapping", m).Msg("columns resolved")
	}

	// 4. projection
	res.Parents = project.Rows(mainTable, res.Mappings[schema.EntityParent], schema.For(schema.EntityParent))
	res.Students = project.Rows(mainTable, res.Mappings[schema.EntityStudent], schema.For(schema.EntityStudent))

	if res.Extraction.Rows > 0 {
		res.Payments = payments.Table()
	} else {
		res.Payments = project.Rows(mainTable, res.Mappings[schema.EntityPayment], schema.For(schema.EntityPayment))
	}

	// 5. cleaning
	e.cleaner.Parents(res.Parents, log)
	e.cleaner.Students(res.Students, log)
	e.cleaner.Payments(res.Payments, log)

	// 6. unresolved fields
	for _, en := range schema.Entities {
		for _, field := range res.Mappings[en].Unmapped(schema.For(en)) {
			log.Warn(diagnostic.CodeUnmappedField,
				"Could not find a column for '%s' in the %s data. This field will be empty.", field, en)
		}
	}

	logger.Debug().
		Int("parents", res.Parents.Len()).
		Int("students", res.Students.Len()).
		Int("payments", res.Payments.Len()).
		Int("warnings", len(log.Warnings())).
		Msg("reconciliation finished")

	return res
}
