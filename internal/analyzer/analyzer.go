// Package analyzer owns the line loop: it wires the pre-scanner, the
// token classifier and the example store together and keeps the global
// run counters.
package analyzer

import (
	"context"
	"io"

	"textcheck/internal/input"
	"textcheck/internal/lang"
	"textcheck/internal/prescan"
	"textcheck/internal/profile"
	"textcheck/internal/store"
	"textcheck/internal/tokclass"
)

// Configuration defaults and hard caps.
const (
	DefaultMaxExamples  = 20
	CapMaxExamples      = 1000
	DefaultMaxLocations = 10
	CapMaxLocations     = 100
	DefaultLongTokenMin = 20
)

// Config is immutable after Validate.
type Config struct {
	LangCode     string
	MaxExamples  int
	MaxLocations int
	ShowAll      bool
	SentenceIDs  bool
	LongTokenMin int
	WithProfile  bool
}

// Validate normalizes the language code and clamps out-of-range values,
// reporting each adjustment through warn. Anomalous configuration is
// never fatal.
func (c *Config) Validate(warn func(format string, args ...any)) {
	if c.MaxExamples <= 0 {
		c.MaxExamples = DefaultMaxExamples
	} else if c.MaxExamples > CapMaxExamples {
		warn("max-examples %d exceeds cap %d; using default %d",
			c.MaxExamples, CapMaxExamples, DefaultMaxExamples)
		c.MaxExamples = DefaultMaxExamples
	}
	if c.MaxLocations <= 0 {
		c.MaxLocations = DefaultMaxLocations
	} else if c.MaxLocations > CapMaxLocations {
		warn("max-locations %d exceeds cap %d; using default %d",
			c.MaxLocations, CapMaxLocations, DefaultMaxLocations)
		c.MaxLocations = DefaultMaxLocations
	}
	if c.LongTokenMin <= 0 {
		c.LongTokenMin = DefaultLongTokenMin
	}
	if c.LangCode != "" {
		if !lang.Valid(c.LangCode) {
			warn("unknown language code %q; no language policy applied", c.LangCode)
			c.LangCode = ""
		} else {
			c.LangCode = lang.Normalize(c.LangCode)
		}
	}
}

// Analyzer is the per-run state. It is single-threaded; parallel runs
// use one Analyzer per shard and merge.
type Analyzer struct {
	Cfg    Config
	Policy *lang.Policy
	Store  *store.Store

	Lines      uint64
	Tokens     uint64
	FastTrack  uint64
	Characters uint64

	tokens  *tokclass.Classifier
	collect *profile.Collector
}

// New builds an analyzer from a validated config.
func New(cfg Config) *Analyzer {
	policy := lang.For(cfg.LangCode)
	a := &Analyzer{
		Cfg:    cfg,
		Policy: policy,
		Store:  store.New(cfg.MaxExamples, cfg.MaxLocations),
		tokens: tokclass.New(policy, cfg.LongTokenMin),
	}
	if cfg.WithProfile {
		a.collect = profile.NewCollector()
	}
	return a
}

// NewWithPolicy builds an analyzer with a caller-adjusted policy
// (config-file overrides applied on top of the built-in tables).
func NewWithPolicy(cfg Config, policy *lang.Policy) *Analyzer {
	a := New(cfg)
	a.Policy = policy
	a.tokens = tokclass.New(policy, cfg.LongTokenMin)
	return a
}

// Profile returns the structured-dump collector, or nil when profiling
// is disabled.
func (a *Analyzer) Profile() *profile.Collector { return a.collect }

// ProcessLine classifies one normalized line.
func (a *Analyzer) ProcessLine(ln input.Line) {
	a.Lines++
	a.Characters += ln.RuneCount

	cleaned, matches := prescan.Scan(ln.Text)
	for _, m := range matches {
		a.Store.Note(m.Tag, input.Normalize(m.Text), ln.Location, store.ModeUnconditional, "")
	}
	if len(matches) > 0 {
		cleaned = input.Normalize(cleaned)
	}
	for _, token := range input.Split(cleaned) {
		a.Tokens++
		a.Store.ResetToken()
		if a.tokens.Classify(token, ln.Location, a.Store) {
			a.FastTrack++
		}
		if a.collect != nil {
			a.collect.Token(token, ln.Location)
		}
	}
}

// Run drives the line loop over r until end of input or cancellation.
// Cancellation is cooperative at line granularity: the analyzer stops
// between lines and the partial aggregate remains valid for reporting.
func (a *Analyzer) Run(ctx context.Context, r io.Reader) error {
	rd := input.NewReader(r, a.Cfg.SentenceIDs)
	for {
		if ctx.Err() != nil {
			return nil
		}
		ln, ok, err := rd.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		a.ProcessLine(ln)
	}
}

// Merge folds a shard analyzer into a: counters summed, stores merged
// per the sharding model, profiles merged when both collect.
func (a *Analyzer) Merge(shard *Analyzer) {
	a.Lines += shard.Lines
	a.Tokens += shard.Tokens
	a.FastTrack += shard.FastTrack
	a.Characters += shard.Characters
	a.Store.Merge(shard.Store)
	if a.collect != nil && shard.collect != nil {
		a.collect.Merge(shard.collect)
	}
}
