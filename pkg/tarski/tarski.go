// Package tarski is a public shim over tarski/internal/kernel and its
// supporting packages, so external tools can drive a proof session without
// reaching into internal/. It only re-exports; it adds no behavior of its
// own.
package tarski

import (
	"tarski/internal/axiom"
	"tarski/internal/config"
	"tarski/internal/formula"
	"tarski/internal/kernel"
	"tarski/internal/logging"
	"tarski/internal/synformula"
	"tarski/internal/term"
)

// Engine re-exports the proof engine.
type (
	Engine = kernel.Engine
	Fact   = kernel.Fact
)

var New = kernel.New

// Formula re-exports the formula algebra's public surface.
type (
	Formula    = formula.Formula
	Predicate  = formula.Predicate
	Op         = formula.Op
	Universal  = formula.Universal
	Existential = formula.Existential
)

var (
	NewPredicate            = formula.NewPredicate
	NewPredicateApplication = formula.NewPredicateApplication
	NewUniversal            = formula.NewUniversal
	NewExistential          = formula.NewExistential
	Conjunction             = formula.Conjunction
	Disjunction             = formula.Disjunction
	Implies                 = formula.Implies
	Not                     = formula.Not
	Equal                   = formula.Equal
)

// Term re-exports the two term kinds.
type (
	FreeTerm  = term.FreeTerm
	BoundTerm = term.BoundTerm
)

var NewFree = term.NewFree

// Config, Load, and DefaultConfig re-export configuration loading.
type Config = config.Config

var (
	Load           = config.Load
	DefaultConfig  = config.DefaultConfig
)

// Logging re-exports the logger constructor.
var NewLogger = logging.New

// LoadAxioms re-exports the axiom bundle loader.
var LoadAxioms = axiom.Load

// ParseFormula re-exports the textual formula parser.
type SynEnv = synformula.Env

var (
	NewSynEnv    = synformula.NewEnv
	ParseFormula = synformula.Parse
)
