package rewrite

import (
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/match"
	"github.com/hupe1980/atomspace/space"
)

// Rule is a named pattern/template pair applied against a knowledge base
// via match.Match.
type Rule struct {
	Name     string
	Pattern  space.API
	Template space.API
}

// RuleSet is an ordered collection of Rules, grounded on the teacher's
// flow.BaseFlow processor-chain idiom.
type RuleSet struct {
	rules  []Rule
	logger logging.Logger
}

// Option configures a RuleSet.
type Option func(*RuleSet)

// WithLogger sets the logger used while applying rules.
func WithLogger(l logging.Logger) Option {
	return func(rs *RuleSet) { rs.logger = l }
}

// New constructs an empty RuleSet.
func New(opts ...Option) *RuleSet {
	rs := &RuleSet{logger: logging.NoOpLogger{}}
	for _, o := range opts {
		o(rs)
	}
	return rs
}

// Add registers a rule, appending it to the end of the application order.
func (rs *RuleSet) Add(rule Rule) *RuleSet {
	rs.rules = append(rs.rules, rule)
	return rs
}

// Apply runs every registered rule against kb in registration order,
// appending each rule's matches to out in turn. A rule whose pattern or
// template space is malformed aborts the whole Apply call; rules already
// applied have already written their results into out.
func (rs *RuleSet) Apply(kb *space.Space, out *space.Space) error {
	for _, rule := range rs.rules {
		rs.logger.Trace("rewrite.RuleSet.Apply: applying rule", "rule", rule.Name)
		if err := match.Match(kb, rule.Pattern, rule.Template, out, match.WithLogger(rs.logger)); err != nil {
			rs.logger.Debug("rewrite.RuleSet.Apply: rule failed", "rule", rule.Name, "error", err.Error())
			return err
		}
	}
	return nil
}

// Len reports the number of registered rules.
func (rs *RuleSet) Len() int { return len(rs.rules) }
