package services

import (
	"sort"

	"parcelrouting/internal/core/domain/model/department"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/model/rule"

	"github.com/shopspring/decimal"
)

// ResolutionSource tells where a resolved department name came from.
type ResolutionSource string

const (
	// SourceCustomRule marks a resolution made by an active business rule.
	SourceCustomRule ResolutionSource = "custom"
	// SourceDefaultBand marks a resolution made by the fixed default bands.
	SourceDefaultBand ResolutionSource = "default"
	// SourceNone marks a measurement no rule or band routes anywhere.
	SourceNone ResolutionSource = "none"
)

// ActiveRuleSource provides the active rules of a given type.
type ActiveRuleSource interface {
	GetActiveByType(ruleType rule.Type) []*rule.BusinessRule
}

// Resolution is the outcome of resolving a measurement.
type Resolution struct {
	RuleType    rule.Type
	Measurement decimal.Decimal
	Department  string
	Source      ResolutionSource
	// RuleID is set when Source is SourceCustomRule.
	RuleID *kernel.UUID
	// Ambiguous is set when several active rules matched and a tie-break picked one.
	Ambiguous bool
	// Candidates counts the matching active rules.
	Candidates int
}

// Found reports whether the measurement resolved to a department.
func (r Resolution) Found() bool {
	return r.Department != ""
}

// RuleResolver maps a measurement to a target department name.
//
// Algorithm:
//   - Collect the active rules of the requested type whose thresholds contain
//     the measurement
//   - When several match, pick the narrowest range, then the earliest
//     created rule, then the smallest identifier
//   - When none match, fall back to the default bands:
//     weight <= 1 -> Mail, weight <= 10 -> Regular, weight > 10 -> Heavy,
//     value > 1000 -> Insurance, any other value -> no department
//
// The resolver does not check that the department exists. Callers turning
// names into departments report unknown names as unresolvable.
type RuleResolver struct {
	rules ActiveRuleSource
}

// NewRuleResolver creates a RuleResolver reading rules from source.
// A nil source resolves with default bands only.
func NewRuleResolver(source ActiveRuleSource) *RuleResolver {
	return &RuleResolver{rules: source}
}

// Resolve maps measurement to a department name for ruleType.
//
// Returns:
//   - Resolution: the department (possibly none, for low values) and its origin
//   - error: when ruleType is not Weight or Value
func (r *RuleResolver) Resolve(ruleType rule.Type, measurement decimal.Decimal) (Resolution, error) {
	if err := ruleType.Validate(); err != nil {
		return Resolution{}, err
	}

	res := Resolution{RuleType: ruleType, Measurement: measurement}

	matches := r.matchingRules(ruleType, measurement)
	if len(matches) > 0 {
		best := matches[0]
		id := best.ID()
		res.Department = best.TargetDepartment()
		res.Source = SourceCustomRule
		res.RuleID = &id
		res.Candidates = len(matches)
		res.Ambiguous = len(matches) > 1
		return res, nil
	}

	res.Department = DefaultDepartment(ruleType, measurement)
	res.Source = SourceDefaultBand
	if res.Department == "" {
		res.Source = SourceNone
	}
	return res, nil
}

// DefaultDepartment applies the fixed default bands.
// It returns "" for values that do not require insurance.
func DefaultDepartment(ruleType rule.Type, measurement decimal.Decimal) string {
	switch ruleType {
	case rule.Weight:
		switch {
		case measurement.LessThanOrEqual(parcel.MailWeightLimit()):
			return department.Mail
		case measurement.LessThanOrEqual(parcel.RegularWeightLimit()):
			return department.Regular
		default:
			return department.Heavy
		}
	case rule.Value:
		if measurement.GreaterThan(parcel.InsuranceValueThreshold()) {
			return department.Insurance
		}
		return ""
	default:
		return ""
	}
}

// matchingRules returns the matching active rules, best candidate first.
func (r *RuleResolver) matchingRules(ruleType rule.Type, measurement decimal.Decimal) []*rule.BusinessRule {
	if r.rules == nil {
		return nil
	}

	var matches []*rule.BusinessRule
	for _, candidate := range r.rules.GetActiveByType(ruleType) {
		if candidate.Validate() != nil {
			continue
		}
		if candidate.Matches(ruleType, measurement) {
			matches = append(matches, candidate)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return precedes(matches[i], matches[j])
	})
	return matches
}

// precedes orders matching rules by narrowest range, then creation time, then identifier.
func precedes(a, b *rule.BusinessRule) bool {
	if a.Thresholds().IsNarrowerThan(b.Thresholds()) {
		return true
	}
	if b.Thresholds().IsNarrowerThan(a.Thresholds()) {
		return false
	}
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().Before(b.CreatedAt())
	}
	return a.ID().String() < b.ID().String()
}
