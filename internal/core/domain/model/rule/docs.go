// Package rule models configurable classification rules.
//
// A BusinessRule routes parcels whose weight or value falls inside its
// threshold interval to a target department, addressed by name. Custom rules
// take precedence over the fixed default bands applied by the rule resolver.
//
// Key business rules:
//   - The rule type is either Weight or Value
//   - The minimum threshold is inclusive and never negative
//   - The maximum threshold is inclusive and optional (absent = unbounded above)
//   - minimum <= maximum when the maximum is present
//   - Only active rules take part in resolution
package rule
