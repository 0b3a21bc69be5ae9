package queries

import (
	"context"
	"sort"

	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/core/domain/services"
)

// ClassificationView is the outcome of a dry-run classification.
type ClassificationView struct {
	Weight            services.Resolution
	Value             services.Resolution
	RequiresInsurance bool
	// Departments lists the resolved department names ordered by name.
	Departments []string
}

// ClassifyParcelQueryHandler runs the rule resolver without touching any parcel.
type ClassifyParcelQueryHandler struct {
	resolver *services.RuleResolver
}

// NewClassifyParcelQueryHandler creates the handler.
func NewClassifyParcelQueryHandler(resolver *services.RuleResolver) ClassifyParcelQueryHandler {
	return ClassifyParcelQueryHandler{resolver: resolver}
}

// Handle resolves both measurements with the active rules and default bands.
// Department names are not checked against the directory.
func (h ClassifyParcelQueryHandler) Handle(_ context.Context, query ClassifyParcelQuery) (ClassificationView, error) {
	if err := query.Validate(); err != nil {
		return ClassificationView{}, err
	}

	weight, err := h.resolver.Resolve(rule.Weight, query.Weight())
	if err != nil {
		return ClassificationView{}, err
	}
	value, err := h.resolver.Resolve(rule.Value, query.Value())
	if err != nil {
		return ClassificationView{}, err
	}

	view := ClassificationView{
		Weight:            weight,
		Value:             value,
		RequiresInsurance: query.RequiresInsurance(),
		Departments:       []string{},
	}
	for _, res := range []services.Resolution{weight, value} {
		if res.Found() && !contains(view.Departments, res.Department) {
			view.Departments = append(view.Departments, res.Department)
		}
	}
	sort.Strings(view.Departments)
	return view, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
