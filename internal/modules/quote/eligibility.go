// README: Region eligibility check against the serviced-state allow-list.
package quote

import "strings"

// ServiceArea is the fixed set of serviced top-level administrative
// divisions. Matching is case-insensitive and exact; no fuzzy or
// partial matches.
type ServiceArea struct {
	states map[string]struct{}
}

func NewServiceArea(states []string) *ServiceArea {
	set := make(map[string]struct{}, len(states))
	for _, s := range states {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	return &ServiceArea{states: set}
}

// Contains reports whether the place lies inside the serviced area.
// Only top-level components count: a city named after an allow-listed
// state must not satisfy the check.
func (a *ServiceArea) Contains(p ResolvedPlace) bool {
	for _, c := range p.Regions {
		if !c.TopLevel {
			continue
		}
		if _, ok := a.states[strings.ToLower(c.Label)]; ok {
			return true
		}
	}
	return false
}
