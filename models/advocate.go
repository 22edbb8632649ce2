package models

import (
	"slices"
	"time"

	"github.com/hashicorp/go-set/v2"
)

// Advocate is the projection of an identity-provider user the assignment
// engine needs: verification, activity and specializations.
type Advocate struct {
	UserId         UserId
	Role           Role
	Verified       bool
	Active         bool
	Tags           []string
	LastAssignedAt *time.Time
}

// EligibleFor applies the assignment eligibility filter: the advocate must be
// verified and active, and share at least one specialization tag with the
// case. A case with no tags matches any advocate.
func (a Advocate) EligibleFor(caseTags []string) bool {
	if !a.Verified || !a.Active || a.Role != ADVOCATE {
		return false
	}
	if len(caseTags) == 0 {
		return true
	}
	return !set.From(a.Tags).Intersect(set.From(caseTags)).Empty()
}

// AdvocateWithCaseLoad carries the derived workload used for load-balanced
// selection.
type AdvocateWithCaseLoad struct {
	Advocate
	ActiveCaseCount int
}

// SelectAdvocateForAssignment picks the winner among the candidates: eligible
// for the case tags, fewest active cases, ties broken by least recently
// assigned with never-assigned first. The second return is false when no
// candidate passes the eligibility filter.
func SelectAdvocateForAssignment(candidates []AdvocateWithCaseLoad, caseTags []string) (Advocate, bool) {
	eligible := make([]AdvocateWithCaseLoad, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.EligibleFor(caseTags) {
			eligible = append(eligible, candidate)
		}
	}
	if len(eligible) == 0 {
		return Advocate{}, false
	}

	slices.SortStableFunc(eligible, func(a, b AdvocateWithCaseLoad) int {
		if a.ActiveCaseCount != b.ActiveCaseCount {
			return a.ActiveCaseCount - b.ActiveCaseCount
		}
		switch {
		case a.LastAssignedAt == nil && b.LastAssignedAt == nil:
			return 0
		case a.LastAssignedAt == nil:
			return -1
		case b.LastAssignedAt == nil:
			return 1
		default:
			return a.LastAssignedAt.Compare(*b.LastAssignedAt)
		}
	})
	return eligible[0].Advocate, true
}
