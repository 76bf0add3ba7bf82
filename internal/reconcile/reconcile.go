// Package reconcile brings a parent's stored child rows in line with a submitted list.
//
// Two policies are supported. PartialSurvivor matches submitted children to stored ones by id:
// mentioned rows are updated, new entries are inserted and stored rows that are not mentioned are
// deleted. FullReplace drops every stored child of the parent and inserts the submission with fresh
// ids. Entries without their mandatory content are skipped under both policies.
//
// Steps run one statement at a time and stop at the first failure. Writes already made are not undone.
package reconcile

import "fmt"

// Policy selects how submitted children are matched against stored ones.
type Policy int

const (
	PartialSurvivor Policy = iota
	FullReplace
)

func (p Policy) String() string {
	switch p {
	case PartialSurvivor:
		return "partial_survivor"
	case FullReplace:
		return "full_replace"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Relation describes one parent to child collection.
type Relation[C any] struct {
	Name   string
	Policy Policy
	Store  Store[C]
	// ID returns the id a submitted child carries, empty for new entries.
	ID func(C) string
	// WithID returns a copy of the child carrying id.
	WithID func(C, string) C
	// Valid reports whether the child has its mandatory content.
	Valid func(C) bool
}

// Plan is the set of writes needed to make stored children match a submission.
type Plan[C any] struct {
	Deletes []string
	Updates []C
	Inserts []C
	// Kept holds mentioned ids whose entry lacked content; the stored row is left as is.
	Kept []string
	// Stale holds submitted ids that are not children of the parent. They are ignored.
	Stale   []string
	Skipped int
}

// Result counts what a reconciliation did.
type Result struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Deleted  int `json:"deleted"`
	Kept     int `json:"kept"`
	Skipped  int `json:"skipped"`
	Stale    int `json:"stale"`
}

// BuildPlan computes the writes for submitted against the ids currently stored under the parent.
// Inserted children receive ids from newID.
func BuildPlan[C any](rel Relation[C], existing []string, submitted []C, newID func() string) Plan[C] {
	if rel.Policy == FullReplace {
		return buildReplacePlan(rel, existing, submitted, newID)
	}
	return buildSurvivorPlan(rel, existing, submitted, newID)
}

func buildSurvivorPlan[C any](rel Relation[C], existing []string, submitted []C, newID func() string) Plan[C] {
	var plan Plan[C]

	stored := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		stored[id] = struct{}{}
	}

	mentioned := make(map[string]struct{}, len(submitted))
	for _, child := range submitted {
		id := rel.ID(child)
		valid := rel.Valid(child)

		if id == "" {
			if !valid {
				plan.Skipped++
				continue
			}
			plan.Inserts = append(plan.Inserts, rel.WithID(child, newID()))
			continue
		}

		if _, ok := stored[id]; !ok {
			plan.Stale = append(plan.Stale, id)
			continue
		}
		if _, seen := mentioned[id]; seen {
			plan.Skipped++
			continue
		}
		mentioned[id] = struct{}{}

		if valid {
			plan.Updates = append(plan.Updates, child)
		} else {
			plan.Kept = append(plan.Kept, id)
		}
	}

	for _, id := range existing {
		if _, ok := mentioned[id]; !ok {
			plan.Deletes = append(plan.Deletes, id)
		}
	}

	return plan
}

func buildReplacePlan[C any](rel Relation[C], existing []string, submitted []C, newID func() string) Plan[C] {
	plan := Plan[C]{Deletes: append([]string(nil), existing...)}
	for _, child := range submitted {
		if !rel.Valid(child) {
			plan.Skipped++
			continue
		}
		plan.Inserts = append(plan.Inserts, rel.WithID(child, newID()))
	}
	return plan
}
