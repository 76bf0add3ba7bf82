package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type child struct {
	ID   string
	Name string
}

type memStore struct {
	rows   map[string]map[string]child
	failOn string
	calls  []string
}

func newMemStore() *memStore {
	return &memStore{rows: map[string]map[string]child{}}
}

func (m *memStore) seed(parent string, children ...child) {
	if m.rows[parent] == nil {
		m.rows[parent] = map[string]child{}
	}
	for _, c := range children {
		m.rows[parent][c.ID] = c
	}
}

func (m *memStore) ExistingIDs(_ context.Context, parent string) ([]string, error) {
	ids := make([]string, 0, len(m.rows[parent]))
	for id := range m.rows[parent] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (m *memStore) Insert(_ context.Context, parent string, c child) error {
	m.calls = append(m.calls, "insert:"+c.ID)
	if m.failOn == "insert" {
		return errors.New("constraint failed")
	}
	m.seed(parent, c)
	return nil
}

func (m *memStore) Update(_ context.Context, parent string, c child) error {
	m.calls = append(m.calls, "update:"+c.ID)
	if m.failOn == "update" {
		return errors.New("constraint failed")
	}
	m.rows[parent][c.ID] = c
	return nil
}

func (m *memStore) Delete(_ context.Context, parent string, ids []string) error {
	m.calls = append(m.calls, fmt.Sprintf("delete:%v", ids))
	if m.failOn == "delete" {
		return errors.New("constraint failed")
	}
	for _, id := range ids {
		delete(m.rows[parent], id)
	}
	return nil
}

type recordingObserver struct {
	relation string
	result   Result
}

func (r *recordingObserver) ObserveReconcile(relation string, result Result) {
	r.relation = relation
	r.result = result
}

func sequence(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func relation(store Store[child], policy Policy) Relation[child] {
	return Relation[child]{
		Name:   "children",
		Policy: policy,
		Store:  store,
		ID:     func(c child) string { return c.ID },
		WithID: func(c child, id string) child { c.ID = id; return c },
		Valid:  func(c child) bool { return c.Name != "" },
	}
}

func TestBuildPlanPartialSurvivor(t *testing.T) {
	rel := relation(nil, PartialSurvivor)
	submitted := []child{
		{ID: "1", Name: "updated"},
		{Name: "new"},
		{Name: ""},
		{ID: "9", Name: "foreign"},
		{ID: "4"},
	}

	plan := BuildPlan(rel, []string{"1", "2", "3", "4"}, submitted, sequence("n"))

	assert.Equal(t, []child{{ID: "1", Name: "updated"}}, plan.Updates)
	assert.Equal(t, []child{{ID: "n1", Name: "new"}}, plan.Inserts)
	assert.Equal(t, []string{"2", "3"}, plan.Deletes)
	assert.Equal(t, []string{"4"}, plan.Kept)
	assert.Equal(t, []string{"9"}, plan.Stale)
	assert.Equal(t, 1, plan.Skipped)
}

func TestBuildPlanEmptySubmissionDeletesAll(t *testing.T) {
	plan := BuildPlan(relation(nil, PartialSurvivor), []string{"1", "2"}, []child{}, sequence("n"))
	assert.Equal(t, []string{"1", "2"}, plan.Deletes)
	assert.Empty(t, plan.Inserts)
	assert.Empty(t, plan.Updates)
}

func TestBuildPlanFullReplaceIgnoresSubmittedIDs(t *testing.T) {
	submitted := []child{{ID: "A", Name: "X"}, {Name: ""}, {Name: "Y"}}

	plan := BuildPlan(relation(nil, FullReplace), []string{"A", "B"}, submitted, sequence("n"))

	assert.Equal(t, []string{"A", "B"}, plan.Deletes)
	assert.Equal(t, []child{{ID: "n1", Name: "X"}, {ID: "n2", Name: "Y"}}, plan.Inserts)
	assert.Empty(t, plan.Updates)
	assert.Equal(t, 1, plan.Skipped)
}

func TestBuildPlanDuplicateMentionUpdatesOnce(t *testing.T) {
	submitted := []child{{ID: "1", Name: "first"}, {ID: "1", Name: "second"}}
	plan := BuildPlan(relation(nil, PartialSurvivor), []string{"1"}, submitted, sequence("n"))
	assert.Equal(t, []child{{ID: "1", Name: "first"}}, plan.Updates)
	assert.Equal(t, 1, plan.Skipped)
	assert.Empty(t, plan.Deletes)
}

func TestReconcilePartialSurvivorLeavesTwoRows(t *testing.T) {
	store := newMemStore()
	store.seed("p1", child{ID: "1", Name: "one"}, child{ID: "2", Name: "two"}, child{ID: "3", Name: "three"})
	store.seed("p2", child{ID: "x", Name: "other parent"})
	obs := &recordingObserver{}
	engine := NewEngine(nil, WithIDGenerator(sequence("n")), WithObserver(obs))

	res, err := Reconcile(context.Background(), engine, relation(store, PartialSurvivor), "p1",
		[]child{{ID: "1", Name: "one updated"}, {Name: "new"}})
	require.NoError(t, err)

	assert.Equal(t, Result{Inserted: 1, Updated: 1, Deleted: 2}, res)
	assert.Equal(t, map[string]child{
		"1":  {ID: "1", Name: "one updated"},
		"n1": {ID: "n1", Name: "new"},
	}, store.rows["p1"])
	assert.Len(t, store.rows["p2"], 1)
	assert.Equal(t, []string{"delete:[2 3]", "update:1", "insert:n1"}, store.calls)
	assert.Equal(t, "children", obs.relation)
	assert.Equal(t, res, obs.result)
}

func TestReconcileFullReplace(t *testing.T) {
	store := newMemStore()
	store.seed("course-1", child{ID: "A", Name: "a"}, child{ID: "B", Name: "b"})
	engine := NewEngine(nil, WithIDGenerator(sequence("fresh-")))

	res, err := Reconcile(context.Background(), engine, relation(store, FullReplace), "course-1",
		[]child{{Name: "X"}})
	require.NoError(t, err)

	assert.Equal(t, Result{Inserted: 1, Deleted: 2}, res)
	assert.Equal(t, map[string]child{"fresh-1": {ID: "fresh-1", Name: "X"}}, store.rows["course-1"])
}

func TestReconcileStopsAtFirstFailure(t *testing.T) {
	store := newMemStore()
	store.seed("p1", child{ID: "1", Name: "one"}, child{ID: "2", Name: "two"})
	store.failOn = "update"
	engine := NewEngine(nil, WithIDGenerator(sequence("n")))

	res, err := Reconcile(context.Background(), engine, relation(store, PartialSurvivor), "p1",
		[]child{{ID: "1", Name: "changed"}, {Name: "new"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint failed")

	assert.Equal(t, 1, res.Deleted)
	assert.Zero(t, res.Inserted)
	assert.NotContains(t, store.rows["p1"], "2")
	assert.NotContains(t, store.rows["p1"], "n1")
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "partial_survivor", PartialSurvivor.String())
	assert.Equal(t, "full_replace", FullReplace.String())
	assert.Equal(t, "policy(7)", Policy(7).String())
}
