package criteria_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"linuxea.github.com/criteria/criteria"
)

func TestBuilderIdentity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		items []person
	}{
		{name: "non-empty input", items: people()},
		{name: "empty input", items: []person{}},
		{name: "nil input", items: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := criteria.NewBuilder[person]().Build().Evaluate(tc.items)

			require.NoError(t, err)
			require.Equal(t, tc.items, got)
		})
	}
}

func TestBuilderFoldsCriteriaThenSorts(t *testing.T) {
	t.Parallel()

	a := adults()
	b := criteria.New(func(p person) bool { return p.Age < 40 })
	order := byAge(criteria.Descending)

	got, err := criteria.NewBuilder[person]().
		AddCriteria(a).
		AddCriteria(b).
		SetOrderBy(order).
		Build().
		Evaluate(people())
	require.NoError(t, err)

	// 组合结果等价于手工依次求值再排序
	narrowed, err := a.Evaluate(people())
	require.NoError(t, err)
	narrowed, err = b.Evaluate(narrowed)
	require.NoError(t, err)
	want := order.Apply(narrowed)

	require.Equal(t, want, got)
	require.Equal(t, []person{
		{Name: "Charlie", Age: 35},
		{Name: "Alex", Age: 35},
		{Name: "Dave", Age: 29},
		{Name: "Alice", Age: 24},
	}, got)
}

func TestBuilderSetOrderByKeepsLast(t *testing.T) {
	t.Parallel()

	got, err := criteria.NewBuilder[person]().
		SetOrderBy(byAge(criteria.Descending)).
		SetOrderBy(byAge(criteria.Ascending)).
		Build().
		Evaluate([]person{
			{Name: "Frank", Age: 41},
			{Name: "Alice", Age: 24},
		})

	require.NoError(t, err)
	require.Equal(t, []person{
		{Name: "Alice", Age: 24},
		{Name: "Frank", Age: 41},
	}, got)
}

func TestBuildSnapshotsChain(t *testing.T) {
	t.Parallel()

	b := criteria.NewBuilder[person]().AddCriteria(adults())
	built := b.Build()

	// 构建后继续修改 Builder，已构建的组合不受影响
	b.AddCriteria(criteria.New(func(p person) bool { return false }))
	b.SetOrderBy(byAge(criteria.Descending))

	got, err := built.Evaluate(people())
	require.NoError(t, err)

	want, err := adults().Evaluate(people())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestBuilderIsReusable(t *testing.T) {
	t.Parallel()

	b := criteria.NewBuilder[person]().AddCriteria(adults())

	first := b.Build()
	second := b.AddCriteria(criteria.New(func(p person) bool { return p.Age < 30 })).Build()

	gotFirst, err := first.Evaluate(people())
	require.NoError(t, err)
	require.Len(t, gotFirst, 5)

	gotSecond, err := second.Evaluate(people())
	require.NoError(t, err)
	require.Equal(t, []person{
		{Name: "Alice", Age: 24},
		{Name: "Dave", Age: 29},
	}, gotSecond)
}

func TestBuilderPropagatesErrors(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	got, err := criteria.NewBuilder[person]().
		AddCriteria(adults()).
		AddCriteria(failingCriteria{err: errBoom}).
		Build().
		Evaluate(people())

	require.ErrorIs(t, err, errBoom)
	require.Nil(t, got)
}

func TestBuilderEvaluatesEveryStage(t *testing.T) {
	t.Parallel()

	errNoMatch := errors.New("no match")
	none := criteria.New(func(p person) bool { return false })
	guard := criteria.NonEmpty(adults(), errNoMatch)

	// 前一个条件把序列过滤为空后，后续条件仍要求值：
	// NonEmpty 这类非纯过滤条件必须观察到空序列
	got, err := criteria.NewBuilder[person]().
		AddCriteria(none).
		AddCriteria(guard).
		Build().
		Evaluate(people())

	require.ErrorIs(t, err, errNoMatch)
	require.Nil(t, got)

	// 与手工依次求值结果一致
	narrowed, err := none.Evaluate(people())
	require.NoError(t, err)
	_, wantErr := guard.Evaluate(narrowed)
	require.ErrorIs(t, wantErr, errNoMatch)
}
