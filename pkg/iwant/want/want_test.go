package want

import (
	"slices"
	"testing"

	"github.com/ib-77/iwant/pkg/iwant"
	"github.com/stretchr/testify/assert"
)

func TestUnwrap(t *testing.T) {
	t.Parallel()

	v, ok := Unwrap[int](iwant.Some(4))
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	v, ok = Unwrap[int](iwant.None[int]())
	assert.False(t, ok)
	assert.Zero(t, v)

	var nilCarrier iwant.Carrier[int]
	_, ok = Unwrap(nilCarrier)
	assert.False(t, ok)
}

type rows []int

func (r rows) IsWanted() bool { return true }
func (r rows) Unwrap() []int  { return r }

func TestUnwrap_NilSliceCarrierAsked(t *testing.T) {
	t.Parallel()
	var empty rows
	called := false

	v, ok := UnwrapOrDo[[]int](empty, func() { called = true })
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.False(t, called)
}

func TestUnwrapOrDo_WantedSkipsFallback(t *testing.T) {
	t.Parallel()
	called := 0

	v, ok := UnwrapOrDo[int](iwant.Success(8), func() { called++ })
	assert.True(t, ok)
	assert.Equal(t, 8, v)
	assert.Zero(t, called)
}

func TestUnwrapOrDo_UnwantedRunsFallbackOnce(t *testing.T) {
	t.Parallel()
	called := 0

	_, ok := UnwrapOrDo[int](iwant.None[int](), func() { called++ })
	assert.False(t, ok)
	assert.Equal(t, 1, called)

	_, ok = UnwrapOrDo[int](iwant.None[int](), nil)
	assert.False(t, ok)
}

func TestUnwrapOrDo_LoopContinue(t *testing.T) {
	t.Parallel()
	headers := []map[string]string{
		{"name": "file"},
		{},
		{"name": "title"},
	}

	var keys []string
	skipped := 0
	for _, h := range headers {
		key, ok := UnwrapOrDo[string](iwant.FromKey(h, "name"), func() { skipped++ })
		if !ok {
			continue
		}
		keys = append(keys, key)
	}

	assert.Equal(t, []string{"file", "title"}, keys)
	assert.Equal(t, 1, skipped)
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, UnwrapOr[int](iwant.Some(1), 9))
	assert.Equal(t, 9, UnwrapOr[int](iwant.None[int](), 9))
}

func TestMatch(t *testing.T) {
	t.Parallel()
	onWanted := func(v int) string { return "val" }
	onUnwanted := func() string { return "none" }

	assert.Equal(t, "val", Match[int](iwant.Some(1), onWanted, onUnwanted))
	assert.Equal(t, "none", Match[int](iwant.Fail[int](nil), onWanted, onUnwanted))
}

func TestRequire(t *testing.T) {
	t.Parallel()
	called := false

	assert.True(t, Require(2+2 == 4, func() { called = true }))
	assert.False(t, called)

	assert.False(t, Require(2+2 == 5, func() { called = true }))
	assert.True(t, called)
}

func TestWanted(t *testing.T) {
	t.Parallel()
	opts := []iwant.Option[int]{iwant.Some(1), iwant.None[int](), iwant.Some(3), iwant.Some(4)}

	got := slices.Collect(Wanted[int](slices.Values(opts)))
	assert.Equal(t, []int{1, 3, 4}, got)

	var first []int
	for v := range Wanted[int](slices.Values(opts)) {
		first = append(first, v)
		break
	}
	assert.Equal(t, []int{1}, first)
}

func TestCollect(t *testing.T) {
	t.Parallel()
	results := []iwant.Result[string]{
		iwant.Success("a"),
		iwant.Fail[string](nil),
		iwant.Success("b"),
	}

	got, skipped := Collect[string](results)
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, skipped)
}

func TestAllAny(t *testing.T) {
	t.Parallel()
	assert.True(t, All())
	assert.False(t, Any())

	assert.True(t, All(iwant.Some(1), iwant.Cond(true), iwant.Success("x")))
	assert.False(t, All(iwant.Some(1), iwant.Cond(false)))

	assert.True(t, Any(iwant.None[int](), iwant.Cond(true)))
	assert.False(t, Any(iwant.None[int](), iwant.Cond(false)))
}
