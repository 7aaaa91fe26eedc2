package ptrx_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/delamain/pkg/ptrx"
)

var errMissingName = errors.New("missing name")

func TestValueHelpers(t *testing.T) {
	t.Parallel()

	var absent *string
	present := ptrx.To("ana")

	assert.Equal(t, "", ptrx.Value(absent))
	assert.Equal(t, "ana", ptrx.Value(present))
	assert.Equal(t, "anonymous", ptrx.ValueOr(absent, "anonymous"))
	assert.Equal(t, "ana", ptrx.ValueOr(present, "anonymous"))
	assert.True(t, ptrx.IsNil(absent))
	assert.True(t, ptrx.IsNotNil(present))
}

func TestValueOrElse_IsLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	load := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 7, ptrx.ValueOrElse(ptrx.To(7), load))
	assert.Zero(t, calls, "default must not run when a value is present")

	assert.Equal(t, 42, ptrx.ValueOrElse[int](nil, load))
	assert.Equal(t, 1, calls)
}

func TestOrError(t *testing.T) {
	t.Parallel()

	v, err := ptrx.OrError(ptrx.To("bob"), errMissingName)
	require.NoError(t, err)
	assert.Equal(t, "bob", v)

	_, err = ptrx.OrError[string](nil, errMissingName)
	assert.ErrorIs(t, err, errMissingName)

	built := 0
	_, err = ptrx.OrErrorFunc(ptrx.To(1), func() error { built++; return errMissingName })
	require.NoError(t, err)
	assert.Zero(t, built)

	_, err = ptrx.OrErrorFunc[int](nil, func() error { built++; return errMissingName })
	assert.ErrorIs(t, err, errMissingName)
	assert.Equal(t, 1, built)
}

func TestApplyAndMap(t *testing.T) {
	t.Parallel()

	var seen []int
	ptrx.Apply(ptrx.To(3), func(v int) { seen = append(seen, v) })
	ptrx.Apply[int](nil, func(v int) { seen = append(seen, v) })
	assert.Equal(t, []int{3}, seen)

	assert.Equal(t, "12", *ptrx.Map(ptrx.To(12), strconv.Itoa))
	assert.Nil(t, ptrx.Map[int](nil, strconv.Itoa))
}

func TestToSlice_Copies(t *testing.T) {
	t.Parallel()

	in := []int{1, 2}
	ps := ptrx.ToSlice(in)
	*ps[0] = 99

	assert.Equal(t, []int{1, 2}, in)
	assert.Equal(t, 2, *ps[1])
}
