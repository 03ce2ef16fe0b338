package enum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainkit/pkg/enum"
	"github.com/dmitrymomot/domainkit/pkg/guard"
)

type status int

const (
	active status = iota + 1
	suspended
	closed
)

var statuses = enum.NewSet(map[status]string{
	active:    "Active",
	suspended: "Suspended",
	closed:    "Closed",
})

func TestSet(t *testing.T) {
	t.Parallel()

	t.Run("defined", func(t *testing.T) {
		assert.True(t, statuses.Defined(active))
		assert.False(t, statuses.Defined(status(99)))
	})

	t.Run("description", func(t *testing.T) {
		desc, ok := statuses.Description(suspended)
		require.True(t, ok)
		assert.Equal(t, "Suspended", desc)

		_, ok = statuses.Description(status(99))
		assert.False(t, ok)
	})

	t.Run("values", func(t *testing.T) {
		assert.ElementsMatch(t, []status{active, suspended, closed}, statuses.Values())
		assert.Equal(t, 3, statuses.Len())
	})

	t.Run("values returns a copy", func(t *testing.T) {
		vs := statuses.Values()
		vs[0] = status(99)
		assert.ElementsMatch(t, []status{active, suspended, closed}, statuses.Values())
	})

	t.Run("parse by description", func(t *testing.T) {
		v, ok := statuses.Parse("Closed")
		require.True(t, ok)
		assert.Equal(t, closed, v)

		_, ok = statuses.Parse("Unknown")
		assert.False(t, ok)
	})

	t.Run("input map is not retained", func(t *testing.T) {
		src := map[string]string{"a": "A"}
		set := enum.NewSet(src)
		src["b"] = "B"
		assert.Equal(t, 1, set.Len())
	})
}

func TestSetBacksGuard(t *testing.T) {
	t.Parallel()

	assert.NoError(t, guard.AgainstUndefinedEnum("status", active, statuses.Values()))

	err := guard.AgainstUndefinedEnum("status", status(42), statuses.Values())
	require.Error(t, err)
	assert.ErrorIs(t, err, guard.ErrOutOfRange)
}
