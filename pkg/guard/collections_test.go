package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainkit/pkg/guard"
)

func TestAgainstEmptySlice(t *testing.T) {
	t.Parallel()

	t.Run("passes for populated slice", func(t *testing.T) {
		assert.NoError(t, guard.AgainstEmptySlice("items", []int{1}))
	})

	t.Run("fails for nil slice", func(t *testing.T) {
		err := guard.AgainstEmptySlice[string]("items", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrEmptyCollection)
	})

	t.Run("fails for empty slice", func(t *testing.T) {
		err := guard.AgainstEmptySlice("items", []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "slice")
	})
}

func TestAgainstEmptyMap(t *testing.T) {
	t.Parallel()

	t.Run("passes for populated map", func(t *testing.T) {
		assert.NoError(t, guard.AgainstEmptyMap("index", map[string]int{"a": 1}))
	})

	t.Run("fails for nil map", func(t *testing.T) {
		var m map[string]int
		err := guard.AgainstEmptyMap("index", m)
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrEmptyCollection)
	})

	t.Run("fails for empty map with kind in message", func(t *testing.T) {
		err := guard.AgainstEmptyMap("index", map[int]int{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "index")
		assert.Contains(t, err.Error(), "map")

		var emptyErr *guard.EmptyCollectionError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, "map", emptyErr.Kind)
	})
}
