package guard_test

import (
	"errors"
	"sync"
	"testing"

	"parcelrouting/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Parcel must be created via NewParcel")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardUsage shows the guard embedded in a domain value.
func TestConstructorGuardUsage(t *testing.T) {
	type shelf struct {
		label string
		guard guard.ConstructorGuard
	}
	errShelfNotConstructed := errors.New("shelf must be created via newShelf")

	newShelf := func(label string) (shelf, error) {
		if label == "" {
			return shelf{}, errors.New("label is required")
		}
		return shelf{label: label, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		s, err := newShelf("A-1")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errShelfNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		s, err := newShelf("")

		require.Error(t, err)
		assert.Equal(t, errShelfNotConstructed, s.guard.Validate(errShelfNotConstructed))
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		s, _ := newShelf("B-2")
		cp := s

		require.NoError(t, cp.guard.Validate(errShelfNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				assert.NoError(t, g.Validate(errors.New("not constructed")))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
