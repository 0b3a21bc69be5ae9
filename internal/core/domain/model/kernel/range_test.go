package kernel_test

import (
	"testing"

	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestNewRange(t *testing.T) {
	t.Run("bounded", func(t *testing.T) {
		r, err := kernel.NewRange(dec("0"), ptr(dec("2")))

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsBounded())
		assert.Equal(t, "[0, 2]", r.String())
	})

	t.Run("unbounded", func(t *testing.T) {
		r, err := kernel.NewRange(dec("10"), nil)

		require.NoError(t, err)
		assert.False(t, r.IsBounded())
		assert.Nil(t, r.Max())
		assert.Equal(t, "[10, +inf)", r.String())
	})

	t.Run("min equal to max", func(t *testing.T) {
		_, err := kernel.NewRange(dec("5"), ptr(dec("5")))

		require.NoError(t, err)
	})

	t.Run("negative min", func(t *testing.T) {
		_, err := kernel.NewRange(dec("-1"), nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsInvalidArgument(err))
	})

	t.Run("max lower than min", func(t *testing.T) {
		_, err := kernel.NewRange(dec("3"), ptr(dec("2")))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "maximum 2 is lower than minimum 3")
	})
}

func TestRange_Contains(t *testing.T) {
	bounded := kernel.MustNewRange(dec("1"), ptr(dec("10")))
	open := kernel.MustNewRange(dec("10"), nil)

	tests := []struct {
		name string
		r    kernel.Range
		m    string
		want bool
	}{
		{"below min", bounded, "0.99", false},
		{"at min inclusive", bounded, "1", true},
		{"inside", bounded, "5.5", true},
		{"at max inclusive", bounded, "10", true},
		{"above max", bounded, "10.01", false},
		{"open range far above", open, "100000", true},
		{"open range below", open, "9.999", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(dec(tt.m)))
		})
	}
}

func TestRange_IsNarrowerThan(t *testing.T) {
	narrow := kernel.MustNewRange(dec("0"), ptr(dec("1")))
	wide := kernel.MustNewRange(dec("0"), ptr(dec("5")))
	open := kernel.MustNewRange(dec("0"), nil)
	laterOpen := kernel.MustNewRange(dec("3"), nil)

	assert.True(t, narrow.IsNarrowerThan(wide))
	assert.False(t, wide.IsNarrowerThan(narrow))
	assert.True(t, wide.IsNarrowerThan(open))
	assert.False(t, open.IsNarrowerThan(wide))
	assert.True(t, laterOpen.IsNarrowerThan(open))
	assert.False(t, narrow.IsNarrowerThan(narrow))
}

func TestRange_MaxIsCopied(t *testing.T) {
	r := kernel.MustNewRange(dec("0"), ptr(dec("2")))

	upper := r.Max()
	*upper = dec("100")

	assert.True(t, r.Max().Equal(dec("2")))
	assert.True(t, r.IsEqual(kernel.MustNewRange(dec("0"), ptr(dec("2")))))
	assert.False(t, r.IsEqual(kernel.MustNewRange(dec("0"), nil)))
}
