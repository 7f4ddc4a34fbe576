//go:build unit

package coupon_test

import (
	"testing"

	"closet-by-era/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain code", input: "SAVE10", want: "SAVE10"},
		{name: "lower case is upper-cased", input: "save10", want: "SAVE10"},
		{name: "surrounding whitespace is trimmed", input: "  SAVE10  ", want: "SAVE10"},
		{name: "minimum length", input: "ABC", want: "ABC"},
		{name: "maximum length", input: "ABCDEFGHIJ1234567890", want: "ABCDEFGHIJ1234567890"},
		{name: "too short", input: "AB", wantErr: true},
		{name: "too long", input: "ABCDEFGHIJ12345678901", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "embedded space", input: "SAVE 10", wantErr: true},
		{name: "punctuation", input: "SAVE_10", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1000", coupon.FormatAmount(1000))
	assert.Equal(t, "99.5", coupon.FormatAmount(99.5))
	assert.Equal(t, "0.01", coupon.FormatAmount(0.01))
	assert.Equal(t, "0", coupon.FormatAmount(0))
}

func TestDiscountAmountFor(t *testing.T) {
	t.Run("percentage of the subtotal", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.DiscountPercentage, 25)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, d.AmountFor(200), 1e-9)
	})

	t.Run("fixed amount never exceeds the subtotal", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.DiscountFixed, 80)
		require.NoError(t, err)
		assert.InDelta(t, 80.0, d.AmountFor(200), 1e-9)
		assert.InDelta(t, 20.0, d.AmountFor(20), 1e-9)
	})
}
