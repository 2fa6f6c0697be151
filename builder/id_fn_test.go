package builder_test

import (
	"testing"

	"github.com/katalvlaran/fakegen/builder"
	"github.com/stretchr/testify/require"
)

// TestIDFns verifies each IDFn on valid and out-of-range indices.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"Decimal_zero", builder.DecimalID, 0, "0"},
		{"Decimal_multi", builder.DecimalID, 123, "123"},
		{"Decimal_neg", builder.DecimalID, -1, ""},

		{"Letter_min", builder.LetterID, 0, "A"},
		{"Letter_max", builder.LetterID, 25, "Z"},
		{"Letter_tooHigh", builder.LetterID, 26, ""},

		{"Base36_low", builder.Base36ID, 10, "a"},
		{"Base36_high", builder.Base36ID, 35, "z"},
		{"Base36_wrap", builder.Base36ID, 36, "10"},

		{"Hex_ff", builder.HexID, 255, "ff"},
		{"Hex_neg", builder.HexID, -3, ""},

		{"Excel_A", builder.ExcelColumnID, 0, "A"},
		{"Excel_Z", builder.ExcelColumnID, 25, "Z"},
		{"Excel_AA", builder.ExcelColumnID, 26, "AA"},
		{"Excel_AB", builder.ExcelColumnID, 27, "AB"},
		{"Excel_ZZ", builder.ExcelColumnID, 701, "ZZ"},
		{"Excel_AAA", builder.ExcelColumnID, 702, "AAA"},

		{"Prefixed", builder.PrefixedID("acc-"), 7, "acc-7"},
		{"Prefixed_neg", builder.PrefixedID("acc-"), -1, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestRuleForIndex(t *testing.T) {
	t.Parallel()

	type tagged struct{ Code string }
	fm := builder.MustFieldMap[tagged](nil,
		builder.Bind("code", builder.Default, func(o *tagged, v string) { o.Code = v }),
	)
	b, err := builder.New(fm, builder.WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, b.RuleForIndex("code", builder.ExcelColumnID))

	got, err := b.GenerateN(28)
	require.NoError(t, err)
	require.Equal(t, "A", got[0].Code)
	require.Equal(t, "Z", got[25].Code)
	require.Equal(t, "AB", got[27].Code)

	err = b.RuleForIndex("code", nil)
	require.ErrorIs(t, err, builder.ErrNilRule)
	var ce *builder.ConfigurationError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, builder.MethodRuleForIndex, ce.Op)
	require.Equal(t, "code", ce.Field)
	require.ErrorIs(t, b.RuleForIndex("nope", builder.HexID), builder.ErrUnknownField)
}
