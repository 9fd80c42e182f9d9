package types_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidesearch/binlist/types"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		want types.Value
	}{
		{"null", `null`, types.NewNullValue()},
		{"true", `true`, types.NewBooleanValue(true)},
		{"false", `false`, types.NewBooleanValue(false)},
		{"int", `42`, types.NewIntegerValue(42)},
		{"negative int", `-7`, types.NewIntegerValue(-7)},
		{"int32 max", `2147483647`, types.NewIntegerValue(math.MaxInt32)},
		{"promoted to bigint", `2147483648`, types.NewBigintValue(math.MaxInt32 + 1)},
		{"bigint min", `-9223372036854775808`, types.NewBigintValue(math.MinInt64)},
		{"float", `1.5`, types.NewDoubleValue(1.5)},
		{"exponent", `1e3`, types.NewDoubleValue(1000)},
		{"too big for int64", `18446744073709551615`, types.NewDoubleValue(math.MaxUint64)},
		{"string", `"hello"`, types.NewTextValue("hello")},
		{"escaped string", `"a\nb"`, types.NewTextValue("a\nb")},
		{"empty array", `[]`, types.ArrayValue(nil)},
		{"array", `[1, "two", null]`, types.NewArrayValue(
			types.NewIntegerValue(1),
			types.NewTextValue("two"),
			types.NewNullValue(),
		)},
		{"empty object", `{}`, types.CompactAssocListValue(nil)},
		{"object", `{"status": 0, "QTime": 31}`, types.NewCompactAssocListValue().
			Add("status", types.NewIntegerValue(0)).
			Add("QTime", types.NewIntegerValue(31)),
		},
		{"nested", `{"response": {"docs": [{"id": 1}]}}`, types.NewCompactAssocListValue().
			Add("response", types.NewCompactAssocListValue().
				Add("docs", types.NewArrayValue(
					types.NewCompactAssocListValue().Add("id", types.NewIntegerValue(1)),
				))),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := types.FromJSON([]byte(test.json))
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestFromJSONPreservesMemberOrder(t *testing.T) {
	got, err := types.FromJSON([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)

	list, ok := got.(types.CompactAssocListValue)
	require.True(t, ok)
	require.Len(t, list, 3)
	require.Equal(t, "z", list[0].Key)
	require.Equal(t, "a", list[1].Key)
	require.Equal(t, "m", list[2].Key)
}

func TestFromJSONInvalid(t *testing.T) {
	for _, src := range []string{``, `{`, `[1,`, `{"a": }`} {
		t.Run(src, func(t *testing.T) {
			_, err := types.FromJSON([]byte(src))
			require.Error(t, err)
		})
	}
}
