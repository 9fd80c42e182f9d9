package binlist_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidesearch/binlist"
	"github.com/tidesearch/binlist/internal/testutil"
	"github.com/tidesearch/binlist/types"
	"golang.org/x/sync/errgroup"
)

func roundTrip(t *testing.T, v types.Value) types.Value {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, binlist.Marshal(&buf, v))

	got, err := binlist.Unmarshal(&buf)
	require.NoError(t, err)
	return got
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		v    types.Value
	}{
		{"null", types.NewNullValue()},
		{"true", types.NewBooleanValue(true)},
		{"false", types.NewBooleanValue(false)},
		{"byte", types.NewByteValue(-128)},
		{"short", types.NewShortValue(-32768)},
		{"int zero", types.NewIntegerValue(0)},
		{"int negative", types.NewIntegerValue(-1)},
		{"int small", types.NewIntegerValue(14)},
		{"int ext", types.NewIntegerValue(15)},
		{"int max", types.NewIntegerValue(math.MaxInt32)},
		{"int min", types.NewIntegerValue(math.MinInt32)},
		{"long zero", types.NewBigintValue(0)},
		{"long negative", types.NewBigintValue(-42)},
		{"long small", types.NewBigintValue(14)},
		{"long ext", types.NewBigintValue(15)},
		{"long top byte", types.NewBigintValue(math.MaxInt64)},
		{"long min", types.NewBigintValue(math.MinInt64)},
		{"float", types.NewFloatValue(3.5)},
		{"double", types.NewDoubleValue(-2.75)},
		{"double nan", types.NewDoubleValue(math.NaN())},
		{"double +inf", types.NewDoubleValue(math.Inf(1))},
		{"double -inf", types.NewDoubleValue(math.Inf(-1))},
		{"date", types.NewTimestampValue(time.Date(2009, 11, 10, 23, 0, 0, 0, time.UTC))},
		{"date before epoch", types.NewTimestampValue(time.Date(1905, 1, 2, 3, 4, 5, 0, time.UTC))},
		{"empty string", types.NewTextValue("")},
		{"ascii string", types.NewTextValue("hello, world")},
		{"accented string", types.NewTextValue("héllo wörld")},
		{"cjk string", types.NewTextValue("中文")},
		{"astral string", types.NewTextValue("a\U0001F600b")},
		{"empty blob", types.NewBlobValue([]byte{})},
		{"large blob", types.NewBlobValue(bytes.Repeat([]byte{0xab}, 300))},
		{"empty array", types.NewArrayValue()},
		{"array", types.NewArrayValue(
			types.NewIntegerValue(1),
			types.NewTextValue("two"),
			types.NewNullValue(),
		)},
		{"empty assoc list", types.NewAssocListValue()},
		{"assoc list with duplicate keys", types.NewAssocListValue().
			Add("k", types.NewIntegerValue(1)).
			Add("k", types.NewIntegerValue(2)),
		},
		{"compact assoc list", types.NewCompactAssocListValue().
			Add("status", types.NewIntegerValue(0)).
			Add("QTime", types.NewIntegerValue(31)),
		},
		{"map with mixed keys", types.NewMapValue().
			Set(types.NewIntegerValue(1), types.NewTextValue("one")).
			Set(types.NewTextValue("two"), types.NewIntegerValue(2)),
		},
		{"document", types.NewDocumentValue().
			Set("id", types.NewBigintValue(12)).
			Set("title", types.NewTextValue("t")),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			testutil.RequireValueEqual(t, test.v, roundTrip(t, test.v))
		})
	}
}

func TestRoundTripNested(t *testing.T) {
	inner := types.NewCompactAssocListValue().
		Add("docs", types.NewArrayValue(
			types.NewDocumentValue().
				Set("id", types.NewIntegerValue(1)).
				Set("tags", types.NewArrayValue(types.NewTextValue("a"), types.NewTextValue("b"))),
		)).
		Add("meta", types.NewMapValue().
			Set(types.NewTextValue("shard"), types.NewIntegerValue(3)))

	root := types.NewAssocListValue().
		Add("responseHeader", inner).
		Add("raw", types.NewBlobValue([]byte{1, 2, 3}))

	testutil.RequireValueEqual(t, root, roundTrip(t, root))
}

func TestRoundTripAssocListFlavorsAreDistinct(t *testing.T) {
	plain := types.NewAssocListValue().Add("a", types.NewNullValue())
	compact := types.NewCompactAssocListValue().Add("a", types.NewNullValue())

	require.Equal(t, types.TypeAssocList, roundTrip(t, plain).Type())
	require.Equal(t, types.TypeCompactAssocList, roundTrip(t, compact).Type())
}

func TestRoundTripAssocListBoundarySizes(t *testing.T) {
	for _, n := range []int{0, 1, 30, 31, 100} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			var list types.AssocListValue
			for i := 0; i < n; i++ {
				list = list.Add(fmt.Sprintf("k%d", i), types.NewIntegerValue(int32(i+1)))
			}

			testutil.RequireValueEqual(t, list, roundTrip(t, list))
		})
	}
}

func TestRoundTripDocumentList(t *testing.T) {
	dl := &types.DocumentListValue{
		NumFound: 1000000,
		Start:    20,
		MaxScore: 1.5,
		Docs: []types.DocumentValue{
			types.NewDocumentValue().Set("id", types.NewBigintValue(1)),
			types.NewDocumentValue().Set("id", types.NewBigintValue(2)),
		},
	}

	got := roundTrip(t, dl)
	back, ok := got.(*types.DocumentListValue)
	require.True(t, ok)
	require.Equal(t, int64(1000000), back.NumFound)
	require.Equal(t, int64(20), back.Start)
	require.Equal(t, float32(1.5), back.MaxScore)
	testutil.RequireValueEqual(t, dl, back)
}

func TestRoundTripDocumentListNoScore(t *testing.T) {
	dl := types.NewDocumentListValue()
	dl.NumFound = 3

	back, ok := roundTrip(t, dl).(*types.DocumentListValue)
	require.True(t, ok)
	require.False(t, back.HasMaxScore())
}

func TestMapPreservesInsertionOrder(t *testing.T) {
	m := types.NewMapValue()
	for i := int32(10); i > 0; i-- {
		m = m.Set(types.NewIntegerValue(i), types.NewIntegerValue(-i))
	}

	back, ok := roundTrip(t, m).(types.MapValue)
	require.True(t, ok)
	require.Len(t, back, 10)
	for i, entry := range back {
		require.Equal(t, types.NewIntegerValue(int32(10-i)), entry.K)
	}
}

type temperature float64

func (c temperature) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

func TestResolverSubstitute(t *testing.T) {
	codec := binlist.NewCodecWithResolver(binlist.ResolverFunc(func(v any, enc *binlist.Encoder) (any, error) {
		if c, ok := v.(temperature); ok {
			return types.NewDoubleValue(float64(c)), nil
		}
		return v, nil
	}))

	var buf, direct bytes.Buffer
	require.NoError(t, codec.Marshal(&buf, types.NewAnyValue(temperature(21.5))))
	require.NoError(t, binlist.Marshal(&direct, types.NewDoubleValue(21.5)))
	require.Equal(t, direct.Bytes(), buf.Bytes())
}

func TestResolverFullyHandled(t *testing.T) {
	codec := binlist.NewCodecWithResolver(binlist.ResolverFunc(func(v any, enc *binlist.Encoder) (any, error) {
		// write the value ourselves and signal it was handled
		if err := enc.EncodeValue(types.NewIntegerValue(7)); err != nil {
			return nil, err
		}
		return nil, nil
	}))

	var buf, direct bytes.Buffer
	require.NoError(t, codec.Marshal(&buf, types.NewAnyValue(struct{}{})))
	require.NoError(t, binlist.Marshal(&direct, types.NewIntegerValue(7)))
	require.Equal(t, direct.Bytes(), buf.Bytes())
}

func TestResolverDecline(t *testing.T) {
	decline := binlist.ResolverFunc(func(v any, enc *binlist.Encoder) (any, error) {
		return v, nil
	})

	x := temperature(3)
	var buf, fallback bytes.Buffer
	require.NoError(t, binlist.NewCodecWithResolver(decline).Marshal(&buf, types.NewAnyValue(x)))
	require.NoError(t, binlist.Marshal(&fallback, types.NewTextValue(fmt.Sprintf("%T:%v", x, x))))
	require.Equal(t, fallback.Bytes(), buf.Bytes())
}

func TestNoResolverFallback(t *testing.T) {
	x := temperature(3)
	var buf, fallback bytes.Buffer
	require.NoError(t, binlist.Marshal(&buf, types.NewAnyValue(x)))
	require.NoError(t, binlist.Marshal(&fallback, types.NewTextValue(fmt.Sprintf("%T:%v", x, x))))
	require.Equal(t, fallback.Bytes(), buf.Bytes())
}

func TestResolverHardFailure(t *testing.T) {
	codec := binlist.NewCodecWithResolver(binlist.ResolverFunc(func(v any, enc *binlist.Encoder) (any, error) {
		return nil, binlist.ErrUnsupportedValue
	}))

	var buf bytes.Buffer
	err := codec.Marshal(&buf, types.NewAnyValue(struct{}{}))
	require.ErrorIs(t, err, binlist.ErrUnsupportedValue)
}

func TestCodecConcurrentUse(t *testing.T) {
	// a Codec is read-only configuration; every Marshal/Unmarshal call
	// gets its own encoder or decoder state
	codec := binlist.NewCodec()

	root := types.NewAssocListValue().
		Add("params", types.NewCompactAssocListValue().
			Add("q", types.NewTextValue("*:*")).
			Add("rows", types.NewIntegerValue(10)))

	var want bytes.Buffer
	require.NoError(t, codec.Marshal(&want, root))

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			var buf bytes.Buffer
			if err := codec.Marshal(&buf, root); err != nil {
				return err
			}
			if !bytes.Equal(want.Bytes(), buf.Bytes()) {
				return fmt.Errorf("concurrent marshal produced different bytes")
			}

			v, err := codec.Unmarshal(&buf)
			if err != nil {
				return err
			}
			if v.Type() != types.TypeAssocList {
				return fmt.Errorf("unexpected root type %s", v.Type())
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestMarshalFlushesWriter(t *testing.T) {
	// Marshal must flush its internal buffer before returning, so the
	// bytes are visible on the underlying writer immediately.
	var buf bytes.Buffer
	require.NoError(t, binlist.Marshal(&buf, types.NewTextValue("flushed")))
	require.NotZero(t, buf.Len())

	v, err := binlist.Unmarshal(&buf)
	require.NoError(t, err)
	require.Equal(t, types.NewTextValue("flushed"), v)
}
