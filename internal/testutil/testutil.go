// Package testutil provides helpers shared by codec tests.
package testutil

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tidesearch/binlist/types"
)

var cmpOptions = []cmp.Option{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b types.TimestampValue) bool {
		return time.Time(a).Equal(time.Time(b))
	}),
	cmp.Comparer(func(a, b types.FloatValue) bool {
		return a == b || (math.IsNaN(float64(a)) && math.IsNaN(float64(b)))
	}),
	cmp.Comparer(func(a, b types.DoubleValue) bool {
		return a == b || (math.IsNaN(float64(a)) && math.IsNaN(float64(b)))
	}),
}

// RequireValueEqual fails the test if want and got are not deeply equal
// value trees. NaN compares equal to NaN and timestamps are compared as
// instants.
func RequireValueEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpOptions...); diff != "" {
		t.Fatalf("values differ (-want +got):\n%s", diff)
	}
}
