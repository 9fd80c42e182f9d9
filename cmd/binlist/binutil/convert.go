package binutil

import (
	"github.com/tidesearch/binlist/types"
)

// ConvertDateFields walks a value tree and parses the text values of
// the named fields into timestamps. JSON has no date literal, so
// streams rebuilt from a JSON dump need this pass to get their date
// fields back on the wire as dates.
func ConvertDateFields(v types.Value, fields map[string]bool) (types.Value, error) {
	if len(fields) == 0 {
		return v, nil
	}

	switch x := v.(type) {
	case types.ArrayValue:
		out := make(types.ArrayValue, len(x))
		for i, e := range x {
			c, err := ConvertDateFields(e, fields)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case types.AssocListValue:
		pairs, err := convertPairs(x, fields)
		if err != nil {
			return nil, err
		}
		return types.AssocListValue(pairs), nil
	case types.CompactAssocListValue:
		pairs, err := convertPairs(x, fields)
		if err != nil {
			return nil, err
		}
		return types.CompactAssocListValue(pairs), nil
	case types.DocumentValue:
		pairs, err := convertPairs(x, fields)
		if err != nil {
			return nil, err
		}
		return types.DocumentValue(pairs), nil
	case types.MapValue:
		out := make(types.MapValue, len(x))
		for i, e := range x {
			cv, err := ConvertDateFields(e.V, fields)
			if err != nil {
				return nil, err
			}
			out[i] = types.MapEntry{K: e.K, V: cv}
		}
		return out, nil
	case *types.DocumentListValue:
		docs := make([]types.DocumentValue, len(x.Docs))
		for i, d := range x.Docs {
			c, err := convertPairs(d, fields)
			if err != nil {
				return nil, err
			}
			docs[i] = types.DocumentValue(c)
		}
		out := *x
		out.Docs = docs
		return &out, nil
	}

	return v, nil
}

func convertPairs(pairs []types.Pair, fields map[string]bool) ([]types.Pair, error) {
	out := make([]types.Pair, len(pairs))
	for i, p := range pairs {
		if fields[p.Key] {
			if s, ok := p.Value.(types.TextValue); ok {
				ts, err := types.ParseTimestamp(string(s))
				if err != nil {
					return nil, err
				}
				out[i] = types.Pair{Key: p.Key, Value: ts}
				continue
			}
		}

		cv, err := ConvertDateFields(p.Value, fields)
		if err != nil {
			return nil, err
		}
		out[i] = types.Pair{Key: p.Key, Value: cv}
	}

	return out, nil
}
