package types

import (
	"math"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
)

// FromJSON converts a JSON document into the value domain. Objects
// become compact association lists with member order preserved, arrays
// become array values, and numbers become the narrowest integer type
// that fits, falling back to double.
func FromJSON(data []byte) (Value, error) {
	v, t, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}

	return parseJSONValue(t, v)
}

func parseJSONValue(dataType jsonparser.ValueType, data []byte) (Value, error) {
	switch dataType {
	case jsonparser.Null:
		return NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, err
		}
		return NewBooleanValue(b), nil
	case jsonparser.Number:
		i, err := jsonparser.ParseInt(data)
		if err != nil {
			// if it's too big to fit in an int64, let's try parsing this as a floating point number
			f, err := jsonparser.ParseFloat(data)
			if err != nil {
				return nil, err
			}

			return NewDoubleValue(f), nil
		}

		if i < math.MinInt32 || i > math.MaxInt32 {
			return NewBigintValue(i), nil
		}

		return NewIntegerValue(int32(i)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, err
		}
		return NewTextValue(s), nil
	case jsonparser.Array:
		return parseJSONArray(data)
	case jsonparser.Object:
		return parseJSONObject(data)
	}

	return nil, errors.Errorf("unsupported JSON type: %v", dataType)
}

func parseJSONArray(data []byte) (ArrayValue, error) {
	var arr ArrayValue
	var innerErr error

	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if innerErr != nil {
			return
		}
		if err != nil {
			innerErr = err
			return
		}

		v, err := parseJSONValue(dataType, value)
		if err != nil {
			innerErr = err
			return
		}

		arr = append(arr, v)
	})
	if err != nil {
		return nil, err
	}
	if innerErr != nil {
		return nil, innerErr
	}

	return arr, nil
}

func parseJSONObject(data []byte) (CompactAssocListValue, error) {
	var list CompactAssocListValue

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		v, err := parseJSONValue(dataType, value)
		if err != nil {
			return err
		}

		list = list.Add(string(key), v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}
