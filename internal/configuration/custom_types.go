package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/slices"
)

// curvePointsHookFunc returns a mapstructure decode hook that allows curve
// points to be written as a plain temperature→duty map:
//
//	points:
//	  65: 0
//	  68: 20
//	  75: 40
//
// in addition to the canonical list-of-points form. Map keys are sorted by
// temperature; the list form is passed through and decoded as-is.
func curvePointsHookFunc() mapstructure.DecodeHookFuncType {
	pointsType := reflect.TypeOf(CurvePoints{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != pointsType {
			return data, nil
		}

		switch v := data.(type) {
		case map[int]float64:
			points := make(CurvePoints, 0, len(v))
			for temp, duty := range v {
				points = append(points, CurvePoint{Temp: float64(temp), Duty: duty})
			}
			sortPoints(points)
			return points, nil
		case map[string]interface{}:
			return pointsFromMap(v)
		case map[interface{}]interface{}:
			converted := make(map[string]interface{}, len(v))
			for key, value := range v {
				converted[fmt.Sprintf("%v", key)] = value
			}
			return pointsFromMap(converted)
		}

		return data, nil
	}
}

func pointsFromMap(data map[string]interface{}) (CurvePoints, error) {
	points := make(CurvePoints, 0, len(data))
	for key, value := range data {
		temp, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid curve temperature %q: %w", key, err)
		}
		duty, err := anyToFloat(value)
		if err != nil {
			return nil, fmt.Errorf("invalid curve duty %v: %w", value, err)
		}
		points = append(points, CurvePoint{Temp: temp, Duty: duty})
	}
	sortPoints(points)
	return points, nil
}

func sortPoints(points CurvePoints) {
	slices.SortFunc(points, func(a, b CurvePoint) int {
		switch {
		case a.Temp < b.Temp:
			return -1
		case a.Temp > b.Temp:
			return 1
		default:
			return 0
		}
	})
}

// anyToFloat converts numeric and string values to float64.
func anyToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, fmt.Errorf("unsupported value type %T", v)
	}
}
