package configuration

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodePoints(t *testing.T, data interface{}) (CurvePoints, error) {
	t.Helper()
	hook := curvePointsHookFunc()
	result, err := hook(reflect.TypeOf(data), reflect.TypeOf(CurvePoints{}), data)
	if err != nil {
		return nil, err
	}
	points, ok := result.(CurvePoints)
	if !ok {
		t.Fatalf("hook did not produce CurvePoints but %T", result)
	}
	return points, nil
}

func TestCurvePointsFromIntMap(t *testing.T) {
	// GIVEN
	data := map[int]float64{75: 40, 65: 0, 68: 20}

	// WHEN
	points, err := decodePoints(t, data)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, CurvePoints{
		{Temp: 65, Duty: 0},
		{Temp: 68, Duty: 20},
		{Temp: 75, Duty: 40},
	}, points)
}

func TestCurvePointsFromYamlMap(t *testing.T) {
	// GIVEN
	// what viper produces for a map node in a yaml file
	data := map[string]interface{}{
		"68":   20,
		"65":   0,
		"75.5": 40.0,
	}

	// WHEN
	points, err := decodePoints(t, data)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, CurvePoints{
		{Temp: 65, Duty: 0},
		{Temp: 68, Duty: 20},
		{Temp: 75.5, Duty: 40},
	}, points)
}

func TestCurvePointsInvalidTemperatureKey(t *testing.T) {
	// GIVEN
	data := map[string]interface{}{"warm": 20}

	// WHEN
	_, err := decodePoints(t, data)

	// THEN
	assert.Error(t, err)
}

func TestCurvePointsInvalidDutyValue(t *testing.T) {
	// GIVEN
	data := map[string]interface{}{"65": []string{"nope"}}

	// WHEN
	_, err := decodePoints(t, data)

	// THEN
	assert.Error(t, err)
}

func TestCurvePointsListFormPassedThrough(t *testing.T) {
	// GIVEN
	data := []interface{}{
		map[string]interface{}{"temp": 65, "duty": 0},
	}

	// WHEN
	hook := curvePointsHookFunc()
	result, err := hook(reflect.TypeOf(data), reflect.TypeOf(CurvePoints{}), data)

	// THEN
	assert.NoError(t, err)
	// the list form is decoded by mapstructure itself
	assert.Equal(t, data, result)
}
