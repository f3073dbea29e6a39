package sro_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wcsro/sro"
)

func TestValue(t *testing.T) {
	var zero sro.Value
	require.False(t, zero.IsDefined())
	require.Equal(t, sro.Undefined(), zero)
	require.True(t, math.IsNaN(zero.Float()))
	require.Equal(t, "undefined", zero.String())

	v := sro.Defined(-0.25)
	x, ok := v.Get()
	require.True(t, ok)
	require.Equal(t, -0.25, x)
	require.Equal(t, -0.25, v.Float())
	require.Equal(t, "-0.25", v.String())

	// a defined zero is still defined
	require.True(t, sro.Defined(0).IsDefined())
}

func TestValue_JSON(t *testing.T) {
	row := []sro.Row{
		{Label: "a_1_A-B", Value: sro.Defined(0.5)},
		{Label: "a_1_B-B", Value: sro.Undefined()},
	}
	b, err := json.Marshal(row)
	require.NoError(t, err)
	require.JSONEq(t, `[{"label":"a_1_A-B","value":0.5},{"label":"a_1_B-B","value":null}]`, string(b))

	var back []sro.Row
	require.NoError(t, json.Unmarshal(b, &back))
	require.Equal(t, row, back)

	var v sro.Value
	require.Error(t, json.Unmarshal([]byte(`"x"`), &v))
}

func TestValue_YAML(t *testing.T) {
	b, err := yaml.Marshal(map[string]sro.Value{"a": sro.Defined(1), "b": sro.Undefined()})
	require.NoError(t, err)
	require.YAMLEq(t, "a: 1\nb: null\n", string(b))
}
