package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------- Registry Tests --------------------

func newTestRegistry() *Registry {
	return NewRegistry(NewCalculateTool(), NewWeatherTool())
}

func TestRegistry_Definitions(t *testing.T) {
	defs := newTestRegistry().Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "function", defs[0].Type)
	assert.Equal(t, "calculate", defs[0].Function.Name)
	assert.Equal(t, "get_weather", defs[1].Function.Name)
	assert.NotEmpty(t, defs[0].Function.Description)
	assert.Equal(t, "object", defs[0].Function.Parameters["type"])
}

func TestRegistry_UnknownTool(t *testing.T) {
	result := newTestRegistry().Execute("launch_rocket", "{}")
	assert.Equal(t, "Error: Unknown tool 'launch_rocket'", result)
}

func TestRegistry_InvalidJSONArguments(t *testing.T) {
	result := newTestRegistry().Execute("calculate", "{invalid")
	assert.Equal(t, "Error: Invalid JSON arguments: {invalid", result)
}

func TestRegistry_MissingRequiredArgument(t *testing.T) {
	result := newTestRegistry().Execute("get_weather", "{}")
	assert.Contains(t, result, "Error:")
	assert.Contains(t, result, "city")
}

func TestRegistry_RejectsBadEnumValue(t *testing.T) {
	result := newTestRegistry().Execute("get_weather", `{"city": "Oslo", "units": "kelvin"}`)
	assert.Contains(t, result, "Error:")
}

// -------------------- Calculate Tests --------------------

func TestCalculate_BasicArithmetic(t *testing.T) {
	r := newTestRegistry()
	assert.Equal(t, "4", r.Execute("calculate", `{"expression": "2 + 2"}`))
	assert.Equal(t, "387", r.Execute("calculate", `{"expression": "15 * 23 + 42"}`))
}

func TestCalculate_MathFunctions(t *testing.T) {
	r := newTestRegistry()
	assert.Equal(t, "4", r.Execute("calculate", `{"expression": "sqrt(16)"}`))
	assert.Equal(t, "1", r.Execute("calculate", `{"expression": "cos(0)"}`))
	assert.Equal(t, "8", r.Execute("calculate", `{"expression": "pow(2, 3)"}`))
}

func TestCalculate_DisallowedName(t *testing.T) {
	result := newTestRegistry().Execute("calculate", `{"expression": "os_exit(1)"}`)
	assert.Contains(t, result, "Error:")
}

func TestCalculate_SyntaxError(t *testing.T) {
	result := newTestRegistry().Execute("calculate", `{"expression": "2 +* 2"}`)
	assert.Contains(t, result, "Error:")
}

func TestCalculate_EmptyExpression(t *testing.T) {
	result := newTestRegistry().Execute("calculate", `{"expression": ""}`)
	assert.Contains(t, result, "Error:")
}

// -------------------- Weather Tests --------------------

func TestWeather_DeterministicPerCity(t *testing.T) {
	r := newTestRegistry()
	first := r.Execute("get_weather", `{"city": "London"}`)
	second := r.Execute("get_weather", `{"city": "London"}`)
	assert.Equal(t, first, second)

	var report map[string]string
	require.NoError(t, json.Unmarshal([]byte(first), &report))
	assert.Equal(t, "London", report["city"])
	assert.Equal(t, "celsius", report["units"])
	assert.Contains(t, report["temperature"], "°C")
	assert.Contains(t, report["humidity"], "%")
	assert.Contains(t, report["wind_speed"], "km/h")
	assert.NotEmpty(t, report["condition"])
}

func TestWeather_CaseInsensitiveSeed(t *testing.T) {
	r := newTestRegistry()
	assert.JSONEq(t,
		mustReplaceCity(t, r.Execute("get_weather", `{"city": "tokyo"}`), "Tokyo"),
		r.Execute("get_weather", `{"city": "Tokyo"}`),
	)
}

func TestWeather_FahrenheitConversion(t *testing.T) {
	r := newTestRegistry()

	var celsius, fahrenheit map[string]string
	require.NoError(t, json.Unmarshal([]byte(r.Execute("get_weather", `{"city": "Paris"}`)), &celsius))
	require.NoError(t, json.Unmarshal(
		[]byte(r.Execute("get_weather", `{"city": "Paris", "units": "fahrenheit"}`)), &fahrenheit))

	assert.Contains(t, fahrenheit["temperature"], "°F")
	assert.Equal(t, "fahrenheit", fahrenheit["units"])
	// Same underlying conditions regardless of units.
	assert.Equal(t, celsius["condition"], fahrenheit["condition"])
	assert.Equal(t, celsius["humidity"], fahrenheit["humidity"])
}

// mustReplaceCity rewrites the city field so reports seeded identically can
// be compared irrespective of the echoed name.
func mustReplaceCity(t *testing.T, report, city string) string {
	t.Helper()
	var m map[string]string
	require.NoError(t, json.Unmarshal([]byte(report), &m))
	m["city"] = city
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
