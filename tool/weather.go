package tool

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var weatherConditions = []string{
	"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Stormy", "Snowy", "Foggy", "Windy",
}

// WeatherTool returns mock weather data. Results are pseudo-random but
// deterministic per city, so repeated lookups for the same place agree.
type WeatherTool struct{}

// NewWeatherTool constructs the get_weather tool.
func NewWeatherTool() *WeatherTool { return &WeatherTool{} }

// Name implements Tool.
func (t *WeatherTool) Name() string { return "get_weather" }

// Description implements Tool.
func (t *WeatherTool) Description() string {
	return "Get the current weather for a given city. Returns temperature, conditions, and humidity."
}

// Parameters implements Tool.
func (t *WeatherTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "The city name to get weather for, e.g., 'New York', 'London', 'Tokyo'",
			},
			"units": map[string]any{
				"type":        "string",
				"enum":        []string{"celsius", "fahrenheit"},
				"description": "Temperature units (celsius or fahrenheit). Defaults to celsius.",
			},
		},
		"required": []string{"city"},
	}
}

// Call generates the simulated weather report.
func (t *WeatherTool) Call(args map[string]any) (string, error) {
	city, _ := args["city"].(string)
	if city == "" {
		return "", fmt.Errorf("city name is required")
	}
	units, _ := args["units"].(string)
	if units == "" {
		units = "celsius"
	}

	// Seed from the city name so data is stable across calls.
	var seed int64
	for _, r := range strings.ToLower(city) {
		seed += int64(r)
	}
	rng := rand.New(rand.NewSource(seed))

	tempCelsius := rng.Intn(51) - 10 // -10..40
	humidity := rng.Intn(66) + 30    // 30..95
	condition := weatherConditions[rng.Intn(len(weatherConditions))]
	windSpeed := rng.Intn(51) // 0..50

	temp := tempCelsius
	tempUnit := "°C"
	if units == "fahrenheit" {
		temp = int(math.Round(float64(tempCelsius)*9/5 + 32))
		tempUnit = "°F"
	}

	report := struct {
		City        string `json:"city"`
		Temperature string `json:"temperature"`
		Condition   string `json:"condition"`
		Humidity    string `json:"humidity"`
		WindSpeed   string `json:"wind_speed"`
		Units       string `json:"units"`
	}{
		City:        city,
		Temperature: fmt.Sprintf("%d%s", temp, tempUnit),
		Condition:   condition,
		Humidity:    fmt.Sprintf("%d%%", humidity),
		WindSpeed:   fmt.Sprintf("%d km/h", windSpeed),
		Units:       units,
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
