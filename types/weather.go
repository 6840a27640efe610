package types

// Coordinates is a latitude/longitude pair resolved by the geocoding API.
// It lives for a single request: produced by the geocoding call and consumed
// immediately by the current-weather call.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherReport is the four-field response returned to API clients.
// City echoes the requested place name with surrounding whitespace stripped;
// temperature unit and description language are fixed by configuration.
type WeatherReport struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
}
