package openweather

// geocodingResult is a single entry of the geocoding response array.
type geocodingResult struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// MainConditions carries the measured values of a current-weather payload.
type MainConditions struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// WeatherCondition is a single entry of the weather-conditions list.
type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentWeatherResponse is the decoded current-weather payload. The client
// hands it back as-is; which fields get projected into the API response is
// the weather service's contract, not this package's. Main is a pointer so
// a payload missing the section is detectable downstream.
type CurrentWeatherResponse struct {
	Name    string             `json:"name"`
	Main    *MainConditions    `json:"main"`
	Weather []WeatherCondition `json:"weather"`
}
