package models

// NumFeatures is the fixed width of the model input.
const NumFeatures = 8

// FeatureNames lists the input parameters in the exact order the scaler and
// classifier were fitted with. Values() must stay in sync with this order.
var FeatureNames = [NumFeatures]string{
	"longitude", "latitude", "distance", "temperature",
	"humidity", "pressure", "hour", "duration",
}

type FeatureVector struct {
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Distance    float64 `json:"distance"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	Hour        int     `json:"hour"`
	Duration    float64 `json:"duration"`
}

// Values returns the features in training order.
func (f FeatureVector) Values() []float64 {
	return []float64{
		f.Longitude,
		f.Latitude,
		f.Distance,
		f.Temperature,
		f.Humidity,
		f.Pressure,
		float64(f.Hour),
		f.Duration,
	}
}
