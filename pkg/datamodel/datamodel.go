package datamodel

// PredictionSource identifies which detection call produced a prediction.
type PredictionSource string

const (
	// SourceDefault marks predictions from the generic label detector.
	SourceDefault PredictionSource = "default"
	// SourceCustom marks predictions from the custom-trained model.
	SourceCustom PredictionSource = "custom"
)

func (s PredictionSource) String() string {
	return string(s)
}

// Request is the invocation payload.
type Request struct {
	ImageURL string `json:"imageUrl"`
}

// Prediction is one confidence-filtered tag in the merged response.
// Probability is normalized to [0, 1] from the percentage scale reported
// by the detection service.
type Prediction struct {
	Probability float64          `json:"probability"`
	TagName     string           `json:"tagName"`
	Source      PredictionSource `json:"source"`
}

// PredictionsBody is the success response body.
type PredictionsBody struct {
	Predictions []Prediction `json:"predictions"`
}

// ErrorBody is the failure response body.
type ErrorBody struct {
	Error string `json:"error"`
}
