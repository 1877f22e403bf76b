package datamodel

import (
	"encoding/json"
	"testing"

	"github.com/frankban/quicktest"
)

func TestDatamodel_PredictionsBodyEmpty(t *testing.T) {
	c := quicktest.New(t)

	// An empty result must serialize as an empty array, not null.
	body, err := json.Marshal(PredictionsBody{Predictions: []Prediction{}})
	c.Assert(err, quicktest.IsNil)
	c.Check(string(body), quicktest.Equals, `{"predictions":[]}`)
}

func TestDatamodel_PredictionSource(t *testing.T) {
	c := quicktest.New(t)

	c.Check(SourceDefault.String(), quicktest.Equals, "default")
	c.Check(SourceCustom.String(), quicktest.Equals, "custom")
}
