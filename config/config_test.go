package config

import (
	"testing"

	"github.com/frankban/quicktest"
)

const testProjectVersionARN = "arn:aws:rekognition:us-east-1:123456789012:project/tags/version/tags.2021-07-14/1"

func TestConfig_Defaults(t *testing.T) {
	c := quicktest.New(t)

	Config = AppConfig{}
	t.Setenv("CFG_REKOGNITION_PROJECTVERSIONARN", testProjectVersionARN)

	err := Init("no-such-config.yaml")
	c.Assert(err, quicktest.IsNil)
	c.Check(Config.Rekognition.ProjectVersionARN, quicktest.Equals, testProjectVersionARN)
	c.Check(Config.Rekognition.MinConfidenceDefault, quicktest.Equals, 0.65)
	c.Check(Config.Rekognition.MinConfidenceCustom, quicktest.Equals, 0.65)
	c.Check(Config.Rekognition.MaxLabels, quicktest.Equals, int32(10))
}

func TestConfig_EnvOverrides(t *testing.T) {
	c := quicktest.New(t)

	Config = AppConfig{}
	t.Setenv("CFG_REKOGNITION_PROJECTVERSIONARN", testProjectVersionARN)
	t.Setenv("CFG_REKOGNITION_MINCONFIDENCEDEFAULT", "0.8")
	t.Setenv("CFG_REKOGNITION_MINCONFIDENCECUSTOM", "0.3")
	t.Setenv("CFG_SERVER_DEBUG", "true")

	err := Init("no-such-config.yaml")
	c.Assert(err, quicktest.IsNil)
	c.Check(Config.Rekognition.MinConfidenceDefault, quicktest.Equals, 0.8)
	c.Check(Config.Rekognition.MinConfidenceCustom, quicktest.Equals, 0.3)
	c.Check(Config.Server.Debug, quicktest.Equals, true)
}

func TestConfig_MissingProjectVersionARN(t *testing.T) {
	c := quicktest.New(t)

	Config = AppConfig{}
	t.Setenv("CFG_REKOGNITION_PROJECTVERSIONARN", "")

	err := Init("no-such-config.yaml")
	c.Assert(err, quicktest.IsNotNil)
	c.Check(err.Error(), quicktest.Contains, "projectversionarn")
}

func TestConfig_ThresholdRangeNotValidated(t *testing.T) {
	c := quicktest.New(t)

	// Out-of-range thresholds are accepted; they only change filtering.
	Config = AppConfig{}
	t.Setenv("CFG_REKOGNITION_PROJECTVERSIONARN", testProjectVersionARN)
	t.Setenv("CFG_REKOGNITION_MINCONFIDENCEDEFAULT", "1.5")

	err := Init("no-such-config.yaml")
	c.Assert(err, quicktest.IsNil)
	c.Check(Config.Rekognition.MinConfidenceDefault, quicktest.Equals, 1.5)
}
