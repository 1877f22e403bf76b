package recognizer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/datamodel"
)

// RekognitionAPI is the subset of the Rekognition client consumed here.
type RekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
	DetectCustomLabels(ctx context.Context, params *rekognition.DetectCustomLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectCustomLabelsOutput, error)
}

// Recognizer is the interface for the detection adapters
type Recognizer interface {
	DetectDefaultLabels(ctx context.Context, image []byte, threshold float64) ([]datamodel.Prediction, error)
	DetectCustomLabels(ctx context.Context, image []byte, projectVersionARN string, threshold float64) ([]datamodel.Prediction, error)
}

type recognizer struct {
	client    RekognitionAPI
	maxLabels int32
}

// NewRecognizer initiates a recognizer instance
func NewRecognizer(client RekognitionAPI, maxLabels int32) Recognizer {
	return &recognizer{
		client:    client,
		maxLabels: maxLabels,
	}
}

// DetectDefaultLabels runs generic label detection on the image bytes.
// threshold is a probability in [0, 1]; Rekognition speaks percentages, so
// the hint is sent as threshold*100 and every returned confidence is
// normalized back before the local re-check. The hint is advisory; the
// local check is authoritative.
func (r *recognizer) DetectDefaultLabels(ctx context.Context, image []byte, threshold float64) ([]datamodel.Prediction, error) {
	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(r.maxLabels),
		MinConfidence: aws.Float32(float32(threshold * 100)),
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't detect labels: %w", err)
	}

	predictions := make([]datamodel.Prediction, 0, len(out.Labels))
	for _, label := range out.Labels {
		if label.Name == nil || label.Confidence == nil {
			continue
		}
		probability := float64(*label.Confidence) / 100
		if probability < threshold {
			continue
		}
		predictions = append(predictions, datamodel.Prediction{
			Probability: probability,
			TagName:     *label.Name,
			Source:      datamodel.SourceDefault,
		})
	}

	return predictions, nil
}

// DetectCustomLabels runs the custom-trained project version on the image
// bytes, with the same percentage conversion and local re-check as
// DetectDefaultLabels.
func (r *recognizer) DetectCustomLabels(ctx context.Context, image []byte, projectVersionARN string, threshold float64) ([]datamodel.Prediction, error) {
	out, err := r.client.DetectCustomLabels(ctx, &rekognition.DetectCustomLabelsInput{
		Image:             &types.Image{Bytes: image},
		ProjectVersionArn: aws.String(projectVersionARN),
		MinConfidence:     aws.Float32(float32(threshold * 100)),
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't detect custom labels: %w", err)
	}

	predictions := make([]datamodel.Prediction, 0, len(out.CustomLabels))
	for _, label := range out.CustomLabels {
		if label.Name == nil || label.Confidence == nil {
			continue
		}
		probability := float64(*label.Confidence) / 100
		if probability < threshold {
			continue
		}
		predictions = append(predictions, datamodel.Prediction{
			Probability: probability,
			TagName:     *label.Name,
			Source:      datamodel.SourceCustom,
		})
	}

	return predictions, nil
}
