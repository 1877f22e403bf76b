package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevinpbuckley/AWSRekognitionCombineTags/config"
	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/datamodel"
	custom_logger "github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/logger"
	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/recognizer"
)

// ImageFetcher abstracts the image download client.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Service is the interface for the classification pipeline
type Service interface {
	Classify(ctx context.Context, req datamodel.Request) ([]datamodel.Prediction, error)
}

type service struct {
	fetcher  ImageFetcher
	detector recognizer.Recognizer
	cfg      config.RekognitionConfig
}

// NewService initiates a service instance
func NewService(fetcher ImageFetcher, detector recognizer.Recognizer, cfg config.RekognitionConfig) Service {
	return &service{
		fetcher:  fetcher,
		detector: detector,
		cfg:      cfg,
	}
}

// Classify downloads the requested image, runs both detection calls in
// order and returns the merged predictions, default-source entries first.
// The custom call is only issued once the default call has completed.
func (s *service) Classify(ctx context.Context, req datamodel.Request) ([]datamodel.Prediction, error) {
	logger, _ := custom_logger.GetZapLogger(ctx)

	if req.ImageURL == "" {
		return nil, ErrMissingImageURL
	}

	image, err := s.fetcher.Fetch(ctx, req.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageFetch, err)
	}

	defaults, err := s.detector.DetectDefaultLabels(ctx, image, s.cfg.MinConfidenceDefault)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRemoteDetection, err)
	}

	customs, err := s.detector.DetectCustomLabels(ctx, image, s.cfg.ProjectVersionARN, s.cfg.MinConfidenceCustom)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRemoteDetection, err)
	}

	predictions := make([]datamodel.Prediction, 0, len(defaults)+len(customs))
	predictions = append(predictions, defaults...)
	predictions = append(predictions, customs...)

	logger.Info("classification completed",
		zap.String("imageUrl", req.ImageURL),
		zap.Int("defaultPredictions", len(defaults)),
		zap.Int("customPredictions", len(customs)))

	return predictions, nil
}
