package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/datamodel"
	custom_logger "github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/logger"
	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/service"
)

// Handler is the Lambda-facing boundary of the classification pipeline.
type Handler struct {
	service service.Service
}

// NewHandler initiates a handler instance
func NewHandler(s service.Service) *Handler {
	return &Handler{service: s}
}

// Handle classifies the image referenced by the request and flattens every
// pipeline error into the JSON error envelope. The Go error return is
// always nil so the runtime never re-drives a failed invocation.
func (h *Handler) Handle(ctx context.Context, req datamodel.Request) (events.APIGatewayProxyResponse, error) {
	logger, _ := custom_logger.GetZapLogger(ctx)

	requestUID, _ := uuid.NewV4()
	logger = logger.With(
		zap.String("requestUID", requestUID.String()),
		zap.String("imageUrl", req.ImageURL))

	predictions, err := h.service.Classify(ctx, req)
	if err != nil {
		logger.Error("classification failed", zap.Error(err))
		return errorResponse(err), nil
	}

	if predictions == nil {
		predictions = []datamodel.Prediction{}
	}

	body, err := json.Marshal(datamodel.PredictionsBody{Predictions: predictions})
	if err != nil {
		logger.Error("couldn't encode response", zap.Error(err))
		return errorResponse(err), nil
	}

	logger.Info("classification succeeded", zap.Int("predictions", len(predictions)))

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

// errorResponse maps validation failures to a client error status and
// everything else to a server error status. Both carry the same
// {"error": message} body shape.
func errorResponse(err error) events.APIGatewayProxyResponse {
	statusCode := http.StatusInternalServerError
	if errors.Is(err, service.ErrMissingImageURL) {
		statusCode = http.StatusBadRequest
	}

	body, _ := json.Marshal(datamodel.ErrorBody{Error: err.Error()})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
