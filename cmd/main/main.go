package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"go.uber.org/zap"

	"github.com/kevinpbuckley/AWSRekognitionCombineTags/config"
	httpclient "github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/client/http"
	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/handler"
	custom_logger "github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/logger"
	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/recognizer"
	"github.com/kevinpbuckley/AWSRekognitionCombineTags/pkg/service"
)

func main() {
	ctx := context.Background()

	if err := config.Init(config.ParseConfigFlag()); err != nil {
		log.Fatal(err.Error())
	}

	logger, _ := custom_logger.GetZapLogger(ctx)
	defer func() {
		// can't handle the error due to https://github.com/uber-go/zap/issues/880
		_ = logger.Sync()
	}()

	// Credentials come from the execution role; nothing is configured here.
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal("failed to load AWS configuration", zap.Error(err))
	}

	svc := service.NewService(
		httpclient.NewImageClient(ctx),
		recognizer.NewRecognizer(rekognition.NewFromConfig(awsCfg), config.Config.Rekognition.MaxLabels),
		config.Config.Rekognition,
	)

	lambda.Start(handler.NewHandler(svc).Handle)
}
