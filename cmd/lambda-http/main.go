package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
)

// The app is built once per execution environment and reused across
// invocations, including its resume sessions and database pool.
var (
	initOnce sync.Once
	initErr  error
	proxy    *ginadapter.GinLambdaV2
)

func initApp() {
	cfg, err := config.Load()
	if err == nil {
		var app *bootstrap.App
		app, err = bootstrap.Build(cfg)
		if err == nil {
			proxy = ginadapter.NewV2(app.Router)
			telemetry.Info("lambda.ready", map[string]any{"env": cfg.Env, "storage": cfg.StorageBackend})
			return
		}
	}
	initErr = err
	telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": err.Error()})
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	initOnce.Do(initApp)
	if initErr != nil || proxy == nil {
		return unavailable(req), nil
	}
	return proxy.ProxyWithContext(ctx, req)
}

func unavailable(req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(respond.ErrorResponse{Error: respond.ErrorBody{
		Code:    "unavailable",
		Message: "Service is starting up, try again shortly",
	}})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusServiceUnavailable,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
			"X-Request-Id": req.RequestContext.RequestID,
		},
	}
}

func main() {
	lambda.Start(handler)
}
