package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"chalee-api/internal/config"
	"chalee-api/internal/logging"
	"chalee-api/internal/middleware"
	"chalee-api/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

// minRemainingTime is the least execution time an invocation needs to be served
const minRemainingTime = 3 * time.Second

type proxyFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// runtime lazily builds the application once per process and serves API
// Gateway proxy events through it. Only a successful build is kept; after a
// failure the next invocation tries again.
type runtime struct {
	bootstrap func() (proxyFunc, error)
	logger    *zap.Logger
	now       func() time.Time

	mu    sync.Mutex
	proxy proxyFunc
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	rt := newRuntime(bootstrapApp(logger), logger)
	lambda.Start(rt.handle)
}

func newRuntime(bootstrap func() (proxyFunc, error), logger *zap.Logger) *runtime {
	return &runtime{
		bootstrap: bootstrap,
		logger:    logger.With(zap.String("component", "lambda")),
		now:       time.Now,
	}
}

// bootstrapApp wires the application from the environment. The app outlives
// any single invocation, so it is built on a background context.
func bootstrapApp(fallback *zap.Logger) func() (proxyFunc, error) {
	return func() (proxyFunc, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}

		logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
		if err != nil {
			logger = fallback
		}

		app, err := server.New(context.Background(), cfg, logger)
		if err != nil {
			return nil, err
		}

		return ginadapter.New(app.Router).ProxyWithContext, nil
	}
}

func (r *runtime) load() (proxyFunc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.proxy != nil {
		return r.proxy, nil
	}

	start := r.now()
	proxy, err := r.bootstrap()
	if err != nil {
		r.logger.Error("bootstrap failed", zap.Error(err))
		return nil, err
	}
	r.logger.Info("application initialized", zap.Duration("took", r.now().Sub(start)))
	r.proxy = proxy
	return proxy, nil
}

func (r *runtime) handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := req.RequestContext.RequestID
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		requestID = lc.AwsRequestID
	}
	logger := r.logger.With(
		zap.String("request_id", requestID),
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path))

	if deadline, ok := ctx.Deadline(); ok {
		if remaining := deadline.Sub(r.now()); remaining < minRemainingTime {
			logger.Warn("refusing invocation", zap.Duration("remaining", remaining))
			return r.errorResponse(requestID, fmt.Sprintf("Insufficient time: %dms remaining", remaining.Milliseconds())), nil
		}
	}

	proxy, err := r.load()
	if err != nil {
		return r.errorResponse(requestID, err.Error()), nil
	}

	withRequestID(&req, requestID)

	resp, err := proxy(ctx, req)
	if err != nil {
		logger.Error("proxy failed", zap.Error(err))
		return r.errorResponse(requestID, err.Error()), nil
	}
	return resp, nil
}

// withRequestID makes the router reuse the invocation id unless the caller sent one
func withRequestID(req *events.APIGatewayProxyRequest, requestID string) {
	if requestID == "" {
		return
	}
	for k := range req.Headers {
		if strings.EqualFold(k, middleware.RequestIDHeader) {
			return
		}
	}
	for k := range req.MultiValueHeaders {
		if strings.EqualFold(k, middleware.RequestIDHeader) {
			return
		}
	}
	if req.Headers == nil {
		req.Headers = map[string]string{}
	}
	req.Headers[middleware.RequestIDHeader] = requestID
	if req.MultiValueHeaders != nil {
		req.MultiValueHeaders[middleware.RequestIDHeader] = []string{requestID}
	}
}

type errorEnvelope struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

func (r *runtime) errorResponse(requestID, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(errorEnvelope{
		Error:     "Internal Server Error",
		Message:   message,
		RequestID: requestID,
		Timestamp: r.now().UTC().Format(time.RFC3339Nano),
	})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, POST, PUT, PATCH, DELETE, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type, Authorization",
		},
		Body: string(body),
	}
}
