package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chalee-api/internal/middleware"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func decodeEnvelope(t *testing.T, resp events.APIGatewayProxyResponse) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &env))
	return env
}

func lambdaCtx(t *testing.T, requestID string, remaining time.Duration) context.Context {
	t.Helper()
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: requestID})
	ctx, cancel := context.WithDeadline(ctx, time.Now().Add(remaining))
	t.Cleanup(cancel)
	return ctx
}

func TestHandle_ProxiesWithRequestID(t *testing.T) {
	var seen events.APIGatewayProxyRequest
	rt := newRuntime(func() (proxyFunc, error) {
		return func(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			seen = req
			return events.APIGatewayProxyResponse{StatusCode: http.StatusOK, Body: "ok"}, nil
		}, nil
	}, zap.NewNop())

	resp, err := rt.handle(lambdaCtx(t, "aws-req-1", time.Minute), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/health",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "aws-req-1", seen.Headers[middleware.RequestIDHeader])
}

func TestHandle_KeepsCallerRequestID(t *testing.T) {
	var seen events.APIGatewayProxyRequest
	rt := newRuntime(func() (proxyFunc, error) {
		return func(_ context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			seen = req
			return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
		}, nil
	}, zap.NewNop())

	_, err := rt.handle(lambdaCtx(t, "aws-req-1", time.Minute), events.APIGatewayProxyRequest{
		Headers: map[string]string{"x-request-id": "caller"},
	})

	require.NoError(t, err)
	assert.Equal(t, "caller", seen.Headers["x-request-id"])
	assert.NotContains(t, seen.Headers, middleware.RequestIDHeader)
}

func TestHandle_InsufficientTime(t *testing.T) {
	var calls int32
	rt := newRuntime(func() (proxyFunc, error) {
		atomic.AddInt32(&calls, 1)
		return nil, errors.New("unreachable")
	}, zap.NewNop())

	resp, err := rt.handle(lambdaCtx(t, "aws-req-2", time.Second), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Internal Server Error", env.Error)
	assert.Contains(t, env.Message, "Insufficient time")
	assert.Equal(t, "aws-req-2", env.RequestID)
	assert.NotEmpty(t, env.Timestamp)
	assert.Zero(t, atomic.LoadInt32(&calls), "bootstrap must not run when time is short")
}

func TestHandle_BootstrapRetriesAfterFailure(t *testing.T) {
	var calls int32
	rt := newRuntime(func() (proxyFunc, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, errors.New("database unreachable")
		}
		return func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
		}, nil
	}, zap.NewNop())

	resp, err := rt.handle(lambdaCtx(t, "aws-req-3", time.Minute), events.APIGatewayProxyRequest{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "database unreachable", decodeEnvelope(t, resp).Message)

	for i := 0; i < 2; i++ {
		resp, err = rt.handle(lambdaCtx(t, "aws-req-4", time.Minute), events.APIGatewayProxyRequest{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "a successful build is reused")
}

func TestHandle_ConcurrentColdStartBuildsOnce(t *testing.T) {
	var calls int32
	rt := newRuntime(func() (proxyFunc, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
		}, nil
	}, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := rt.handle(context.Background(), events.APIGatewayProxyRequest{})
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestHandle_ProxyError(t *testing.T) {
	rt := newRuntime(func() (proxyFunc, error) {
		return func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return events.APIGatewayProxyResponse{}, errors.New("malformed event")
		}, nil
	}, zap.NewNop())

	resp, err := rt.handle(context.Background(), events.APIGatewayProxyRequest{
		RequestContext: events.APIGatewayProxyRequestContext{RequestID: "gw-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "malformed event", env.Message)
	assert.Equal(t, "gw-1", env.RequestID)
}
