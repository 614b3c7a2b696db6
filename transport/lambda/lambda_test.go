package lambda_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"github.com/x4b1/msgbox/codec"
	"github.com/x4b1/msgbox/handler"
	"github.com/x4b1/msgbox/log"
	"github.com/x4b1/msgbox/store/badger"
	"github.com/x4b1/msgbox/transport/lambda"
)

func newHandler(t *testing.T) *lambda.Handler {
	t.Helper()

	store, err := badger.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	logger := log.Discard()

	return lambda.NewHandler(
		handler.NewWriter(store, handler.WithLogger(logger)),
		handler.NewReader(store, handler.WithLogger(logger)),
		lambda.WithLogger(logger),
		lambda.WithMaxBodyBytes(256),
	)
}

func event(method, path, body string) events.APIGatewayV2HTTPRequest {
	return events.APIGatewayV2HTTPRequest{
		RouteKey: "$default",
		RawPath:  path,
		Body:     body,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			RequestID: "req-1",
			HTTP:      events.APIGatewayV2HTTPRequestContextHTTPDescription{Method: method, Path: path},
		},
	}
}

func handle(t *testing.T, h *lambda.Handler, req events.APIGatewayV2HTTPRequest) events.APIGatewayV2HTTPResponse {
	t.Helper()

	res, err := h.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "application/json", res.Headers["Content-Type"])

	return res
}

func TestCreateGetAndList(t *testing.T) {
	h := newHandler(t)

	res := handle(t, h, event(http.MethodPost, "/messages", `{"title":"Hello","body":"World"}`))
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created codec.MessageJSON
	require.NoError(t, codec.Unmarshal([]byte(res.Body), &created))
	require.Equal(t, "Hello", created.Title)
	require.Equal(t, "/messages/"+created.ID, res.Headers["Location"])

	get := event(http.MethodGet, "/messages/"+created.ID, "")
	get.RouteKey = "GET /messages/{id}"
	get.PathParameters = map[string]string{"id": created.ID}

	res = handle(t, h, get)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotContains(t, res.Headers, "Location")
	require.JSONEq(t, `{"id":"`+created.ID+`","title":"Hello","body":"World","createdAt":"`+created.CreatedAt+`"}`, res.Body)

	list := event(http.MethodGet, "/messages", "")
	list.QueryStringParameters = map[string]string{"limit": "5"}

	res = handle(t, h, list)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"items":[{"id":"`+created.ID+`","title":"Hello"}]}`, res.Body)
}

func TestBase64Body(t *testing.T) {
	h := newHandler(t)

	req := event(http.MethodPost, "/messages", base64.StdEncoding.EncodeToString([]byte(`{"title":"b64","body":""}`)))
	req.IsBase64Encoded = true

	res := handle(t, h, req)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	req.Body = "***"
	res = handle(t, h, req)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestErrors(t *testing.T) {
	h := newHandler(t)

	for _, tc := range []struct {
		name   string
		req    events.APIGatewayV2HTTPRequest
		status int
	}{
		{"missing title", event(http.MethodPost, "/messages", `{"body":"x"}`), http.StatusBadRequest},
		{"invalid json", event(http.MethodPost, "/messages", `{`), http.StatusBadRequest},
		{"too large", event(http.MethodPost, "/messages", `{"title":"`+string(make([]byte, 300))+`"}`), http.StatusBadRequest},
		{"unknown id", event(http.MethodGet, "/messages/nope", ""), http.StatusNotFound},
		{"unknown route", event(http.MethodGet, "/other", ""), http.StatusNotFound},
		{"method not allowed", event(http.MethodPut, "/messages", ""), http.StatusMethodNotAllowed},
		{"delete by id", event(http.MethodDelete, "/messages/x", ""), http.StatusMethodNotAllowed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := handle(t, h, tc.req)
			require.Equal(t, tc.status, res.StatusCode, res.Body)
		})
	}

	bad := event(http.MethodGet, "/messages", "")
	bad.QueryStringParameters = map[string]string{"limit": "ten"}
	require.Equal(t, http.StatusBadRequest, handle(t, h, bad).StatusCode)
}

func TestNamedStagePrefix(t *testing.T) {
	h := newHandler(t)

	req := event(http.MethodGet, "/prod/messages", "")
	req.RequestContext.Stage = "prod"

	res := handle(t, h, req)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"items":[]}`, res.Body)
}

func TestHealth(t *testing.T) {
	res := handle(t, newHandler(t), event(http.MethodGet, "/healthz", ""))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, res.Body)
}
