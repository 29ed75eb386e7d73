package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/camuig/stock-tracker/internal/api"
)

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestRequestStockListContent(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "/api/v1/stock/symbol", req.URL.Path)
			require.Equal(t, "secret", req.Header.Get(api.TokenHeader))
			require.NotContains(t, req.URL.String(), "secret")
			require.Equal(t, "US", req.URL.Query().Get("exchange"))
			require.Equal(t, "application/json", req.Header.Get("Accept"))
			return okResponse("[]"), nil
		}).
		Times(1)

	// Arrange: create the client
	client := api.NewClient("secret", api.WithHTTPClient(httpClient), api.WithBaseURL("http://localhost:8080/api/v1/"))

	// Act
	resp, err := client.RequestStockListContent(t.Context())

	// Assert: the raw response is handed back untouched
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestRequestStockQuote(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.True(t, strings.HasSuffix(req.URL.Path, "/quote"))
			require.Equal(t, "AAPL", req.URL.Query().Get("symbol"))
			require.Empty(t, req.URL.Query().Get("exchange"))
			return okResponse(`{"c":1}`), nil
		}).
		Times(1)

	client := api.NewClient("secret", api.WithHTTPClient(httpClient))

	resp, err := client.RequestStockQuote(t.Context(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NoError(t, resp.Body.Close())
}

func TestRequestStockQuote_EmptyTicker(t *testing.T) {
	t.Parallel()

	// Arrange: no request may be issued
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Do(gomock.Any()).Times(0)

	client := api.NewClient("secret", api.WithHTTPClient(httpClient))

	// Act
	resp, err := client.RequestStockQuote(t.Context(), "")

	// Assert
	require.Error(t, err)
	require.Nil(t, resp)
}

func TestWithExchangeAndHeader(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "MOEX", req.URL.Query().Get("exchange"))
			require.Equal(t, "stock-tracker/1.0", req.Header.Get("User-Agent"))
			return okResponse("[]"), nil
		}).
		Times(1)

	client := api.NewClient("", api.WithHTTPClient(httpClient), api.WithExchange("MOEX"), api.WithHeader(http.Header{
		"User-Agent": []string{"stock-tracker/1.0"},
	}))

	resp, err := client.RequestStockListContent(t.Context())
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
}

func TestRequest_ErrPerformingRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	transportErr := errors.New("connection refused")
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(nil, transportErr).
		Times(1)

	client := api.NewClient("", api.WithHTTPClient(httpClient))

	resp, err := client.RequestStockQuote(t.Context(), "AAPL")
	require.ErrorIs(t, err, transportErr)
	require.Nil(t, resp)
}

func TestRequest_ErrCreatingRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().Do(gomock.Any()).Times(0)

	client := api.NewClient("", api.WithHTTPClient(httpClient), api.WithBaseURL(string([]rune{0x7f})))

	resp, err := client.RequestStockListContent(t.Context())
	require.Error(t, err)
	require.Nil(t, resp)
}

func TestRequest_TransportErrorHidesToken(t *testing.T) {
	t.Parallel()

	// Arrange: fail the way http.Client does, echoing the request URL
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			return nil, &url.Error{Op: "Get", URL: req.URL.String() + "&token=" + req.Header.Get(api.TokenHeader), Err: errors.New("dial tcp: connection refused")}
		}).
		Times(1)

	client := api.NewClient("SECRET", api.WithHTTPClient(httpClient))

	// Act
	resp, err := client.RequestStockQuote(t.Context(), "AAPL")

	// Assert
	require.Nil(t, resp)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "SECRET")
	require.Contains(t, err.Error(), "connection refused")

	var urlErr *url.Error
	require.ErrorAs(t, err, &urlErr)
}
