package stock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/camuig/stock-tracker/internal/logger"
)

// unpack validates resp and decodes its body into T. The body is read once and
// closed on every path.
func unpack[T any](log *logger.Logger, resp *http.Response) (T, error) {
	var out T

	if resp == nil {
		err := &ResponseError{Endpoint: "unknown", MissingBody: true}
		log.Info("can't unpack response", "error", err)
		return out, err
	}

	endpoint := endpointOf(resp)
	if resp.Body != nil {
		defer resp.Body.Close()
	}

	success := resp.StatusCode >= 200 && resp.StatusCode < 300
	hasBody := resp.Body != nil && resp.Body != http.NoBody
	if !success || !hasBody {
		err := &ResponseError{Endpoint: endpoint, Status: resp.StatusCode, MissingBody: !hasBody}
		log.Info("can't unpack response", "endpoint", endpoint, "status", resp.StatusCode, "has_body", hasBody)
		return out, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Info("can't read response body", "endpoint", endpoint, "error", err)
		return out, fmt.Errorf("read %s response: %w", endpoint, err)
	}

	if err := json.Unmarshal(body, &out); err != nil {
		log.Info("can't decode response payload", "endpoint", endpoint, "bytes", len(body), "error", err)
		var zero T
		return zero, &PayloadError{Endpoint: endpoint, Err: err}
	}

	return out, nil
}

// endpointOf returns the request path without the query, which may carry credentials.
func endpointOf(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return "unknown"
	}
	return resp.Request.URL.Path
}
