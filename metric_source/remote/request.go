package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const renderPath = "/render"

var remoteUnavailableStatusCodes = map[int]struct{}{
	http.StatusBadGateway:         {},
	http.StatusServiceUnavailable: {},
	http.StatusGatewayTimeout:     {},
}

type errRemoteUnavailable struct {
	internalError error
}

func (err errRemoteUnavailable) Error() string {
	return err.internalError.Error()
}

func (err errRemoteUnavailable) Unwrap() error {
	return err.internalError
}

type errInvalidRequest struct {
	internalError error
}

func (err errInvalidRequest) Error() string {
	return err.internalError.Error()
}

func (err errInvalidRequest) Unwrap() error {
	return err.internalError
}

func summarizeTarget(query string, step time.Duration) string {
	return fmt.Sprintf("summarize(%s,%q)", query, graphiteInterval(step))
}

func graphiteInterval(step time.Duration) string {
	switch {
	case step%time.Hour == 0:
		return fmt.Sprintf("%dh", step/time.Hour)
	case step%time.Minute == 0:
		return fmt.Sprintf("%dmin", step/time.Minute)
	default:
		return fmt.Sprintf("%ds", step/time.Second)
	}
}

func (remote *Remote) prepareRequest(ctx context.Context, from, until int64, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(remote.config.URL, "/")+renderPath, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("format", "json")
	q.Add("from", strconv.FormatInt(from, 10))
	q.Add("target", target)
	q.Add("until", strconv.FormatInt(until, 10))
	req.URL.RawQuery = q.Encode()

	// a user with an empty password is a token and is still sent
	if remote.config.User != "" {
		req.SetBasicAuth(remote.config.User, remote.config.Password)
	}

	return req, nil
}

func (remote *Remote) makeRequest(req *http.Request, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	resp, err := remote.client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errRemoteUnavailable{
			internalError: fmt.Errorf("the remote server is not available or the response was reset by timeout. Url: %s, Error: %w", req.URL.String(), err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return body, errRemoteUnavailable{internalError: err}
	}

	if _, ok := remoteUnavailableStatusCodes[resp.StatusCode]; ok {
		return body, errRemoteUnavailable{
			internalError: fmt.Errorf("the remote server is not available. Response status %d: %s", resp.StatusCode, string(body)),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return body, errInvalidRequest{
			internalError: fmt.Errorf("bad response status %d: %s", resp.StatusCode, string(body)),
		}
	}

	return body, nil
}
