package service

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// DefaultLaunchFeedURL lists the next five launches.
const DefaultLaunchFeedURL = "https://fdo.rocketlaunch.live/json/launches/next/5"

type LaunchSource interface {
	FetchLaunches(ctx context.Context) (string, error)
}

// LaunchFetcher reads the raw launch feed. The body is never parsed.
type LaunchFetcher struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

func NewLaunchFetcher(url string, client *http.Client, log *zap.Logger) *LaunchFetcher {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LaunchFetcher{url: url, client: client, log: log}
}

// FetchLaunches issues a single GET and returns the body as-is on any 2xx status.
func (f *LaunchFetcher) FetchLaunches(ctx context.Context) (string, error) {
	data, err := f.get(ctx)
	if err != nil {
		f.log.Error("Error fetching rocket launch data", zap.String("url", f.url), zap.Error(err))
		return "", &TransportError{Op: opFetchLaunches, Err: err}
	}
	return data, nil
}

func (f *LaunchFetcher) get(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("feed returned status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
