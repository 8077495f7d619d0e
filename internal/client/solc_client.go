package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aurora_deployer/internal/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCompilerVersionNotFound is returned when a version is not a published release.
var ErrCompilerVersionNotFound = errors.New("compiler version not found")

// SolcClient defines the interface for querying published compiler releases.
type SolcClient interface {
	GetReleaseList(ctx context.Context) (*entity.SolcReleaseList, error)
	GetRelease(ctx context.Context, version string) (*entity.SolcBuild, error)
}

// solcClientImpl is the implementation of SolcClient.
type solcClientImpl struct {
	client         *fasthttp.Client
	releaseListURL string
	timeout        time.Duration
	logger         *zap.Logger
}

// NewSolcClient creates a new compiler release client reading releaseListURL.
func NewSolcClient(releaseListURL string, timeout time.Duration, logger *zap.Logger) SolcClient {
	return &solcClientImpl{
		client:         &fasthttp.Client{},
		releaseListURL: releaseListURL,
		timeout:        timeout,
		logger:         logger.Named("SolcClient"),
	}
}

// GetReleaseList downloads and decodes the release list.
func (c *solcClientImpl) GetReleaseList(ctx context.Context) (*entity.SolcReleaseList, error) {
	c.logger.Debug("Requesting compiler release list", zap.String("url", c.releaseListURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.releaseListURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		c.logger.Error("Failed to execute request for release list", zap.String("url", c.releaseListURL), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request to %s: %w", c.releaseListURL, err)
	}

	rawBody := resp.Body()
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Release list request failed",
			zap.String("url", c.releaseListURL),
			zap.Int("statusCode", resp.StatusCode()),
		)
		return nil, fmt.Errorf("release list request to %s failed with status %d", c.releaseListURL, resp.StatusCode())
	}

	var list entity.SolcReleaseList
	if err := json.Unmarshal(rawBody, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal release list from %s: %w", c.releaseListURL, err)
	}

	c.logger.Debug("Release list decoded",
		zap.Int("builds", len(list.Builds)),
		zap.String("latestRelease", list.LatestRelease))
	return &list, nil
}

// GetRelease returns the build published for version.
func (c *solcClientImpl) GetRelease(ctx context.Context, version string) (*entity.SolcBuild, error) {
	list, err := c.GetReleaseList(ctx)
	if err != nil {
		return nil, err
	}

	path, ok := list.Releases[version]
	if !ok {
		return nil, fmt.Errorf("%w: %s (latest release is %s)", ErrCompilerVersionNotFound, version, list.LatestRelease)
	}
	for i := range list.Builds {
		if list.Builds[i].Path == path {
			return &list.Builds[i], nil
		}
	}
	return &entity.SolcBuild{Path: path, Version: version}, nil
}
