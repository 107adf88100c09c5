package partition

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docqa/internal/config"
)

// apiKeyHeader is the authentication header expected by the hosted API.
const apiKeyHeader = "unstructured-api-key"

// UnstructuredClient implements Partitioner against the hosted
// Unstructured partition API. The processing parameters from config are
// passed through to the API unchanged.
type UnstructuredClient struct {
	client    *http.Client
	cfg       config.PartitionConfig
	outputDir string
}

// NewUnstructured creates a partition client writing output artifacts to
// outputDir, creating the directory if it does not exist.
func NewUnstructured(cfg config.PartitionConfig, outputDir string) (*UnstructuredClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("partition endpoint is required")
	}
	if outputDir == "" {
		return nil, fmt.Errorf("partition output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	return &UnstructuredClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		cfg:       cfg,
		outputDir: outputDir,
	}, nil
}

var _ Partitioner = (*UnstructuredClient)(nil)

// Partition runs the pipeline for inputPath and reads back the output
// artifact at {outputDir}/{baseName}.json.
func (c *UnstructuredClient) Partition(ctx context.Context, inputPath string) (string, error) {
	if err := c.run(ctx, inputPath); err != nil {
		return "", err
	}
	return c.readArtifact(inputPath)
}

// run submits the file to the partition API and writes the response as the
// output artifact.
func (c *UnstructuredClient) run(ctx context.Context, inputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	part, err := w.CreateFormFile("files", filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	fields := map[string]string{
		"strategy":                    c.cfg.Strategy,
		"split_pdf_page":              strconv.FormatBool(c.cfg.SplitPDFPage),
		"split_pdf_allow_failed":      strconv.FormatBool(c.cfg.SplitPDFAllowFailed),
		"split_pdf_concurrency_level": strconv.Itoa(c.cfg.SplitPDFConcurrency),
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("build request: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.cfg.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("partition request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("partition API returned %s: %s", resp.Status, msg)
	}

	out, err := os.Create(c.artifactPath(inputPath))
	if err != nil {
		return fmt.Errorf("create output artifact: %w", err)
	}
	_, err = io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write output artifact: %w", err)
	}
	return nil
}

// readArtifact reads the deterministic output artifact for inputPath.
func (c *UnstructuredClient) readArtifact(inputPath string) (string, error) {
	path := c.artifactPath(inputPath)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return "", fmt.Errorf("read output artifact: %w", err)
	}
	return string(data), nil
}

func (c *UnstructuredClient) artifactPath(inputPath string) string {
	return filepath.Join(c.outputDir, filepath.Base(inputPath)+".json")
}
