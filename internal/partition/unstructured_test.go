package partition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/config"
)

func writeInputFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewUnstructured(t *testing.T) {
	t.Run("requires endpoint", func(t *testing.T) {
		_, err := NewUnstructured(config.PartitionConfig{}, t.TempDir())
		assert.Error(t, err)
	})

	t.Run("requires output directory", func(t *testing.T) {
		_, err := NewUnstructured(config.PartitionConfig{Endpoint: "http://x"}, "")
		assert.Error(t, err)
	})

	t.Run("creates output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		_, err := NewUnstructured(config.PartitionConfig{Endpoint: "http://x"}, dir)
		require.NoError(t, err)

		st, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, st.IsDir())
	})
}

func TestUnstructuredClient_Partition(t *testing.T) {
	const elements = `[{"type":"NarrativeText","text":"hello world"}]`

	var gotKey string
	var gotFields map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(apiKeyHeader)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		_, fh, err := r.FormFile("files")
		require.NoError(t, err)
		assert.Equal(t, "report.pdf", fh.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(elements))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	client, err := NewUnstructured(config.PartitionConfig{
		APIKey:              "secret",
		Endpoint:            srv.URL,
		Strategy:            "hi_res",
		SplitPDFPage:        true,
		SplitPDFAllowFailed: true,
		SplitPDFConcurrency: 15,
		TimeoutSec:          5,
	}, outDir)
	require.NoError(t, err)

	inputPath := writeInputFile(t, "report.pdf", "%PDF-fake")

	content, err := client.Partition(context.Background(), inputPath)
	require.NoError(t, err)
	assert.Equal(t, elements, content)

	// Processing parameters are passed through unchanged.
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "hi_res", gotFields["strategy"])
	assert.Equal(t, "true", gotFields["split_pdf_page"])
	assert.Equal(t, "true", gotFields["split_pdf_allow_failed"])
	assert.Equal(t, "15", gotFields["split_pdf_concurrency_level"])

	// Artifact lands at the deterministic path.
	data, err := os.ReadFile(filepath.Join(outDir, "report.pdf.json"))
	require.NoError(t, err)
	assert.Equal(t, elements, string(data))
}

func TestUnstructuredClient_PartitionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	outDir := t.TempDir()
	client, err := NewUnstructured(config.PartitionConfig{Endpoint: srv.URL, TimeoutSec: 5}, outDir)
	require.NoError(t, err)

	inputPath := writeInputFile(t, "doc.txt", "text")

	_, err = client.Partition(context.Background(), inputPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	// No artifact is written on failure.
	_, statErr := os.Stat(filepath.Join(outDir, "doc.txt.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUnstructuredClient_PartitionMissingInput(t *testing.T) {
	client, err := NewUnstructured(config.PartitionConfig{Endpoint: "http://unused", TimeoutSec: 5}, t.TempDir())
	require.NoError(t, err)

	_, err = client.Partition(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestUnstructuredClient_ReadArtifactMissing(t *testing.T) {
	client, err := NewUnstructured(config.PartitionConfig{Endpoint: "http://unused", TimeoutSec: 5}, t.TempDir())
	require.NoError(t, err)

	_, err = client.readArtifact("/tmp/never-partitioned.pdf")
	assert.ErrorIs(t, err, ErrArtifactMissing)
}

func TestUnstructuredClient_PartitionEmptyArtifact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client, err := NewUnstructured(config.PartitionConfig{Endpoint: srv.URL, TimeoutSec: 5}, t.TempDir())
	require.NoError(t, err)

	inputPath := writeInputFile(t, "empty.txt", "")

	content, err := client.Partition(context.Background(), inputPath)
	require.NoError(t, err)
	assert.Empty(t, content)
}
