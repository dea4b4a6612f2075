package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"scribe/internal/config"
	"scribe/internal/logging"
	"scribe/internal/services"
	"scribe/internal/transcription"
)

const (
	defaultRequestTimeout = 30 * time.Second
	apiPrefix             = "/api/v1"
)

// HTTPDoer describes the HTTP client used to reach the transcription service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues single-attempt requests against the transcription service.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logging.NewComponentLogger(logger, "transcriber")
		}
	}
}

// NewClient constructs a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// NewFromConfig constructs a client using the configured endpoint and timeout.
func NewFromConfig(cfg *config.Config, opts ...Option) *Client {
	if cfg == nil {
		return NewClient("", opts...)
	}
	timeout := defaultRequestTimeout
	if cfg.Service.RequestTimeout > 0 {
		timeout = time.Duration(cfg.Service.RequestTimeout) * time.Second
	}
	merged := append([]Option{WithHTTPClient(&http.Client{Timeout: timeout})}, opts...)
	return NewClient(cfg.Service.BaseURL, merged...)
}

// SubmitFile submits an upload for transcription. The payload is read fully
// into the multipart body before the request is issued.
func (c *Client) SubmitFile(ctx context.Context, filename string, payload io.Reader, opts SubmitOptions) (*transcription.Job, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("submit file: build form: %w", err)
	}
	if _, err := io.Copy(part, payload); err != nil {
		return nil, fmt.Errorf("submit file: read payload: %w", err)
	}
	if err := writeSubmitFields(writer, opts); err != nil {
		return nil, fmt.Errorf("submit file: build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("submit file: build form: %w", err)
	}

	return c.submit(ctx, &body, writer.FormDataContentType())
}

// SubmitYouTube submits a YouTube URL for transcription. The URL is passed
// through unvalidated; the service rejects bad values with a detail message.
func (c *Client) SubmitYouTube(ctx context.Context, videoURL string, opts SubmitOptions) (*transcription.Job, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("youtube_url", videoURL); err != nil {
		return nil, fmt.Errorf("submit youtube: build form: %w", err)
	}
	if err := writeSubmitFields(writer, opts); err != nil {
		return nil, fmt.Errorf("submit youtube: build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("submit youtube: build form: %w", err)
	}

	return c.submit(ctx, &body, writer.FormDataContentType())
}

func writeSubmitFields(writer *multipart.Writer, opts SubmitOptions) error {
	if lang := strings.TrimSpace(opts.Language); lang != "" && lang != "auto" {
		if err := writer.WriteField("language", lang); err != nil {
			return err
		}
	}
	if model := strings.TrimSpace(opts.Model); model != "" {
		if err := writer.WriteField("model_size", model); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) submit(ctx context.Context, body io.Reader, contentType string) (*transcription.Job, error) {
	status, payload, err := c.do(ctx, http.MethodPost, apiPrefix+"/transcriptions", body, contentType)
	if err != nil {
		return nil, &SubmissionError{Err: err}
	}
	if status >= http.StatusMultipleChoices {
		return nil, &SubmissionError{StatusCode: status, Detail: errorDetail(payload)}
	}
	var job transcription.Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, &SubmissionError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return &job, nil
}

// Status fetches the current snapshot for a job.
func (c *Client) Status(ctx context.Context, id string) (*transcription.Job, error) {
	status, payload, err := c.do(ctx, http.MethodGet, apiPrefix+"/transcriptions/"+url.PathEscape(id), nil, "")
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if status >= http.StatusMultipleChoices {
		return nil, &FetchError{StatusCode: status, Detail: errorDetail(payload)}
	}
	var job transcription.Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return &job, nil
}

// List fetches all jobs known to the service.
func (c *Client) List(ctx context.Context) ([]transcription.Job, error) {
	status, payload, err := c.do(ctx, http.MethodGet, apiPrefix+"/transcriptions", nil, "")
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	if status >= http.StatusMultipleChoices {
		return nil, &FetchError{StatusCode: status, Detail: errorDetail(payload)}
	}
	var jobs []transcription.Job
	if err := json.Unmarshal(payload, &jobs); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return jobs, nil
}

// Delete removes a job from the service.
func (c *Client) Delete(ctx context.Context, id string) error {
	status, payload, err := c.do(ctx, http.MethodDelete, apiPrefix+"/transcriptions/"+url.PathEscape(id), nil, "")
	if err != nil {
		return &FetchError{Err: err}
	}
	if status >= http.StatusMultipleChoices {
		return &FetchError{StatusCode: status, Detail: errorDetail(payload)}
	}
	return nil
}

// Export fetches the transcript of a job in the requested format.
func (c *Client) Export(ctx context.Context, id string, format transcription.Format) (*ExportResult, error) {
	query := url.Values{"format": {string(format)}}
	path := apiPrefix + "/transcriptions/" + url.PathEscape(id) + "/export?" + query.Encode()

	status, payload, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, &ExportError{Err: err}
	}
	if status >= http.StatusMultipleChoices {
		return nil, &ExportError{StatusCode: status, Detail: errorDetail(payload)}
	}
	var result ExportResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, &ExportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return &result, nil
}

// Info fetches the service health and capability descriptor.
func (c *Client) Info(ctx context.Context) (*BackendInfo, error) {
	status, payload, err := c.do(ctx, http.MethodGet, apiPrefix+"/status", nil, "")
	if err != nil {
		return nil, fmt.Errorf("backend not available: %w", err)
	}
	if status >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("backend not available: http %d", status)
	}
	var info BackendInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, fmt.Errorf("backend status: decode response: %w", err)
	}
	return &info, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID, ok := services.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	c.logger.Debug("transcription service request",
		logging.String("method", method),
		logging.String("path", path),
		logging.String(logging.FieldCorrelationID, requestID),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, payload, nil
}
