package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/observability"
)

// DefaultEndpoint is the extraction server a fresh install talks to.
const DefaultEndpoint = "http://127.0.0.1:5000"

// Messages shown when the server does not provide one.
const (
	MsgFailed          = "Failed to process document"
	MsgRetry           = "Failed to process document. Please try again."
	MsgInvalidResponse = "Invalid response from server"
)

// UploadError is an upload failure with a message fit for display.
type UploadError struct {
	Message string
	Status  int // 0 when no response arrived
	Err     error
}

func (e *UploadError) Error() string { return e.Message }

func (e *UploadError) Unwrap() error { return e.Err }

// Result is a successful extraction.
type Result struct {
	Companies     []company.Record
	ExtractedText string
}

// Client posts documents to an extraction server.
type Client struct {
	endpoint *url.URL
	http     *http.Client
	logger   *log.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client, which has no timeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if err := errors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid endpoint %q", baseURL)
	}
	c := &Client{endpoint: u, http: &http.Client{}, logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the server base URL.
func (c *Client) Endpoint() string { return c.endpoint.String() }

// Upload sends the document as multipart field "file" to /upload. The
// response is all or nothing: any failure returns *UploadError and no
// records.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*Result, error) {
	start := time.Now()
	target := c.endpoint.JoinPath("upload")
	observability.Pipeline().OnExtractStart(ctx, filename)

	res, err := c.upload(ctx, target, filename, r)
	n := 0
	if res != nil {
		n = len(res.Companies)
	}
	observability.Pipeline().OnExtractComplete(ctx, filename, n, time.Since(start), err)
	return res, err
}

func (c *Client) upload(ctx context.Context, target *url.URL, filename string, r io.Reader) (*Result, error) {
	body, contentType, err := multipartBody(filename, r)
	if err != nil {
		return nil, &UploadError{Message: MsgRetry, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), body)
	if err != nil {
		return nil, &UploadError{Message: MsgRetry, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	observability.HTTP().OnRequest(ctx, req.Method, target.Host, target.Path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, target.Host, target.Path, err)
		c.logger.Debug("upload failed", "url", target, "err", err)
		return nil, &UploadError{Message: MsgRetry, Err: err}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, target.Host, target.Path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UploadError{Message: MsgRetry, Status: resp.StatusCode, Err: err}
	}
	return decodeResponse(resp.StatusCode, data)
}

func multipartBody(filename string, r io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("read %s: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// wireResponse accepts both the success and failure shapes.
type wireResponse struct {
	Success       *bool             `json:"success"`
	Companies     *[]company.Record `json:"companies"`
	ExtractedText string            `json:"extracted_text"`
	Error         string            `json:"error"`
}

func decodeResponse(status int, data []byte) (*Result, error) {
	var wr wireResponse
	jsonErr := json.Unmarshal(data, &wr)

	if status < 200 || status > 299 {
		msg := MsgFailed
		if jsonErr == nil && wr.Error != "" {
			msg = wr.Error
		}
		return nil, &UploadError{Message: msg, Status: status}
	}
	if jsonErr != nil {
		return nil, &UploadError{Message: MsgInvalidResponse, Status: status, Err: jsonErr}
	}
	if wr.Success == nil || !*wr.Success || wr.Companies == nil {
		msg := MsgInvalidResponse
		if wr.Error != "" {
			msg = wr.Error
		}
		return nil, &UploadError{Message: msg, Status: status}
	}

	records := make([]company.Record, 0, len(*wr.Companies))
	for _, r := range *wr.Companies {
		records = append(records, r.Normalize())
	}
	return &Result{Companies: records, ExtractedText: wr.ExtractedText}, nil
}
