package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is where the extraction service listens by default.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout bounds one upload, parsing included.
const DefaultTimeout = 120 * time.Second

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "ResumeParser/1.0"

// Options configures a Client.
type Options struct {
	BaseURL   string        `validate:"required,url"`
	Timeout   time.Duration `validate:"gt=0"`
	UserAgent string
	Logger    *zerolog.Logger `validate:"-"`
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:   DefaultBaseURL,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client uploads resumes to the extraction service.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient validates opts and builds a Client. A nil opts uses DefaultOptions.
func NewClient(opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validator.New().Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid extraction client options: %w", err)
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "extraction").Logger()
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		userAgent:  opts.UserAgent,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
	}, nil
}

// BaseURL returns the service root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Upload sends one resume file to POST {base}/parse as the multipart field
// "file" and normalizes the entities in the response.
func (c *Client) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, &APIError{
			Status:  http.StatusBadRequest,
			Message: "Failed to read file",
			Cause:   err,
		}
	}

	contentType, err := Preflight(filename, data)
	if err != nil {
		c.logger.Debug().Str("filename", filename).Err(err).Msg("upload rejected before sending")
		return nil, err
	}

	body, formType, err := multipartBody(filepath.Base(filename), contentType, data)
	if err != nil {
		return nil, &APIError{Message: "failed to build upload request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse", body)
	if err != nil {
		return nil, &APIError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", formType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", req.URL.String()).Msg("extraction service unreachable")
		return nil, &APIError{Message: ConnectionErrorMessage, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, decodeErr := decodePayload(resp.Body)

	c.logger.Debug().
		Str("filename", filename).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("extraction service responded")

	if err := Outcome(resp.StatusCode, payload); err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: "invalid response from extraction service",
			Cause:   decodeErr,
		}
	}

	result := resultFromPayload(payload)
	if result.Filename == "" {
		result.Filename = filepath.Base(filename)
	}
	if result.FileType == "" {
		result.FileType = strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	}
	return result, nil
}

// Health reports whether GET {base}/health answers with a 2xx status.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("health check failed")
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func multipartBody(filename, contentType string, data []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(filename)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

// decodePayload reads a JSON body. An unreadable or non-JSON body yields the
// null value together with the error.
func decodePayload(r io.Reader) (types.EntityValue, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return types.NullValue(), err
	}
	var payload types.EntityValue
	if err := json.Unmarshal(raw, &payload); err != nil {
		return types.NullValue(), err
	}
	return payload, nil
}
