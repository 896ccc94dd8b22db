package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/hirepilot/hirepilot/internal/client/analysis"
	"github.com/hirepilot/hirepilot/internal/client/intake"
	"github.com/hirepilot/hirepilot/internal/common"
	"github.com/hirepilot/hirepilot/internal/logging"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	logger  logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  logger.With("component", "api"),
	}
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.requestError(resp)
	}
	return nil
}

// Login posts the credentials form-encoded, as the token endpoint expects an
// OAuth2 password flow, and returns the bearer credential.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.requestError(resp)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token response without access_token")
	}
	return body.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, form RegistrationForm) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return c.requestError(resp)
	}
	return nil
}

func (c *HTTPClient) Analyze(ctx context.Context, credential, jobDescription string, files []intake.File) ([]analysis.CandidateResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("job_description", jobDescription); err != nil {
		return nil, err
	}
	for _, f := range files {
		part, err := w.CreatePart(filePartHeader(f))
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze-resumes", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set(common.AuthorizationHeader, "Bearer "+credential)

	c.logger.Debug(ctx, "submitting analysis batch", "files", len(files))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.requestError(resp)
	}

	var results []analysis.CandidateResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	return results, nil
}

// requestError turns a non-2xx response into a *common.RequestError, pulling
// the message from the server's {detail} payload when one is present. A 401
// additionally wraps common.ErrorUnauthorized so callers can react to a
// rejected credential.
func (c *HTTPClient) requestError(resp *http.Response) error {
	var body struct {
		Detail string `json:"detail"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = json.Unmarshal(data, &body)

	reqErr := &common.RequestError{Status: resp.StatusCode, Detail: body.Detail}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", common.ErrorUnauthorized, reqErr)
	}
	return reqErr
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// filePartHeader builds the multipart headers for one resume so the part
// carries the file's declared media type instead of application/octet-stream.
func filePartHeader(f intake.File) textproto.MIMEHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="resume_files"; filename="%s"`, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", f.MediaType)
	return h
}
