package contact

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// DefaultEndpoint is the Formspree form the site posts to.
const DefaultEndpoint = "https://formspree.io/f/mblgrnzb"

// StatusError is returned when the endpoint answers outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("acceptance endpoint returned %d %s", e.Code, http.StatusText(e.Code))
}

// HTTPRelay posts submissions to a form backend such as Formspree.
type HTTPRelay struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPRelay uses endpoint, or DefaultEndpoint when empty, with a client
// that gives up after timeout.
func NewHTTPRelay(endpoint string, timeout time.Duration) *HTTPRelay {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPRelay{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

// Send posts f as multipart/form-data. Any 2xx is acceptance; the body is
// drained and ignored.
func (r *HTTPRelay) Send(ctx context.Context, f Fields) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, kv := range [][2]string{
		{string(FieldName), f.Name},
		{string(FieldEmail), f.Email},
		{string(FieldMessage), f.Message},
	} {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return fmt.Errorf("write %s field: %w", kv[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Endpoint, &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
