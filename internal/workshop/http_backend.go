package workshop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/saulo-duarte/oficina-poemas/internal/idea"
	"github.com/saulo-duarte/oficina-poemas/internal/rhyme"
	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
	"github.com/saulo-duarte/oficina-poemas/internal/theme"
)

const (
	PathThemes   = "/api/themes"
	PathIdeas    = "/api/ideas"
	PathRhymes   = "/api/rhymes"
	PathSpelling = "/api/spelling"
	PathExport   = "/api/export"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// HTTPBackend implements Backend against a running Oficina de Poemas server.
type HTTPBackend struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPBackend(baseURL string, httpClient *http.Client) *HTTPBackend {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPBackend{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (b *HTTPBackend) GenerateThemes(ctx context.Context, interest string) ([]string, error) {
	var out theme.ThemeResponse
	if err := b.postJSON(ctx, PathThemes, theme.ThemeRequest{Interest: interest}, &out); err != nil {
		return nil, err
	}
	return out.Themes, nil
}

func (b *HTTPBackend) GenerateIdeas(ctx context.Context, t string) ([]string, error) {
	var out idea.IdeaResponse
	if err := b.postJSON(ctx, PathIdeas, idea.IdeaRequest{Theme: t}, &out); err != nil {
		return nil, err
	}
	return out.Ideas, nil
}

func (b *HTTPBackend) FindRhymes(ctx context.Context, word, t string) ([]rhyme.Rhyme, error) {
	var out rhyme.RhymeResponse
	if err := b.postJSON(ctx, PathRhymes, rhyme.RhymeRequest{Word: word, Theme: t}, &out); err != nil {
		return nil, err
	}
	return out.Rhymes, nil
}

func (b *HTTPBackend) CheckSpelling(ctx context.Context, text string) ([]spelling.Correction, error) {
	var out spelling.SpellingResponse
	if err := b.postJSON(ctx, PathSpelling, spelling.SpellingRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	if out.Errors == nil {
		out.Errors = []spelling.Correction{}
	}
	return out.Errors, nil
}

func (b *HTTPBackend) Export(ctx context.Context, req export.ExportRequest) (*export.Document, error) {
	resp, err := b.post(ctx, PathExport, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		return nil, apiError(resp.StatusCode, body)
	}

	filename := export.Filename(req.Title)
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		filename = params["filename"]
	}

	return &export.Document{
		Filename:    filename,
		ContentType: resp.Header.Get("Content-Type"),
		Content:     body,
	}, nil
}

func (b *HTTPBackend) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return b.httpClient.Do(req)
}

func (b *HTTPBackend) postJSON(ctx context.Context, path string, payload, out any) error {
	resp, err := b.post(ctx, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode/100 != 2 {
		return apiError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid response from %s: %w", path, err)
	}
	return nil
}

func apiError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		payload.Error = http.StatusText(status)
	}
	return &APIError{Status: status, Message: payload.Error}
}
