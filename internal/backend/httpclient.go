package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperr "askdb/cli/internal/errors"
	"askdb/cli/internal/logging"
)

// askTimeout is generous because the assistant may run several exploration
// rounds against the model before answering.
const (
	askTimeout     = 120 * time.Second
	defaultTimeout = 15 * time.Second
)

// HTTP implements API over the assistant service's REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all requests (e.g., "http://127.0.0.1:8000")
	baseURL string
	// client is the underlying HTTP client for short requests
	client *http.Client
	// askClient carries the longer timeout used for /ask
	askClient *http.Client
}

// New creates a backend API implementation for the given base URL.
func New(baseURL string) API {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{Timeout: defaultTimeout},
		askClient: &http.Client{Timeout: askTimeout},
	}
}

// GetVersion calls GET /version and returns the version string when available.
// This can be used to check connectivity to the assistant service.
func (h *HTTP) GetVersion(ctx context.Context) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	if err := h.getJSON(ctx, "/version", &out); err != nil {
		return "", err
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}

// Ask calls POST /ask with the question and returns the raw answer payload.
func (h *HTTP) Ask(ctx context.Context, question string, showReasoning bool) (*Answer, error) {
	body, err := json.Marshal(map[string]any{
		"question":       question,
		"show_reasoning": showReasoning,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.MalformedPayload, "encode question", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/ask", bytes.NewReader(body))
	if err != nil {
		return nil, apperr.Wrap(apperr.TransportFailed, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := h.askClient.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.TransportFailed, "ask the assistant", err)
	}
	defer resp.Body.Close()
	logging.Debug().
		Str("endpoint", "/ask").
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.New(apperr.ApplicationFailed, readDetail(resp))
	}

	var answer Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return nil, apperr.Wrap(apperr.MalformedPayload, "decode answer", err)
	}
	return &answer, nil
}

// ListDatabases calls GET /databases.
func (h *HTTP) ListDatabases(ctx context.Context) (*DatabaseInfo, error) {
	var out DatabaseInfo
	if err := h.getJSON(ctx, "/databases", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SelectDatabase calls POST /databases/{name}/select.
func (h *HTTP) SelectDatabase(ctx context.Context, name string) (string, error) {
	var out struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Database string `json:"database"`
	}
	path := "/databases/" + url.PathEscape(name) + "/select"
	if err := h.postJSON(ctx, path, nil, &out); err != nil {
		return "", err
	}
	if !out.Success {
		return "", apperr.New(apperr.ApplicationFailed, "database switch was not confirmed")
	}
	return out.Message, nil
}

// UploadDatabase uploads a SQLite .db file via POST /upload-database.
func (h *HTTP) UploadDatabase(ctx context.Context, path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".db") {
		return "", apperr.New(apperr.UploadRejected, "only .db files are allowed")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", apperr.Wrap(apperr.UploadRejected, "open database file", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", apperr.Wrap(apperr.UploadRejected, "prepare upload", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", apperr.Wrap(apperr.UploadRejected, "read database file", err)
	}
	if err := mw.Close(); err != nil {
		return "", apperr.Wrap(apperr.UploadRejected, "finalize upload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/upload-database", &buf)
	if err != nil {
		return "", apperr.Wrap(apperr.TransportFailed, "create request", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.askClient.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.TransportFailed, "upload database", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", apperr.New(apperr.UploadRejected, readDetail(resp))
	}

	var out struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Database string `json:"database"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.Wrap(apperr.MalformedPayload, "decode upload response", err)
	}
	return out.Message, nil
}

// Schema calls GET /database/view, optionally scoped to one table.
func (h *HTTP) Schema(ctx context.Context, table string) (*SchemaView, error) {
	path := "/database/view"
	if table != "" {
		path += "?table=" + url.QueryEscape(table)
	}
	var out SchemaView
	if err := h.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, apperr.New(apperr.ApplicationFailed, out.Error)
	}
	return &out, nil
}

// ExecuteSQL calls POST /execute-sql with a raw query.
func (h *HTTP) ExecuteSQL(ctx context.Context, sql string) (*ExecResult, error) {
	var out ExecResult
	if err := h.postJSON(ctx, "/execute-sql", map[string]any{"sql": sql}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (h *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return apperr.Wrap(apperr.TransportFailed, "create request", err)
	}
	return h.doJSON(req, out)
}

// postJSON performs a POST request with an optional JSON body and decodes the
// JSON response into out.
func (h *HTTP) postJSON(ctx context.Context, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperr.Wrap(apperr.MalformedPayload, "encode request", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, reader)
	if err != nil {
		return apperr.Wrap(apperr.TransportFailed, "create request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return h.doJSON(req, out)
}

func (h *HTTP) doJSON(req *http.Request, out any) error {
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.TransportFailed, "reach the assistant service", err)
	}
	defer resp.Body.Close()
	logging.Debug().
		Str("endpoint", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request")

	if resp.StatusCode != http.StatusOK {
		return apperr.New(apperr.ApplicationFailed, readDetail(resp))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Wrap(apperr.MalformedPayload, "decode response", err)
	}
	return nil
}

// readDetail extracts the service's error detail from a non-200 response.
// FastAPI-style services report errors as {"detail": "..."}.
func readDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil {
		var out struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &out) == nil && out.Detail != "" {
			return out.Detail
		}
	}
	return fmt.Sprintf("service returned status %d", resp.StatusCode)
}
