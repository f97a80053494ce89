// Package client implements the resource list controller the admin
// interface is built on: an API client, per-resource stores with
// transient alert state, modal edit sessions, and the mutation
// coordinator that ties them together.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"perpus/internal/usecase"

	"github.com/pkg/errors"
)

// ErrUnauthorized is returned when the server rejects the bearer token.
// Callers never surface it as a banner; it routes to the session's
// unauthorized handler instead.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries the server's error envelope for non-401 failures.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// envelope mirrors the server's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error,omitempty"`
}

// APIClient talks to the library service. The session is injected so the
// bearer token is explicit state rather than ambient global storage.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// NewAPIClient creates a client for the service at baseURL.
func NewAPIClient(baseURL string, session *Session) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    session,
	}
}

// Session returns the session the client authenticates with.
func (c *APIClient) Session() *Session {
	return c.session
}

func (c *APIClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
		}

		return errors.Wrap(err, "failed to decode response envelope")
	}

	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
		}

		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}

// Login authenticates and stores the credentials in the session.
func (c *APIClient) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	var out usecase.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/login", input, &out); err != nil {
		return nil, err
	}

	if err := c.session.SignIn(out.Token, out.User); err != nil {
		return nil, err
	}

	return &out, nil
}

// Register creates a staff account and stores the credentials in the session.
func (c *APIClient) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	var out usecase.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/register", input, &out); err != nil {
		return nil, err
	}

	if err := c.session.SignIn(out.Token, out.User); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- Members ---

func (c *APIClient) ListMembers(ctx context.Context) ([]usecase.MemberRecord, error) {
	var out []usecase.MemberRecord
	if err := c.do(ctx, http.MethodGet, "/member", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *APIClient) CreateMember(ctx context.Context, input *usecase.MemberInput) (*usecase.MemberRecord, error) {
	var out usecase.MemberRecord
	if err := c.do(ctx, http.MethodPost, "/member", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) UpdateMember(ctx context.Context, id uint, input *usecase.MemberInput) (*usecase.MemberRecord, error) {
	var out usecase.MemberRecord
	if err := c.do(ctx, http.MethodPut, "/member/"+formatID(id), input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) DeleteMember(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/member/"+formatID(id), nil, nil)
}

// MemberCard fetches the member's card QR code as PNG bytes.
func (c *APIClient) MemberCard(ctx context.Context, id uint) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/member/"+formatID(id)+"/kartu", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode)}
	}

	return io.ReadAll(resp.Body)
}

// --- Books ---

func (c *APIClient) ListBooks(ctx context.Context) ([]usecase.BookRecord, error) {
	var out []usecase.BookRecord
	if err := c.do(ctx, http.MethodGet, "/buku", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *APIClient) CreateBook(ctx context.Context, input *usecase.BookInput) (*usecase.BookRecord, error) {
	var out usecase.BookRecord
	if err := c.do(ctx, http.MethodPost, "/buku", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) UpdateBook(ctx context.Context, id uint, input *usecase.BookInput) (*usecase.BookRecord, error) {
	var out usecase.BookRecord
	if err := c.do(ctx, http.MethodPut, "/buku/"+formatID(id), input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) DeleteBook(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/buku/"+formatID(id), nil, nil)
}

// --- Loans ---

func (c *APIClient) ListLoans(ctx context.Context) ([]usecase.LoanRecord, error) {
	var out []usecase.LoanRecord
	if err := c.do(ctx, http.MethodGet, "/peminjaman", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *APIClient) ListLoansByMember(ctx context.Context, memberID uint) ([]usecase.LoanRecord, error) {
	var out []usecase.LoanRecord
	if err := c.do(ctx, http.MethodGet, "/peminjaman/"+formatID(memberID), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *APIClient) CreateLoan(ctx context.Context, input *usecase.LoanInput) (*usecase.LoanRecord, error) {
	var out usecase.LoanRecord
	if err := c.do(ctx, http.MethodPost, "/peminjaman", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *APIClient) MarkReturned(ctx context.Context, id uint) (*usecase.LoanRecord, error) {
	var out usecase.LoanRecord
	if err := c.do(ctx, http.MethodPut, "/peminjaman/pengembalian/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// --- Fines ---

func (c *APIClient) ListFines(ctx context.Context) ([]usecase.FineRecord, error) {
	var out []usecase.FineRecord
	if err := c.do(ctx, http.MethodGet, "/denda", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *APIClient) CreateFine(ctx context.Context, input *usecase.FineInput) (*usecase.FineRecord, error) {
	var out usecase.FineRecord
	if err := c.do(ctx, http.MethodPost, "/denda", input, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
