// Package petapi talks to the two external collaborators of the storefront:
// the pet submission endpoint and the public random-image API. Both are single
// request/response calls with no retry; callers re-invoke to retry.
package petapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL      = "https://reqres.in/api"
	DefaultImageURL     = "https://dog.ceo/api/breeds/image/random"
	DefaultImageTimeout = 8 * time.Second

	maxBodyBytes = 1 << 20
)

// Kind discriminates the failure variants of the client.
type Kind string

const (
	// KindSubmission covers failures of the submission endpoint, remote or
	// transport-level.
	KindSubmission Kind = "submission"
	// KindFetch covers failures of the image endpoint, including timeouts.
	KindFetch Kind = "fetch"
	// KindCancelled marks a fetch aborted by the caller; from the user's
	// perspective this is a non-error.
	KindCancelled Kind = "cancelled"
)

// Error is the tagged error the client returns for every failure.
type Error struct {
	Kind Kind
	// Status is the HTTP status when the remote answered; 0 when it was
	// unreachable.
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("petapi: %s failed: status=%d: %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("petapi: %s failed: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client calls the external pet APIs.
type Client struct {
	http         *http.Client
	baseURL      string
	token        string
	imageURL     string
	imageTimeout time.Duration
}

type Options struct {
	BaseURL      string
	Token        string
	ImageURL     string
	ImageTimeout time.Duration
	// HTTPClient lets tests inject a transport.
	HTTPClient *http.Client
}

func NewClient(opts Options) *Client {
	c := &Client{
		http:         opts.HTTPClient,
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		token:        opts.Token,
		imageURL:     opts.ImageURL,
		imageTimeout: opts.ImageTimeout,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.imageURL == "" {
		c.imageURL = DefaultImageURL
	}
	if c.imageTimeout <= 0 {
		c.imageTimeout = DefaultImageTimeout
	}
	return c
}

// SubmitRequest is the normalized pet record sent to the submission endpoint.
type SubmitRequest struct {
	Name  string          `json:"name"`
	Breed string          `json:"breed"`
	Age   int             `json:"age"`
	Price decimal.Decimal `json:"price"`
}

// SubmitResponse carries the server-assigned id.
type SubmitResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// SubmitPetDetails POSTs the record with the static bearer credential. Any
// non-2xx status or transport failure comes back as a KindSubmission Error.
func (c *Client) SubmitPetDetails(ctx context.Context, in SubmitRequest) (SubmitResponse, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return SubmitResponse{}, &Error{Kind: KindSubmission, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(body))
	if err != nil {
		return SubmitResponse{}, &Error{Kind: KindSubmission, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return SubmitResponse{}, &Error{Kind: KindSubmission, Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SubmitResponse{}, &Error{
			Kind:   KindSubmission,
			Status: resp.StatusCode,
			Err:    errors.New(strings.TrimSpace(string(raw))),
		}
	}

	var out SubmitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return SubmitResponse{}, &Error{Kind: KindSubmission, Err: err}
	}
	return out, nil
}

type imageResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// FetchRandomImage GETs a random image URL under a client-side timeout. A
// pre-cancelled context never issues the request. Caller cancellation maps to
// KindCancelled; everything else, timeout included, is KindFetch.
func (c *Client) FetchRandomImage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &Error{Kind: KindCancelled, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.imageTimeout)
	// releases the timeout timer on every exit path
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.imageURL, nil)
	if err != nil {
		return "", &Error{Kind: KindFetch, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", &Error{Kind: KindCancelled, Err: err}
		}
		return "", &Error{Kind: KindFetch, Err: err}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &Error{
			Kind:   KindFetch,
			Status: resp.StatusCode,
			Err:    errors.New(strings.TrimSpace(string(raw))),
		}
	}

	var out imageResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &Error{Kind: KindFetch, Err: err}
	}
	if out.Status != "success" {
		return "", &Error{Kind: KindFetch, Err: fmt.Errorf("image api status %q", out.Status)}
	}
	return out.Message, nil
}
