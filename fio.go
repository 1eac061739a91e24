// Package fiogo is a client for the Fio banka REST API: account movements,
// official statements, server-side download bookmarks, payment order imports
// and merchant card transactions.
//
//	client := fiogo.NewClient(token)
//	st, err := client.MovementsSinceLast(ctx)
//
// The client holds only the immutable access token and is safe for concurrent
// use. It performs no retries and no backoff; the bank rate-limits per token
// server-side and signals exhaustion with apperrors.ErrLimit.
package fiogo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fiosdk/fiogo/apperrors"
	"github.com/fiosdk/fiogo/types/imports"
	"github.com/fiosdk/fiogo/types/statement"
	"github.com/fiosdk/fiogo/validation"
)

// DefaultBaseURL is the production API host with its versioned path prefix.
const DefaultBaseURL = "https://fioapi.fio.cz/v1/rest"

// Client talks to the bank API on behalf of one access token.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the structured logger; slog.Default() otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a client for the given access token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MovementsInPeriod downloads the account movements between start and end,
// both YYYY-MM-DD inclusive. Malformed dates fail with ErrInvalidDateFormat
// before any network call.
func (c *Client) MovementsInPeriod(ctx context.Context, start, end string) (*statement.Statement, error) {
	if !validation.ValidDate(start) || !validation.ValidDate(end) {
		return nil, apperrors.ErrInvalidDateFormat
	}
	return getJSON[statement.Statement](ctx, c, fmt.Sprintf("periods/%s/%s/%s/transactions.json", c.token, start, end))
}

// MovementsInPeriodRaw is MovementsInPeriod in a caller-chosen export format,
// returned as the unparsed response body. Format support is not checked
// locally; the bank rejects unsupported combinations.
func (c *Client) MovementsInPeriodRaw(ctx context.Context, start, end string, format ExportFormat) (string, error) {
	if !validation.ValidDate(start) || !validation.ValidDate(end) {
		return "", apperrors.ErrInvalidDateFormat
	}
	return c.apiGetText(ctx, fmt.Sprintf("periods/%s/%s/%s/transactions.%s", c.token, start, end, format))
}

// MovementsSinceLast downloads the movements added since the last download,
// according to the server-side bookmark.
func (c *Client) MovementsSinceLast(ctx context.Context) (*statement.Statement, error) {
	return getJSON[statement.Statement](ctx, c, fmt.Sprintf("last/%s/transactions.json", c.token))
}

// MovementsSinceLastRaw is MovementsSinceLast in a caller-chosen export format.
func (c *Client) MovementsSinceLastRaw(ctx context.Context, format ExportFormat) (string, error) {
	return c.apiGetText(ctx, fmt.Sprintf("last/%s/transactions.%s", c.token, format))
}

// Statements downloads the official statement with the given year and number.
// The id is an opaque bank-assigned identifier and is not validated locally.
func (c *Client) Statements(ctx context.Context, year, id string) (*statement.Statement, error) {
	if !validation.ValidYear(year) {
		return nil, apperrors.ErrInvalidDateFormat
	}
	return getJSON[statement.Statement](ctx, c, fmt.Sprintf("by-id/%s/%s/%s/transactions.json", c.token, year, id))
}

// StatementsRaw is Statements in a caller-chosen export format.
func (c *Client) StatementsRaw(ctx context.Context, year, id string, format ExportFormat) (string, error) {
	if !validation.ValidYear(year) {
		return "", apperrors.ErrInvalidDateFormat
	}
	return c.apiGetText(ctx, fmt.Sprintf("by-id/%s/%s/%s/transactions.%s", c.token, year, id, format))
}

// SetLastID moves the download bookmark just past the movement with the
// given id, so the next MovementsSinceLast starts after it.
func (c *Client) SetLastID(ctx context.Context, id string) error {
	return c.apiGetEmpty(ctx, fmt.Sprintf("set-last-id/%s/%s/", c.token, id))
}

// SetLastDate moves the download bookmark to the given YYYY-MM-DD date.
func (c *Client) SetLastDate(ctx context.Context, date string) error {
	if !validation.ValidDate(date) {
		return apperrors.ErrInvalidDateFormat
	}
	return c.apiGetEmpty(ctx, fmt.Sprintf("set-last-date/%s/%s/", c.token, date))
}

// LastStatementID returns the year and number of the newest official
// statement, parsed from the bank's bare "<year>,<id>" line.
func (c *Client) LastStatementID(ctx context.Context) (statement.LastStatementID, error) {
	body, err := c.apiGetText(ctx, fmt.Sprintf("lastStatement/%s/statement", c.token))
	if err != nil {
		return statement.LastStatementID{}, err
	}
	return statement.ParseLastStatementID(body)
}

// ImportOrders serializes the batch to the bank's import XML and submits it.
// It returns the raw XML acknowledgment; imports.ParseResponse can decode it.
//
// A successful submission becomes a real payment instruction once a person
// authorizes it in internet banking. The client sends no idempotency key, so
// retrying after an ambiguous failure can submit the batch twice.
func (c *Client) ImportOrders(ctx context.Context, imp imports.Import) (string, error) {
	return c.apiPost(ctx, "import/", imports.FormatXML, imp.ToXML())
}

// ImportRaw submits a caller-built import body in the given wire format
// (xml, abo, pain001_xml, pain008_xml) and returns the raw acknowledgment.
func (c *Client) ImportRaw(ctx context.Context, format imports.Format, body string) (string, error) {
	return c.apiPost(ctx, "import/", format, body)
}

// MerchantTransactionsRaw downloads merchant card transactions for the
// period. The endpoint only serves XML, so no format parameter exists.
func (c *Client) MerchantTransactionsRaw(ctx context.Context, start, end string) (string, error) {
	if !validation.ValidDate(start) || !validation.ValidDate(end) {
		return "", apperrors.ErrInvalidDateFormat
	}
	return c.apiGetText(ctx, fmt.Sprintf("merchant/%s/%s/%s/transactions.xml", c.token, start, end))
}
