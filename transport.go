package fiogo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/fiosdk/fiogo/apperrors"
	"github.com/fiosdk/fiogo/types/imports"
	"github.com/google/uuid"
)

// mapStatusError translates the bank's documented error statuses into the
// closed error set. Unmapped non-2xx statuses become a StatusError; 2xx maps
// to nil.
func mapStatusError(status int) error {
	switch status {
	case http.StatusConflict:
		return apperrors.ErrLimit
	case http.StatusInternalServerError:
		return apperrors.ErrMalformed
	case http.StatusRequestEntityTooLarge:
		return apperrors.ErrTooLarge
	case http.StatusNotFound:
		return apperrors.ErrToken
	case http.StatusUnprocessableEntity:
		return apperrors.ErrHistoricalDataLocked
	}
	if status < 200 || status > 299 {
		return &apperrors.StatusError{StatusCode: status}
	}
	return nil
}

// callLogger returns a logger scoped to one outbound call. The request id is
// only for correlating this client's own log lines; it is not sent to the bank.
func (c *Client) callLogger(restMethod string) *slog.Logger {
	return c.logger.With(
		slog.String("request_id", uuid.NewString()),
		slog.String("endpoint", restMethod),
	)
}

func (c *Client) apiGetText(ctx context.Context, restMethod string) (string, error) {
	logger := c.callLogger(restMethod)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+restMethod, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request failed", slog.String("error", err.Error()))
		return "", err
	}
	defer resp.Body.Close()

	if err := mapStatusError(resp.StatusCode); err != nil {
		logger.Warn("api returned error status", slog.Int("status", resp.StatusCode))
		return "", err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

func (c *Client) apiGetEmpty(ctx context.Context, restMethod string) error {
	_, err := c.apiGetText(ctx, restMethod)
	return err
}

// getJSON fetches restMethod and decodes the body into T. Decode failures are
// returned as a DecodeError; the raw body is logged at Debug so the primary
// error stays small.
func getJSON[T any](ctx context.Context, c *Client, restMethod string) (*T, error) {
	body, err := c.apiGetText(ctx, restMethod)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		logger := c.logger.With(slog.String("endpoint", restMethod))
		logger.Error("could not parse reply", slog.String("error", err.Error()))
		logger.Debug("source json", slog.String("body", body))
		return nil, &apperrors.DecodeError{Endpoint: restMethod, Err: err}
	}
	return out, nil
}

// apiPost submits body as the bank's multipart import form. The file part is
// always named import.xml with an application/xml content type, even for the
// non-XML raw formats; the endpoint requires exactly that.
func (c *Client) apiPost(ctx context.Context, restMethod string, importType imports.Format, body string) (string, error) {
	logger := c.callLogger(restMethod)

	var form strings.Builder
	mw := multipart.NewWriter(&form)
	if err := mw.WriteField("token", c.token); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	if err := mw.WriteField("type", string(importType)); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="import.xml"`)
	header.Set("Content-Type", "application/xml")
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	if _, err := io.WriteString(part, body); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+restMethod, strings.NewReader(form.String()))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request failed", slog.String("error", err.Error()))
		return "", err
	}
	defer resp.Body.Close()

	if err := mapStatusError(resp.StatusCode); err != nil {
		logger.Warn("api returned error status", slog.Int("status", resp.StatusCode))
		return "", err
	}
	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(reply), nil
}
