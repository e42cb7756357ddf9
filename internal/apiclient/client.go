// Package apiclient реализует тонкую обёртку над REST API стейкинг-банка.
//
// Каждый запрос получает заголовок Authorization: Bearer <token>, если токен
// есть в хранилище; иначе заголовок не ставится и пишется предупреждение.
// Клиент не кеширует ответы, не повторяет запросы и не задаёт таймаут,
// если он не указан в конфиге. Ошибки сети и HTTP отдаются вызывающему как есть.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/magabrotheeeer/staking-bank/internal/config"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
)

// TokenSource отдаёт текущий bearer-токен, пустая строка означает его отсутствие.
type TokenSource interface {
	Token() (string, error)
}

// Client клиент удалённого API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	metrics    *Metrics
	log        *slog.Logger
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client, например в тестах.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics оборачивает транспорт клиента метриками prometheus.
// Порядок относительно WithHTTPClient не важен.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New создаёт клиент. Базовый адрес берётся из cfg.BaseURL, либо используется боевой адрес.
func New(cfg config.API, tokens TokenSource, log *slog.Logger, opts ...Option) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = config.DefaultBaseURL
	}
	c := &Client{
		baseURL:    base,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics != nil {
		hc := *c.httpClient
		hc.Transport = c.metrics.InstrumentRoundTripper(hc.Transport)
		c.httpClient = &hc
	}
	return c
}

// BaseURL возвращает адрес API без завершающего слэша.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		var b bytes.Buffer
		if err := json.NewEncoder(&b).Encode(body); err != nil {
			return nil, err
		}
		buf = &b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		c.log.Warn("no token found, sending request without authorization",
			slog.String("method", method),
			slog.String("path", path),
		)
	}
	return req, nil
}

// do выполняет запрос и декодирует JSON-ответ в out (если out != nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	op := "apiclient." + method + " " + path

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", sl.Op(op), sl.Err(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func withSearch(path, search string) string {
	if search == "" {
		return path
	}
	return path + "?" + url.Values{"search": {search}}.Encode()
}
