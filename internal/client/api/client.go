package api

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
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// DefaultTimeout ограничивает время одного запроса
const DefaultTimeout = 15 * time.Second

// RequestIDHeader передается с каждым запросом для трассировки
const RequestIDHeader = "X-Request-ID"

//go:generate moq -out tokens_mock.go . TokenSource

// TokenSource отдает текущий bearer token.
// Пустая строка без ошибки означает, что пользователь не вошел.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthMode определяет, нужен ли токен для запроса
type AuthMode int

const (
	// AuthRequired - без токена запрос не отправляется
	AuthRequired AuthMode = iota
	// AuthOptional - токен прикладывается, если есть
	AuthOptional
)

// Request описывает один вызов API
type Request struct {
	Body     any
	Query    url.Values
	Method   string
	Path     string
	Op       string // имя операции для логов и ошибок
	Fallback string // сообщение, если сервер не прислал свое
	Auth     AuthMode
}

// Result - успешно разобранный конверт ответа
type Result struct {
	Pagination *api.Pagination
	Message    string
	Data       json.RawMessage
}

// Decode декодирует data конверта в out
func (r *Result) Decode(out any) error {
	if len(r.Data) == 0 {
		return errors.New("response has no data")
	}
	return json.Unmarshal(r.Data, out)
}

// Client представляет HTTP клиент для одного базового URL платформы
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут запроса
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient подменяет транспорт (используется в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  slog.New(slog.DiscardHandler),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Токен передается только тому же хосту (с портом), что и в исходном запросе
				if len(via) == 0 {
					return nil
				}
				if req.URL.Host != via[0].URL.Host {
					req.Header.Del("Authorization")
					return nil
				}
				if auth := via[0].Header.Get("Authorization"); auth != "" {
					req.Header.Set("Authorization", auth)
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do выполняет запрос и классифицирует результат.
// Любая ошибка имеет тип *Error. Повторов нет: повтор решает вызывающий.
func (c *Client) Do(ctx context.Context, r Request) (*Result, error) {
	token, err := c.token(ctx, r)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if r.Body != nil {
		jsonData, err := json.Marshal(r.Body)
		if err != nil {
			return nil, &Error{Op: r.Op, Kind: KindTransport, Message: r.fallback(), Err: fmt.Errorf("failed to marshal request body: %w", err)}
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, bodyReader)
	if err != nil {
		return nil, &Error{Op: r.Op, Kind: KindTransport, Message: r.fallback(), Err: fmt.Errorf("failed to create request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			slog.String("op", r.Op),
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, c.transportError(r, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(r, fmt.Errorf("failed to read response body: %w", err))
	}

	c.logger.Debug("request completed",
		slog.String("op", r.Op),
		slog.String("method", r.Method),
		slog.String("path", r.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID))

	return decodeResponse(r, resp.StatusCode, respBody)
}

// token достает токен согласно AuthMode запроса
func (c *Client) token(ctx context.Context, r Request) (string, error) {
	if c.tokens == nil {
		if r.Auth == AuthRequired {
			return "", &Error{Op: r.Op, Kind: KindPrecondition, Message: MsgAuthRequired, Err: ErrNoCredential}
		}
		return "", nil
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		if r.Auth == AuthOptional {
			c.logger.Warn("failed to read credential, continuing anonymously", slog.Any("error", err))
			return "", nil
		}
		return "", &Error{Op: r.Op, Kind: KindPrecondition, Message: MsgAuthRequired, Err: fmt.Errorf("%w: %w", ErrNoCredential, err)}
	}
	if token == "" && r.Auth == AuthRequired {
		return "", &Error{Op: r.Op, Kind: KindPrecondition, Message: MsgAuthRequired, Err: ErrNoCredential}
	}
	return token, nil
}

func (c *Client) transportError(r Request, err error) *Error {
	msg := r.fallback()
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &urlErr) && urlErr.Timeout()) {
		msg = MsgRequestTimeout
	}
	return &Error{Op: r.Op, Kind: KindTransport, Message: msg, Err: err}
}

// decodeResponse разбирает конверт и классифицирует ответ
func decodeResponse(r Request, status int, body []byte) (*Result, error) {
	var env api.Envelope
	decodeErr := json.Unmarshal(body, &env)

	// Проверяем статус код
	if status < 200 || status >= 300 {
		msg := r.fallback()
		if decodeErr == nil {
			msg = firstNonEmpty(env.Message, env.Error, msg)
		}
		return nil, &Error{Op: r.Op, Kind: kindForStatus(status), Status: status, Message: msg}
	}

	// 204 и пустое тело считаем успехом без данных
	if len(bytes.TrimSpace(body)) == 0 {
		return &Result{}, nil
	}
	if decodeErr != nil {
		return nil, &Error{Op: r.Op, Kind: KindTransport, Status: status, Message: MsgBadResponse, Err: fmt.Errorf("failed to decode response: %w", decodeErr)}
	}
	if !env.Success {
		return nil, &Error{Op: r.Op, Kind: KindBusiness, Status: status, Message: firstNonEmpty(env.Message, env.Error, r.fallback())}
	}

	return &Result{Data: env.Data, Pagination: env.Pagination, Message: env.Message}, nil
}

func (r Request) fallback() string {
	if r.Fallback != "" {
		return r.Fallback
	}
	return "Request failed"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
