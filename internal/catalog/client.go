// Package catalog - клиент каталога фильмов и сериалов (api.kinopoisk.dev).
//
// Каждая операция делает один или два GET-запроса и возвращает Result.
// Любая неудача (не 200, пустой ответ, таймаут, сетевая ошибка) сворачивается
// в Result с текстом-заглушкой; паник и ошибок наружу нет.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/oops"
	slogctx "github.com/veqryn/slog-context"

	"filmbot/internal/constants"
	"filmbot/internal/models"
	"filmbot/internal/utils"
)

// Client выполняет запросы к каталогу.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient *http.Client
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client (используется в тестах).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создаёт клиент каталога.
// timeout ограничивает каждый исходящий запрос; 0 - значение по умолчанию.
func NewClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = constants.DEFAULT_CATALOG_TIMEOUT
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestError хранит код ответа рядом с ошибкой, чтобы собрать Result.
type requestError struct {
	status int
	err    error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

// get выполняет GET baseURL+endpoint?params и декодирует JSON в out.
// Запрос ограничен c.timeout; истечение таймаута - такая же ошибка апстрима, как не-200.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	requestID := utils.GenerateUUID()
	ctx = slogctx.With(ctx, "request_id", requestID, "endpoint", endpoint)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &requestError{err: oops.In("catalog").Code("bad_request").Wrapf(err, "создание запроса к %s", endpoint)}
	}
	req.Header.Set(constants.CATALOG_API_KEY_HEADER, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	slogctx.Debug(ctx, "Запрос к каталогу", "query", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slogctx.Error(ctx, "Ошибка сети при обращении к каталогу", "error", err)
		return &requestError{err: oops.In("catalog").Code("transport").Wrapf(err, "GET %s", endpoint)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// тело читаем только для лога
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slogctx.Error(ctx, "Сервер вернул неожиданный статус-код", "status", resp.StatusCode, "body", string(body))
		return &requestError{
			status: resp.StatusCode,
			err: oops.In("catalog").
				Code("upstream_status").
				With("status", resp.StatusCode).
				Errorf("GET %s: неожиданный статус-код %d", endpoint, resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slogctx.Error(ctx, "Не удалось разобрать ответ каталога", "error", err)
		return &requestError{
			status: resp.StatusCode,
			err:    oops.In("catalog").Code("decode").Wrapf(err, "разбор ответа %s", endpoint),
		}
	}
	return nil
}

// failed превращает ошибку get в Result.
func failed(err error) Result {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return UpstreamError(reqErr.status, reqErr.err)
	}
	return UpstreamError(0, err)
}

// baseParams строит общие для всех запросов параметры: notNullFields и фильтры раздела.
// Аниме: type=anime. Дорамы: type=tv-series и страны из DramaCountries.
func baseParams(category models.Category) url.Values {
	params := url.Values{}
	for _, f := range constants.NotNullFields {
		params.Add("notNullFields", f)
	}
	switch category {
	case models.CategoryAnime:
		params.Add("type", constants.CATALOG_TYPE_ANIME)
	case models.CategoryDrama:
		params.Add("type", constants.CATALOG_TYPE_TV_SERIES)
		for _, country := range constants.DramaCountries {
			params.Add("countries.name", country)
		}
	}
	return params
}
