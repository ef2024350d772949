package catalog

import "filmbot/internal/constants"

// ResultKind различает исходы запроса к каталогу.
// Пользователь видит один и тот же текст для Empty и UpstreamError.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultEmpty
	ResultUpstreamError
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultEmpty:
		return "empty"
	case ResultUpstreamError:
		return "upstream_error"
	default:
		return "unknown"
	}
}

// Result - итог операции каталога.
// StatusCode заполнен для UpstreamError (0, если до ответа дело не дошло: таймаут, DNS, обрыв).
type Result struct {
	Kind       ResultKind
	Text       string
	StatusCode int
	Err        error
}

// Message возвращает текст для пользователя: результат или FALLBACK_MSG.
func (r Result) Message() string {
	if r.Kind == ResultOK {
		return r.Text
	}
	return constants.FALLBACK_MSG
}

// OK оборачивает отформатированный текст.
func OK(text string) Result {
	if text == "" {
		return Empty()
	}
	return Result{Kind: ResultOK, Text: text}
}

// Empty - запрос прошёл, но подходящих записей нет.
func Empty() Result {
	return Result{Kind: ResultEmpty}
}

// UpstreamError - ответ не 200, битый JSON или сетевая ошибка.
func UpstreamError(statusCode int, err error) Result {
	return Result{Kind: ResultUpstreamError, StatusCode: statusCode, Err: err}
}
