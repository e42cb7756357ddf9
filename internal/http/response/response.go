// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков дашборда.
package response

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/staking-bank/internal/lib/validation"
	"github.com/magabrotheeeer/staking-bank/internal/models"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status: статус запроса ("OK" или "Error").
// Поле Error: текст ошибки (опционально, при неуспехе).
// Поле Data: данные ответа (опционально, при успехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse: структура ошибки для Swagger-документации.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK: значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError: значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
func ValidationError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  validation.Message(err),
	}
}

// Result отдаёт результат действия сессии: сообщение при успехе,
// 400 с текстом ошибки при неуспехе.
func Result(w http.ResponseWriter, r *http.Request, res models.Result) {
	if !res.Success {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error(res.Message))
		return
	}
	render.JSON(w, r, StatusOKWithData(res))
}
