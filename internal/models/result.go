package models

// Result единый ответ действий сессии.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK возвращает успешный Result.
func OK(msg string) Result {
	return Result{Success: true, Message: msg}
}

// Fail возвращает неуспешный Result.
func Fail(msg string) Result {
	return Result{Success: false, Message: msg}
}

// MessageResponse ответ сервера, содержащий только сообщение.
type MessageResponse struct {
	Message string `json:"message"`
}
