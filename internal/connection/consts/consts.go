// Package consts - пакет с константами
package consts

const (
	// StatusOK - статус ответа: хорошо
	StatusOK = 200
	// StatusBadRequest - статус ответа: некорректный запрос
	StatusBadRequest = 400
	// StatusForbidden - статус ответа: запрещено
	StatusForbidden = 403
	// StatusNotFound - статус ответа: не найдено
	StatusNotFound = 404
	// StatusInternalServerError - статус ответа: внутренняя ошибка сервера
	StatusInternalServerError = 500
	// BufSize - дефолтный размер буфера
	BufSize = 4096
	// SubmitPath - путь, на который отправляется форма
	SubmitPath = "/submit"
	// ServerName - значение заголовка Server
	ServerName = "feedback_server/1.0"
)
