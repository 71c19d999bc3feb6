// Package headerdata - формирование строки статуса и заголовков ответа
package headerdata

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kostushka/feedback_server/internal/connection/consts"
	"github.com/Kostushka/feedback_server/internal/connection/types"
)

// HeaderData - структура с сформированными данными для строки статуса и заголовков ответа
type HeaderData struct {
	responseData *types.ResponseData
}

// ResponseData - сформированные данные
func (h *HeaderData) ResponseData() *types.ResponseData {
	return h.responseData
}

// SetResponseData - формируем данные заголовков для ответа клиенту
func (h *HeaderData) SetResponseData(data *types.StatusData) {
	// заполняем структуру данных для формирования ответа клиенту
	h.responseData = &types.ResponseData{
		Status:      strconv.Itoa(data.Code),
		Phrase:      http.StatusText(data.Code),
		Size:        strconv.FormatInt(data.Size, 10),
		ContentType: data.ContentType,
		Secure:      data.Secure,
	}
}

// Headers - заголовки ответа в порядке записи
func (h *HeaderData) Headers(now time.Time) types.ResponseHeaders {
	respHeaders := types.ResponseHeaders{
		{Name: "Server", Value: consts.ServerName},
		{Name: "Connection", Value: "close"},
		{Name: "Date", Value: now.UTC().Format(http.TimeFormat)},
		{Name: "Content-Length", Value: h.responseData.Size},
	}

	if h.responseData.ContentType != "" {
		respHeaders = append(respHeaders, types.Header{Name: "Content-Type", Value: h.responseData.ContentType})
	}

	if h.responseData.Secure {
		respHeaders = append(respHeaders,
			types.Header{Name: "X-Content-Type-Options", Value: "nosniff"},
			types.Header{Name: "X-Frame-Options", Value: "SAMEORIGIN"},
		)
	}

	return respHeaders
}

// WriteResponseHeader - формируем и отправляем клиенту строку статуса и заголовки ответа
func (h *HeaderData) WriteResponseHeader(w io.Writer) error {
	respStatus := types.ResponseStatusLine{
		Version: "HTTP/1.1",
		Status:  h.responseData.Status,
		Phrase:  h.responseData.Phrase,
	}

	return writeToConn(w, respStatus, h.Headers(time.Now()))
}

// пишем строку статуса и заголовки одним вызовом Write
func writeToConn(w io.Writer, respStatus types.ResponseStatusLine, respHeaders types.ResponseHeaders) error {
	var buf strings.Builder

	buf.WriteString(respStatus.Version + " " + respStatus.Status + " " + respStatus.Phrase + "\r\n")

	for _, v := range respHeaders {
		buf.WriteString(v.Name + ": " + v.Value + "\r\n")
	}
	// после заголовков - пустая строка
	buf.WriteString("\r\n")

	_, err := io.WriteString(w, buf.String())

	return err
}
