// Package types - пакет со структурами для строки статуса и заголовков ответа
package types

// ResponseStatusLine - строка статуса ответа
type ResponseStatusLine struct {
	Version string
	Status  string
	Phrase  string
}

// Header - заголовок ответа
type Header struct {
	Name  string
	Value string
}

// ResponseHeaders - заголовки ответа в порядке записи
type ResponseHeaders []Header

// StatusData - собираемые данные для строки статуса и заголовков ответа
type StatusData struct {
	Code        int
	Size        int64
	ContentType string
	// Secure - добавить заголовки X-Content-Type-Options и X-Frame-Options
	Secure bool
}

// ResponseData - сформированные данные для строки статуса и заголовков ответа
type ResponseData struct {
	Status      string
	Phrase      string
	Size        string
	ContentType string
	Secure      bool
}
