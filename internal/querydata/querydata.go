// Package querydata - пакет для разбора данных запроса, прочитанных из клиентского сокета
package querydata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/textproto"
	"strconv"
	"strings"
)

var (
	// ErrInvalidHTTPReq - данные запроса не являются HTTP-запросом
	ErrInvalidHTTPReq = errors.New("incorrect request format: not HTTP")
	// ErrInvalidContentLength - некорректное значение заголовка Content-Length
	ErrInvalidContentLength = errors.New("incorrect Content-Length")
)

// Request - строка запроса и заголовки
type Request struct {
	method   string
	path     string
	protocol string
	headers  map[string]string
}

// Method - метод запроса
func (q *Request) Method() string {
	return q.method
}

// Path - путь запроса вместе со строкой параметров
func (q *Request) Path() string {
	return q.path
}

// Protocol - версия протокола
func (q *Request) Protocol() string {
	return q.protocol
}

// Header - значение заголовка запроса, имя не зависит от регистра
func (q *Request) Header(name string) string {
	return q.headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// ContentLength - длина тела запроса, 0 если заголовка нет
func (q *Request) ContentLength() (int64, error) {
	v := q.Header("Content-Length")
	if v == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidContentLength, v)
	}

	return n, nil
}

// NewParseQueryData - прочитать из r строку запроса и заголовки до пустой строки
func NewParseQueryData(r *bufio.Reader) (*Request, error) {
	q := &Request{
		headers: make(map[string]string, 5),
	}

	// читаем строку запроса
	line, err := readLine(r)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать строку запроса: %w", err)
	}

	if err := q.parseQueryString(line); err != nil {
		return nil, err
	}

	// читаем заголовки, в конце ожидаем пустую строку
	for {
		line, err := readLine(r)
		if err != nil {
			return nil, fmt.Errorf("не удалось прочитать заголовки: %w", err)
		}

		if line == "" {
			return q, nil
		}

		q.parseHeader(line)
	}
}

// ReadBody - прочитать тело запроса длиной не больше limit.
// Если клиент закрыл соединение раньше, возвращается прочитанная часть и ошибка.
func ReadBody(r io.Reader, length, limit int64) ([]byte, error) {
	if length > limit {
		length = limit
	}

	body := make([]byte, length)

	n, err := io.ReadFull(r, body)
	if err != nil {
		return body[:n], fmt.Errorf("тело запроса прочитано не полностью (%d из %d байт): %w", n, length, err)
	}

	return body, nil
}

// строка заканчивается на \r\n или \n
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		// не успели вычитать все данные, клиент закрыл сокет
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("клиент преждевременно закрыл соединение: %w", err)
		}

		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// парсим строку запроса в структуру
func (q *Request) parseQueryString(line string) error {
	// строка запроса может содержать более одного пробела, например:
	// GET        /                HTTP/1.1
	buf := strings.Fields(line)
	// должно быть 3 элемента: метод, путь, версия протокола
	if len(buf) != 3 || !strings.HasPrefix(buf[2], "HTTP/") {
		return fmt.Errorf("не удалось распарсить строку запроса %q: %w", line, ErrInvalidHTTPReq)
	}

	q.method = buf[0]
	q.path = buf[1]
	q.protocol = buf[2]

	return nil
}

// парсим заголовок в map, строки без двоеточия пропускаем
func (q *Request) parseHeader(line string) {
	sepIndex := strings.IndexByte(line, ':')
	if sepIndex == -1 {
		return
	}

	name := textproto.CanonicalMIMEHeaderKey(strings.TrimSpace(line[:sepIndex]))
	q.headers[name] = strings.TrimSpace(line[sepIndex+1:])
}
