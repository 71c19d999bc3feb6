// Package connection - пакет с функциями, которые работают с клиентским соединением
package connection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Kostushka/feedback_server/internal/connection/consts"
	"github.com/Kostushka/feedback_server/internal/connection/headerdata"
	"github.com/Kostushka/feedback_server/internal/connection/types"
	"github.com/Kostushka/feedback_server/internal/log"
	"github.com/Kostushka/feedback_server/internal/querydata"
	"github.com/Kostushka/feedback_server/internal/resolve"
)

// Connection - структура с данными обрабатываемого соединения
type Connection struct {
	conn        net.Conn
	rootPath    string
	maxBodySize int64
	log         *log.Logger
}

// New - создать структуру с данными обрабатываемого соединения
func New(conn net.Conn, rootPath string, maxBodySize int64) *Connection {
	return &Connection{
		conn:        conn,
		rootPath:    rootPath,
		maxBodySize: maxBodySize,
		log:         log.WithID(uuid.NewString()),
	}
}

// ProcessingConn - обрабатываем клиентское соединение: один запрос, один ответ
func (c *Connection) ProcessingConn() {
	// закрыть клиентское соединение
	defer c.close(c.conn, fmt.Sprintf("клиентское соединение %s закрыто", c.conn.RemoteAddr().String()))

	c.log.Infof("начинается работа с клиентским сокетом %s", c.conn.RemoteAddr().String())

	r := bufio.NewReaderSize(c.conn, consts.BufSize)

	// прочитать строку запроса и заголовки
	query, err := querydata.NewParseQueryData(r)
	if err != nil {
		// некорректный запрос
		if errors.Is(err, querydata.ErrInvalidHTTPReq) {
			c.sendError(consts.StatusBadRequest)
		}
		// по EOF клиент уже закрыл сокет, отвечать некому
		c.log.Error(err)

		return
	}

	// логируем клиентские заголовки
	c.log.Infof("\"%v %v %v\" %v %v \"%v\"",
		query.Method(), query.Path(), query.Protocol(), c.conn.RemoteAddr().String(),
		query.Header("Host"), query.Header("User-Agent"))

	if query.Method() == http.MethodPost && resolve.StripQuery(query.Path()) == consts.SubmitPath {
		c.submit(query, r)

		return
	}

	c.serveStatic(query.Path())
}

// writeResponse - отправить клиенту заголовки и тело целиком
func (c *Connection) writeResponse(statusData *types.StatusData, body []byte) {
	statusData.Size = int64(len(body))

	if err := c.sendResponseHeader(statusData); err != nil {
		c.log.Errorf("не удалось отправить заголовки: %v", err)

		return
	}

	if _, err := c.conn.Write(body); err != nil {
		c.log.Errorf("тело ответа не было отправлено клиенту: %v", err)

		return
	}

	c.log.Infof("ответ %d отправлен, %d байт", statusData.Code, len(body))
}

// sendError - отправить ответ с ошибкой в виде текста
func (c *Connection) sendError(code int) {
	c.writeResponse(&types.StatusData{
		Code:        code,
		ContentType: resolve.PlainType,
	}, []byte(fmt.Sprintf("%d %s", code, http.StatusText(code))))
}

// sendInternalServerError - залогировать ошибку и отправить 500
func (c *Connection) sendInternalServerError(mainError error) {
	c.log.Errorf("внутренняя ошибка сервера: %v", mainError)
	c.sendError(consts.StatusInternalServerError)
}

// отправляем клиенту заголовки ответа
func (c *Connection) sendResponseHeader(statusData *types.StatusData) error {
	// формируем данные для ответа
	data := headerdata.HeaderData{}
	data.SetResponseData(statusData)

	// отправляем заголовки клиенту
	return data.WriteResponseHeader(c.conn)
}

// путь в файловой системе относительно каталога сайта
func (c *Connection) fsPath(p string) string {
	return filepath.Join(c.rootPath, filepath.FromSlash(p))
}

// закрытие файла или соединения
func (c *Connection) close(cl io.Closer, m string) {
	if err := cl.Close(); err != nil {
		c.log.Error(err)

		return
	}

	if m != "" {
		c.log.Info(m)
	}
}
