package connection

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/Kostushka/feedback_server/internal/connection/consts"
	"github.com/Kostushka/feedback_server/internal/connection/types"
	"github.com/Kostushka/feedback_server/internal/file"
	"github.com/Kostushka/feedback_server/internal/resolve"
)

// serveStatic - отдать файл по пути запроса, вместо отсутствующего - страницу 404
func (c *Connection) serveStatic(rawPath string) {
	// декодируем path на случай, если он не в латинице
	queryPath, err := url.PathUnescape(resolve.StripQuery(rawPath))
	if err != nil {
		c.log.Errorf("не удалось декодировать путь %q: %v", rawPath, err)
		c.sendError(consts.StatusBadRequest)

		return
	}

	filePath, err := resolve.FilePath(queryPath)
	if err != nil {
		// выход за пределы каталога сайта запрещен
		c.log.Errorf("%q: %v", queryPath, err)
		c.sendError(consts.StatusForbidden)

		return
	}

	c.log.Infof("определен путь до файла: %q", c.fsPath(filePath))

	err = c.sendFile(filePath, resolve.ContentType(filePath), consts.StatusOK)
	if err == nil {
		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		c.sendInternalServerError(err)

		return
	}

	// файла нет - одна попытка отдать страницу 404
	c.log.Infof("файл %q не найден, отдаем %q", c.fsPath(filePath), resolve.NotFoundPage)

	err = c.sendFile(resolve.NotFoundPage, resolve.HTMLType, consts.StatusNotFound)
	if err != nil {
		c.sendInternalServerError(fmt.Errorf("страница 404 недоступна: %w", err))
	}
}

// sendFile - отправить клиенту заголовки и файл.
// Ошибка возвращается, только если клиенту еще ничего не отправлено.
func (c *Connection) sendFile(filePath, contentType string, code int) error {
	f, fi, err := file.Open(c.fsPath(filePath))
	if err != nil {
		return err
	}
	// закрыть файл
	defer c.close(f, "")

	// текстовый файл читаем целиком и отдаем в UTF-8
	if resolve.IsText(contentType) {
		data, err := file.ReadText(f)
		if err != nil {
			return err
		}

		c.writeResponse(&types.StatusData{
			Code:        code,
			ContentType: contentType,
			Secure:      true,
		}, data)

		return nil
	}

	// бинарный файл отдаем как есть
	err = c.sendResponseHeader(&types.StatusData{
		Code:        code,
		Size:        fi.Size(),
		ContentType: contentType,
		Secure:      true,
	})
	if err != nil {
		c.log.Errorf("не удалось отправить заголовки: %v", err)

		return nil
	}

	if err := file.Send(c.conn, f); err != nil {
		c.log.Errorf("файл не был отправлен клиенту: %v", err)

		return nil
	}

	c.log.Infof("клиенту отправлен файл %q, %d байт", fi.Name(), fi.Size())

	return nil
}
