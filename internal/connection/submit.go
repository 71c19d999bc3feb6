package connection

import (
	"bufio"
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/Kostushka/feedback_server/internal/connection/consts"
	"github.com/Kostushka/feedback_server/internal/connection/types"
	"github.com/Kostushka/feedback_server/internal/form"
	"github.com/Kostushka/feedback_server/internal/querydata"
	"github.com/Kostushka/feedback_server/internal/resolve"
	"github.com/Kostushka/feedback_server/internal/validate"
)

// submit - принять форму отзыва и отдать страницу с отправленными данными
func (c *Connection) submit(query *querydata.Request, r *bufio.Reader) {
	// некорректная длина тела - считаем тело пустым
	length, err := query.ContentLength()
	if err != nil {
		c.log.Error(err)
	}

	// клиент мог отключиться посреди тела - работаем с тем, что прочитали
	body, err := querydata.ReadBody(r, length, c.maxBodySize)
	if err != nil {
		c.log.Error(err)
	}

	data, err := form.Parse(strings.ToValidUTF8(string(body), string(utf8.RuneError)))
	if err != nil {
		c.log.Errorf("форма разобрана с ошибкой: %v", err)
	}

	// сервер форму не отклоняет, только пишет в лог
	if errs := validate.Check(data.Fields()); len(errs) > 0 {
		c.log.Infof("форма не прошла проверку: %v", errs)
	}

	var buf bytes.Buffer
	if err := form.Render(&buf, data); err != nil {
		c.sendInternalServerError(err)

		return
	}

	c.writeResponse(&types.StatusData{
		Code:        consts.StatusOK,
		ContentType: resolve.HTMLType,
		Secure:      true,
	}, buf.Bytes())
}
