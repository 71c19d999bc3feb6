// Package form - разбор и отображение отправленной формы отзыва
package form

import (
	"html/template"
	"io"
	"net/url"
	"strings"

	"github.com/Kostushka/feedback_server/internal/validate"
)

// ContactMethodKey - повторяющееся поле со способами связи
const ContactMethodKey = "contactMethod[]"

// Data - поля отправленной формы
type Data struct {
	CompanyName    string
	ContactName    string
	Email          string
	Phone          string
	Status         string
	ResponseDate   string
	Rating         string
	ContactMethods string
	Comments       string
}

// Parse - разобрать тело запроса в формате application/x-www-form-urlencoded.
// Нераспознанные поля игнорируются, отсутствующие остаются пустыми.
// Ошибка разбора не отменяет результат: в Data попадают поля, которые удалось декодировать.
func Parse(body string) (Data, error) {
	// ParseQuery продолжает разбор после ошибки и возвращает первую из них
	values, err := url.ParseQuery(body)

	return Data{
		CompanyName:    values.Get("companyName"),
		ContactName:    values.Get("contactName"),
		Email:          values.Get("email"),
		Phone:          values.Get("phone"),
		Status:         values.Get("status"),
		ResponseDate:   values.Get("responseDate"),
		Rating:         values.Get("rating"),
		ContactMethods: strings.Join(values[ContactMethodKey], ", "),
		Comments:       values.Get("comments"),
	}, err
}

// Fields - поля, которые проверяются перед отправкой формы
func (d Data) Fields() validate.Fields {
	return validate.Fields{
		CompanyName: d.CompanyName,
		ContactName: d.ContactName,
		Email:       d.Email,
		Phone:       d.Phone,
	}
}

// значения экранирует html/template
var resultPage = template.Must(template.New("result").Parse(`<!DOCTYPE html>` +
	`<html lang="en">` +
	`<head>` +
	`<meta charset="UTF-8">` +
	`<meta name="viewport" content="width=device-width, initial-scale=1.0">` +
	`<meta name="description" content="Information filled in the resume review form">` +
	`<title>The result of the review</title>` +
	`<link rel="stylesheet" href="../css/styles.css">` +
	`</head>` +
	`<body>` +
	`<h1>The result of the review</h1>` +
	`<p><strong>Company name:</strong> {{.CompanyName}}</p>` +
	`<p><strong>Contact person:</strong> {{.ContactName}}</p>` +
	`<p><strong>Email:</strong> {{.Email}}</p>` +
	`<p><strong>Phone number:</strong> {{.Phone}}</p>` +
	`<p><strong>Status:</strong> {{.Status}}</p>` +
	`<p><strong>Response date:</strong> {{.ResponseDate}}</p>` +
	`<p><strong>Evaluation:</strong> {{.Rating}}</p>` +
	`<p><strong>Communication methods:</strong> {{.ContactMethods}}</p>` +
	`<p><strong>Comments:</strong> {{.Comments}}</p>` +
	`<a href="/index.html">Return</a>` +
	`</body>` +
	`</html>`))

// Render - записать в w страницу с результатом
func Render(w io.Writer, d Data) error {
	return resultPage.Execute(w, d)
}
