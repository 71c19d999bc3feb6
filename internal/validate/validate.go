// Package validate - проверки полей формы отзыва.
// Те же проверки и сообщения выполняет в браузере js/form-handler.js.
package validate

import "regexp"

// имена полей формы
const (
	CompanyName = "companyName"
	ContactName = "contactName"
	Email       = "email"
	Phone       = "phone"
)

// сообщения об ошибках
const (
	MsgCompanyName = "Назва компанії є обов'язковою"
	MsgContactName = "Ім'я контактної особи є обов'язковим"
	MsgEmail       = "Введіть коректну електронну пошту"
	MsgPhone       = "Введіть коректний номер телефону"
)

// пробельные символы в понимании браузера: \s и trim() в js
// включают \v, неразрывные пробелы, разделители строк и BOM
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	emailPattern = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{10,}$`)
	phoneStrip   = regexp.MustCompile(`[` + space + `-]`)
	blankPattern = regexp.MustCompile(`^[` + space + `]*$`)
)

// Fields - проверяемые поля формы
type Fields struct {
	CompanyName string
	ContactName string
	Email       string
	Phone       string
}

// Errors - сообщения об ошибках по имени поля
type Errors map[string]string

type check struct {
	field   string
	message string
	ok      func(f Fields) bool
}

// проверки независимы: выполняются все, даже если предыдущая не прошла
var checks = []check{
	{CompanyName, MsgCompanyName, func(f Fields) bool {
		return !blank(f.CompanyName)
	}},
	{ContactName, MsgContactName, func(f Fields) bool {
		return !blank(f.ContactName)
	}},
	{Email, MsgEmail, func(f Fields) bool {
		return !blank(f.Email) && emailPattern.MatchString(f.Email)
	}},
	{Phone, MsgPhone, func(f Fields) bool {
		return !blank(f.Phone) && phonePattern.MatchString(phoneStrip.ReplaceAllString(f.Phone, ""))
	}},
}

func blank(s string) bool {
	return blankPattern.MatchString(s)
}

// Check - выполнить все проверки, вернуть ошибки по полям
func Check(f Fields) Errors {
	errs := Errors{}

	for _, c := range checks {
		if !c.ok(f) {
			errs[c.field] = c.message
		}
	}

	return errs
}

// Display - место вывода сообщений об ошибках рядом с полями формы
type Display interface {
	// HideAll - скрыть все показанные ранее сообщения
	HideAll()
	// Show - показать сообщение в слоте поля
	Show(field, message string)
}

// Run - очистить старые ошибки, проверить форму и показать новые ошибки.
// Форма может быть отправлена, только если возвращено true.
func Run(d Display, f Fields) bool {
	d.HideAll()

	errs := Check(f)
	// порядок вывода совпадает с порядком полей в форме
	for _, c := range checks {
		if msg, ok := errs[c.field]; ok {
			d.Show(c.field, msg)
		}
	}

	return len(errs) == 0
}
