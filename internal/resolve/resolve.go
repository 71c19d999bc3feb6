// Package resolve - пакет для получения пути до файла и его типа по пути запроса
package resolve

import (
	"errors"
	"path"
	"strings"
)

// ErrTraversal - путь запроса выходит за пределы каталога сайта
var ErrTraversal = errors.New("путь запроса содержит переход в родительский каталог")

const (
	// IndexPage - главная страница сайта
	IndexPage = "./html/index.html"
	// NotFoundPage - страница, которая отдается вместо отсутствующего файла
	NotFoundPage = "./html/404.html"
	// HTMLType - тип html документа
	HTMLType = "text/html; charset=utf-8"
	// PlainType - тип текстового ответа об ошибке
	PlainType = "text/plain; charset=utf-8"
	// BinaryType - тип файла с неизвестным расширением
	BinaryType = "application/octet-stream"
)

var mimeTypes = map[string]string{
	".html":  HTMLType,
	".js":    "text/javascript; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".json":  "application/json; charset=utf-8",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".eot":   "application/vnd.ms-fontobject",
}

// порядок важен: проверяются по префиксу
var textTypes = []string{
	"text/html",
	"text/javascript",
	"text/css",
	"application/json",
	"text/plain",
	"application/javascript",
}

// каталоги со статикой, которые отдаются как есть
var assetPrefixes = []string{"/css/", "/js/", "/img/"}

// StripQuery - отрезать от пути строку параметров
func StripQuery(rawPath string) string {
	if i := strings.IndexByte(rawPath, '?'); i != -1 {
		return rawPath[:i]
	}

	return rawPath
}

// FilePath - путь до файла относительно каталога сайта
func FilePath(rawPath string) (string, error) {
	p := StripQuery(rawPath)

	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrTraversal
		}
	}

	if p == "/" {
		return IndexPage, nil
	}

	for _, prefix := range assetPrefixes {
		if strings.HasPrefix(p, prefix) {
			return "." + p, nil
		}
	}

	if strings.HasSuffix(p, ".html") {
		return "./html" + p, nil
	}

	return "." + p, nil
}

// ContentType - тип файла по его расширению
func ContentType(filePath string) string {
	if t, ok := mimeTypes[strings.ToLower(path.Ext(filePath))]; ok {
		return t
	}

	return BinaryType
}

// IsText - файл с таким типом читается как текст в UTF-8
func IsText(contentType string) bool {
	for _, t := range textTypes {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}

	return false
}
