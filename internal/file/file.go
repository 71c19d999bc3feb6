// Package file - пакет с функциями для работы с файлами
package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Kostushka/feedback_server/internal/connection/consts"
)

// ErrIsDir - вместо файла запрошен каталог
var ErrIsDir = errors.New("is a directory")

// Open - открываем файл по пути, каталог не считается файлом
func Open(path string) (*os.File, os.FileInfo, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, nil, err
	}

	// получить информацию о файле
	fi, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, nil, err
	}

	if fi.IsDir() {
		f.Close()

		return nil, nil, fmt.Errorf("%s: %w", path, ErrIsDir)
	}

	return f, fi, nil
}

// ReadText - читаем файл целиком как текст в UTF-8,
// некорректные последовательности заменяются на U+FFFD
func ReadText(f *os.File) ([]byte, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	if utf8.Valid(data) {
		return data, nil
	}

	return []byte(strings.ToValidUTF8(string(data), string(utf8.RuneError))), nil
}

// Send - отправляем клиенту файл как есть
func Send(w io.Writer, f *os.File) error {
	// буфер фиксированного размера: файл может не поместиться в память целиком
	fileBuf := make([]byte, consts.BufSize)

	for {
		n, err := f.Read(fileBuf)
		if n > 0 {
			// записать содержимое буфера в клиентский сокет
			if _, werr := w.Write(fileBuf[:n]); werr != nil {
				return werr
			}
		}
		// читаем файл, пока не встретим EOF
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}
