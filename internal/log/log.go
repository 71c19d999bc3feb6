// Package log - пакет с логерами сервера
package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

var infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
var errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)

const permissions = 0644

// New - создаем логеры
func New(logFile string) error {
	// создаем логеры, пишущие в stdout
	if logFile == "" {
		infoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
		errorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)

		return nil
	}
	// создаем файл для записи лога
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permissions) //nolint:gosec
	if err != nil {
		return err
	}
	// создаем логеры, пишущие в файл
	SetOutput(f)

	return nil
}

// SetOutput - направить оба логера в w
func SetOutput(w io.Writer) {
	infoLog = log.New(w, "INFO: ", log.Ldate|log.Ltime)
	errorLog = log.New(w, "ERROR: ", log.Ldate|log.Ltime)
}

// Info - пишет информационный лог без форматирования
func Info(v ...any) {
	infoLog.Println(v...)
}

// Infof - пишет информационный лог по строке формата
func Infof(format string, v ...any) {
	infoLog.Printf(format, v...)
}

// Error - пишет лог ошибки без форматирования
func Error(v ...any) {
	errorLog.Println(v...)
}

// Errorf - пишет лог ошибки по строке формата
func Errorf(format string, v ...any) {
	errorLog.Printf(format, v...)
}

// Logger - логер, привязанный к одному клиентскому соединению:
// каждая строка начинается с идентификатора запроса
type Logger struct {
	prefix string
}

// WithID - создать логер с идентификатором запроса
func WithID(id string) *Logger {
	return &Logger{prefix: "[" + id + "]"}
}

// Info - пишет информационный лог с идентификатором запроса
func (l *Logger) Info(v ...any) {
	infoLog.Println(l.prefix, fmt.Sprint(v...))
}

// Infof - пишет информационный лог с идентификатором запроса по строке формата
func (l *Logger) Infof(format string, v ...any) {
	infoLog.Println(l.prefix, fmt.Sprintf(format, v...))
}

// Error - пишет лог ошибки с идентификатором запроса
func (l *Logger) Error(v ...any) {
	errorLog.Println(l.prefix, fmt.Sprint(v...))
}

// Errorf - пишет лог ошибки с идентификатором запроса по строке формата
func (l *Logger) Errorf(format string, v ...any) {
	errorLog.Println(l.prefix, fmt.Sprintf(format, v...))
}
