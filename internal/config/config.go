// Package config - пакет для получения конфигурационных данных для запуска сервера
package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

var (
	// ErrInvalidAddr - указан некорректный IP-адрес
	ErrInvalidAddr = errors.New("указан некорректный IP-адрес")
	// ErrInvalidPort - указан некорректный порт
	ErrInvalidPort = errors.New("указан некорректный порт")
	// ErrInvalidBodySize - указан некорректный размер тела запроса
	ErrInvalidBodySize = errors.New("указан некорректный максимальный размер тела запроса")
)

const (
	portNumber  = 1337
	maxBodySize = 1 << 20
	// PortEnv - переменная окружения с номером порта
	PortEnv = "PORT"
)

// Data - данные для конфигурации сервера
type Data struct {
	rootPath      string
	listenAddress net.IP
	port          int
	log           string
	maxBodySize   int64
}

// RootPath - возвращает путь до каталога сайта
func (c *Data) RootPath() string {
	return c.rootPath
}

// ListenAddress - возвращает адрес, на котором будет запущен сервер
func (c *Data) ListenAddress() net.IP {
	return c.listenAddress
}

// Port - возвращает порт, на котором сервер будет принимать запросы на соединение
func (c *Data) Port() int {
	return c.port
}

// Addr - возвращает адрес в виде host:port
func (c *Data) Addr() string {
	return net.JoinHostPort(c.listenAddress.String(), strconv.Itoa(c.port))
}

// Log - возвращает имя файла для записи лога в него или ""
func (c *Data) Log() string {
	return c.log
}

// MaxBodySize - возвращает максимальный размер тела POST-запроса в байтах
func (c *Data) MaxBodySize() int64 {
	return c.maxBodySize
}

// NewConfigData - функция-конструктор для получения структуры с конфигурационными данными
func NewConfigData(args []string) (*Data, error) {
	fs := flag.NewFlagSet("feedback_server", flag.ContinueOnError)

	// порт по умолчанию берется из окружения
	defaultPort, err := envPort()
	if err != nil {
		return nil, err
	}

	// путь до каталога сайта, по умолчанию - текущий каталог
	var rootPath string

	fs.StringVar(&rootPath, "path", ".", "a path to site directory")

	// адрес, на котором будет запущен сервер
	var listenAddress string

	fs.StringVar(&listenAddress, "IP", "0.0.0.0", "a listening address")

	// порт, на котором сервер будет принимать запросы на соединение
	var port int

	fs.IntVar(&port, "port", defaultPort, "a port (env "+PortEnv+")")

	// имя файла для записи лога в него, иначе вывод лога будет в stdout
	var log string

	fs.StringVar(&log, "log", "", "output log to file")

	var maxBody int64

	fs.Int64Var(&maxBody, "maxbody", maxBodySize, "max size of a POST body in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// IP адрес должен быть корректным
	var addr net.IP
	if addr = net.ParseIP(listenAddress); addr == nil {
		return nil, ErrInvalidAddr
	}

	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	if maxBody < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBodySize, maxBody)
	}

	return &Data{
		rootPath:      rootPath,
		listenAddress: addr,
		port:          port,
		log:           log,
		maxBodySize:   maxBody,
	}, nil
}

// порт из переменной окружения PORT или 1337
func envPort() (int, error) {
	v, ok := os.LookupEnv(PortEnv)
	if !ok || v == "" {
		return portNumber, nil
	}

	p, err := strconv.Atoi(v)
	if err != nil || p < 0 || p > 65535 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidPort, PortEnv, v)
	}

	return p, nil
}
