// Package server - пакет с tcp сокетом, который принимает соединения
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/Kostushka/feedback_server/internal/connection"
	"github.com/Kostushka/feedback_server/internal/log"
)

// ErrAddrInUse - адрес уже занят другим процессом
var ErrAddrInUse = errors.New("адрес уже используется")

const maxAcceptDelay = time.Second

// Server - данные сервера
type Server struct {
	addr        string
	rootPath    string
	maxBodySize int64
	wg          sync.WaitGroup
}

// New - создать сервер
func New(addr, rootPath string, maxBodySize int64) *Server {
	return &Server{
		addr:        addr,
		rootPath:    rootPath,
		maxBodySize: maxBodySize,
	}
}

// Listen - получаем tcp сокет, который слушает соединения
func (s *Server) Listen() (net.Listener, error) {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("%w: %s: %w", ErrAddrInUse, s.addr, err)
		}

		return nil, err
	}

	return l, nil
}

// Serve - принимаем соединения, пока не отменен ctx;
// после отмены закрываем сокет и ждем завершения обработки принятых соединений
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		if err := l.Close(); err != nil {
			log.Error(err)
		}
	})
	defer stop()

	log.Infof("Запуск сервера с адресом %s", l.Addr().String())

	var delay time.Duration

	for {
		// слушаем сокетные соединения (запросы)
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.wg.Wait()
				log.Info("tcp сокет закрыт, все соединения обработаны")

				return nil
			}

			if errors.Is(err, net.ErrClosed) {
				s.wg.Wait()

				return err
			}

			// ошибка не фатальная: логируем и пробуем снова с нарастающей паузой
			delay = nextDelay(delay)
			log.Errorf("ошибка при принятии соединения, повтор через %v: %v", delay, err)
			time.Sleep(delay)

			continue
		}

		delay = 0

		// обрабатываем каждое клиентское соединение в отдельной горутине
		s.wg.Add(1)

		go func() {
			defer s.wg.Done()
			connection.New(conn, s.rootPath, s.maxBodySize).ProcessingConn()
		}()
	}
}

func nextDelay(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}

	if d *= 2; d > maxAcceptDelay {
		return maxAcceptDelay
	}

	return d
}
