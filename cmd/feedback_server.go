package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kostushka/feedback_server/internal/config"
	"github.com/Kostushka/feedback_server/internal/log"
	"github.com/Kostushka/feedback_server/internal/server"
)

func main() {
	// получаем конфигурационные данные
	configData, err := config.NewConfigData(os.Args[1:])
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// создаем логеры
	if err := log.New(configData.Log()); err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// сервер работает до SIGTERM или SIGINT
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	s := server.New(configData.Addr(), configData.RootPath(), configData.MaxBodySize())

	// получаем tcp сокет, который слушает соединения
	l, err := s.Listen()
	if err != nil {
		// порт занят - завершаемся с ошибкой
		if errors.Is(err, server.ErrAddrInUse) {
			log.Errorf("Порт %d уже используется: %v", configData.Port(), err)
			os.Exit(1)
		}
		// прочие ошибки не фатальные: ждем сигнала завершения
		log.Errorf("Ошибка сервера: %v", err)
		<-ctx.Done()

		return
	}

	log.Infof("Сервер запущен: http://localhost:%d/", configData.Port())

	if err := s.Serve(ctx, l); err != nil {
		log.Error(err)
	}

	log.Info("HTTP сервер остановлен")
}
