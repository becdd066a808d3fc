package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
	"github.com/cadastro-rh/funcionarios/backend/internal/handler"
	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
)

func main() {
	/**********************************************
	 * Cria o logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Carrega a configuração
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", "error", err)
		return
	}

	/**********************************************
	 * Abre o banco de dados embutido
	 **********************************************/
	db := store.NewDatabase(cfg)
	if err := db.Open(); err != nil {
		logger.Error("não foi possível abrir o banco de dados", "error", err, "path", cfg.Database.Path)
		return
	}
	defer db.Close()

	/**********************************************
	 * Cria o repository
	 **********************************************/
	repo := repository.NewRepository(cfg, db)

	// Carrega a listagem inicial, como na abertura da página
	employees, err := repo.GetAllEmployees()
	if err != nil {
		logger.Error("não foi possível carregar a listagem inicial", "error", err)
		return
	}
	logger.Info("banco de dados carregado com sucesso", "registros", len(employees))

	/**********************************************
	 * Cria o handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo)
	if err != nil {
		logger.Error("não foi possível criar o handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * Inicia o servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("iniciando o servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("não foi possível iniciar o servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("encerrando o servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("falha ao encerrar o servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor encerrado com sucesso")
}
