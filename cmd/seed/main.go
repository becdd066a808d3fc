package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/seed"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
)

func main() {
	var n int
	flag.IntVar(&n, "n", 5, "quantidade de funcionários aleatórios a inserir")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Carrega a configuração
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("não foi possível carregar a configuração", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Abre o banco de dados embutido
	db := store.NewDatabase(cfg)
	if err := db.Open(); err != nil {
		logger.Error("não foi possível abrir o banco de dados", "error", err, "path", cfg.Database.Path)
		os.Exit(1)
	}
	defer db.Close()

	repo := repository.NewRepository(cfg, db)

	inserted, err := seed.InsertRandomEmployees(repo, n)
	if err != nil {
		logger.Error("falha ao inserir funcionários aleatórios", "error", err, "inseridos", inserted)
		os.Exit(1)
	}

	logger.Info("funcionários aleatórios inseridos com sucesso", "inseridos", inserted)
}
