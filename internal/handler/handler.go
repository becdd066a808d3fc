package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	ptbr "github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbr_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/webui"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	pt := ptbr.New()
	uni := ut.New(pt, pt)
	trans, _ := uni.GetTranslator("pt_BR")
	if err := ptbr_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.requestID)
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/configuracao", h.UIConfig)

	h.Mux.Route("/funcionarios", func(r chi.Router) {
		r.Post("/", h.CreateEmployee)
		r.Get("/", h.ListEmployees)
		// Despacho explícito dos comandos dos botões da listagem
		r.Post("/acoes", h.DispatchAction)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.employeeID)
			r.Patch("/", h.UpdateEmployee)
			r.Delete("/", h.DeleteEmployee)
		})
	})

	// Interface embutida (formulário, listagem e superfície de feedback)
	h.Mux.Handle("/*", http.FileServer(http.FS(webui.Assets())))
}
