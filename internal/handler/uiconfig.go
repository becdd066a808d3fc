package handler

import (
	"net/http"
)

// UIConfig entrega à interface os parâmetros de exibição, hoje apenas o
// tempo de permanência da mensagem de feedback.
func (h *Handler) UIConfig(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Configuração carregada com sucesso!", map[string]any{
		"feedback_clear_after": h.config.Feedback.ClearAfter,
	})
}
