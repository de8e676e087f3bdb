package handlers

// select.go implements GET / - the language selection entry point.

import (
	"net/http"

	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
)

type languageSelectView struct {
	Token     string
	Languages []string
}

// HandleLanguageSelect shows the language choice view. The access token
// arrives as a query parameter (the link is distributed to workers by
// the cooperative) and is threaded through every later stage.
func (h *WorkflowHandler) HandleLanguageSelect(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if err := h.gate.Check(token, "アクセス権がありません。"); err != nil {
		orientation.RespondWithError(w, r, err)
		return
	}

	renderView(w, r, "language_select.html", languageSelectView{
		Token:     token,
		Languages: orientation.Languages(),
	})
}
