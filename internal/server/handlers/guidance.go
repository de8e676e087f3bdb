package handlers

// guidance.go implements POST /guidance - the bilingual guidance view.

import (
	"net/http"

	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
)

type guidanceView struct {
	Token       string
	Lang        string
	Translation orientation.LanguageEntry
	Japanese    orientation.SourceText
}

// HandleGuidance shows the guidance items in the chosen language next
// to the Japanese source text, with the agreement checkbox and the
// signature canvas.
func (h *WorkflowHandler) HandleGuidance(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		orientation.RespondWithError(w, r, orientation.WrapValidationError(err, "リクエストの形式が正しくありません。"))
		return
	}

	token := r.PostFormValue("token")
	if err := h.gate.Check(token, "アクセス権がありません。"); err != nil {
		orientation.RespondWithError(w, r, err)
		return
	}

	lang := r.PostFormValue("lang")
	entry, ok := orientation.Lookup(lang)
	if !ok {
		orientation.RespondWithError(w, r, orientation.NewValidationError("言語が選択されていません。"))
		return
	}

	renderView(w, r, "guidance.html", guidanceView{
		Token:       token,
		Lang:        lang,
		Translation: entry,
		Japanese:    orientation.JapaneseText(),
	})
}
