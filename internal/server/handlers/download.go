package handlers

// download.go implements GET /download - signature preview and
// explainer choice before the final PDF.

import (
	"net/http"

	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
)

type downloadView struct {
	SignatureURL string
	Explainers   []string
}

// HandleDownload shows the uploaded signature and the set of people
// eligible to be named as the explainer: the roster for the session
// language plus the default Japanese roster, deduplicated.
//
// No token check here - the stage is reached via the redirect from
// /sign and the signature URL itself is the continuity state.
func (h *WorkflowHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	signatureURL := r.URL.Query().Get("signature_url")
	lang := r.URL.Query().Get("lang")
	if signatureURL == "" || lang == "" {
		orientation.RespondWithError(w, r, orientation.NewValidationError("必要な情報が不足しています。"))
		return
	}

	renderView(w, r, "download.html", downloadView{
		SignatureURL: signatureURL,
		Explainers:   orientation.EligibleExplainers(lang),
	})
}
