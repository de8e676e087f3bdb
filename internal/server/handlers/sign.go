package handlers

// sign.go implements POST /sign - signature capture and upload.

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
)

// HandleSign decodes the posted signature data URL, uploads the image
// to the blob store under a timestamped name, and redirects to the
// download stage carrying the resulting public URL.
//
// An empty signature field sends the client back to the language
// selection entry point; a malformed data URL is rejected before any
// blob store call.
func (h *WorkflowHandler) HandleSign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		orientation.RespondWithError(w, r, orientation.WrapValidationError(err, "リクエストの形式が正しくありません。"))
		return
	}

	token := r.PostFormValue("token")
	if err := h.gate.Check(token, "不正なアクセスです。"); err != nil {
		orientation.RespondWithError(w, r, err)
		return
	}
	lang := r.PostFormValue("lang")

	signatureDataURL := r.PostFormValue("signature_data")
	if signatureDataURL == "" {
		http.Redirect(w, r, "/?token="+url.QueryEscape(token), http.StatusSeeOther)
		return
	}

	imageData, err := orientation.DecodeSignatureDataURL(signatureDataURL)
	if err != nil {
		orientation.RespondWithError(w, r, err)
		return
	}

	filename := fmt.Sprintf("signature_living_orientation_%s.png", time.Now().Format("20060102_150405"))

	publicURL, err := h.blobs.Upload(r.Context(), filename, "image/png", imageData)
	if err != nil {
		orientation.RespondWithError(w, r, orientation.WrapUpstreamError(err, "署名画像のアップロードに失敗しました。"))
		return
	}

	next := url.URL{Path: "/download"}
	q := next.Query()
	q.Set("signature_url", publicURL)
	q.Set("lang", lang)
	next.RawQuery = q.Encode()

	http.Redirect(w, r, next.String(), http.StatusSeeOther)
}
