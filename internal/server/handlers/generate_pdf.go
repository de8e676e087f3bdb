package handlers

// generate_pdf.go implements POST /generate-pdf - the finalize stage.

import (
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/asia-jinzai-support/orientation-consent/internal/logger"
	"github.com/asia-jinzai-support/orientation-consent/internal/orientation"
	"github.com/asia-jinzai-support/orientation-consent/internal/pdf"
)

// HandleGeneratePDF fetches the signature image, renders the signed
// confirmation form, archives a copy to the blob store, and returns the
// PDF as a file attachment.
//
// Archiving is best-effort: the worker must receive their signed form
// even if the archival PUT fails, so that failure is logged and
// swallowed. The signature upload in the sign stage, by contrast, is
// fatal - without it there is nothing to put on the form.
func (h *WorkflowHandler) HandleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqLogger := logger.ContextRequestLogger(ctx)

	if err := r.ParseForm(); err != nil {
		orientation.RespondWithError(w, r, orientation.WrapValidationError(err, "リクエストの形式が正しくありません。"))
		return
	}

	signatureURL := r.PostFormValue("signature_url")
	explainerName := r.PostFormValue("explainer_name")
	if signatureURL == "" || explainerName == "" {
		orientation.RespondWithError(w, r, orientation.NewValidationError("必要な情報が不足しています。"))
		return
	}

	imageData, err := h.blobs.Download(ctx, signatureURL)
	if err != nil {
		orientation.RespondWithError(w, r, orientation.WrapAssetError(err, "署名画像の取得に失敗しました。"))
		return
	}

	signaturePath, cleanup, err := pdf.SpoolSignature(imageData)
	if err != nil {
		orientation.RespondWithError(w, r, orientation.WrapAssetError(err, "署名画像の取得に失敗しました。"))
		return
	}
	defer cleanup()

	pdfBytes, err := h.renderer.Render(pdf.Document{
		Items:         orientation.JapaneseText().Items,
		ExplainerName: explainerName,
		SignaturePath: signaturePath,
		Date:          time.Now(),
	})
	if err != nil {
		orientation.RespondWithError(w, r, orientation.WrapInternalError(err, "PDFの作成に失敗しました。"))
		return
	}

	// best-effort archival copy under the signature's basename
	if pdfFilename, ok := archiveFilename(signatureURL); ok {
		if _, err := h.blobs.Upload(ctx, pdfFilename, "application/pdf", pdfBytes); err != nil {
			reqLogger.Warn("failed to archive signed PDF",
				slog.String("filename", pdfFilename),
				slog.String("error", err.Error()),
			)
		} else {
			reqLogger.Info("archived signed PDF", slog.String("filename", pdfFilename))
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment;filename=living_orientation_signed.pdf`)
	if _, err := w.Write(pdfBytes); err != nil {
		reqLogger.Error("failed to write PDF response", slog.String("error", err.Error()))
	}
}

// archiveFilename derives the archival object name from the signature's
// public URL: same basename, .pdf extension.
func archiveFilename(signatureURL string) (string, bool) {
	parsed, err := url.Parse(signatureURL)
	if err != nil {
		return "", false
	}
	base := path.Base(parsed.Path)
	if base == "." || base == "/" {
		return "", false
	}
	return strings.TrimSuffix(base, path.Ext(base)) + ".pdf", true
}
