// Package pdf renders the signed confirmation form (参考様式第５－８号)
// as a fixed-layout A4 document.
//
// The layout is coordinate-for-coordinate the cooperative's existing
// form: do not "improve" offsets here without comparing output against
// an archived PDF. All horizontal placement of underlined fields is
// derived from string-width measurement at render time.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "NotoSansJP"

	formNumber = "参考様式第５－８号"
	// The title is letter-spaced with full-width spaces on the form.
	formTitle = "生 活 オ リ エ ン テ ー シ ョ ン の 確 認 書"

	organizationHeading = "特定技能所属機関（又は登録支援機関）の氏名又は名称"
	organizationName    = "アジア人材サポート協同組合"
	explainerHeading    = "説明者の氏名"
	leadIn              = "について、"
	closingSentence     = "から説明を受け、内容を十分に理解しました。"
	signatureCaption    = "特定技能外国人の署名"

	// The orientation session is always recorded as 13:00-17:00.
	sessionTimeSuffix = "　13時00分から17時00分まで"

	// underlined name fields are 80 units wide, anchored to the right margin
	underlineLength = 80.0
)

// Renderer produces confirmation form PDFs. It is safe for concurrent
// use: each Render call builds an independent document.
type Renderer struct {
	fontPath string
}

// NewRenderer creates a Renderer using the UTF-8 TTF font at fontPath.
// The font must cover the Japanese script of the form text; a missing
// file is an error here so the service fails at startup rather than on
// the first signing request.
func NewRenderer(fontPath string) (*Renderer, error) {
	if _, err := os.Stat(fontPath); err != nil {
		return nil, fmt.Errorf("font file not available: %w", err)
	}
	return &Renderer{fontPath: fontPath}, nil
}

// Document is the variable content of one confirmation form.
type Document struct {
	// Items are the Japanese source clauses. Each begins with a
	// full-width digit, a space, then the clause text.
	Items []string

	// ExplainerName is the person who delivered the orientation.
	ExplainerName string

	// SignaturePath is a local PNG file with the worker's signature.
	SignaturePath string

	// Date is the signing date shown on the form.
	Date time.Time
}

// Render lays out the form and returns the PDF bytes.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(fontFamily, "", r.fontPath)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()

	// form number, top left corner
	pdf.SetFont(fontFamily, "", 10)
	pdf.SetXY(leftMargin, 10)
	pdf.CellFormat(0, 10, formNumber, "", 0, "L", false, 0, "")

	// centered title
	pdf.SetXY(0, 25)
	pdf.SetFont(fontFamily, "", 16)
	pdf.CellFormat(0, 10, formTitle, "", 1, "C", false, 0, "")
	pdf.Ln(10)

	// numbered clauses: full-width digit in an 8-unit label cell, then
	// the clause text wrapping in the remaining width
	pdf.SetFont(fontFamily, "", 10.5)
	initialX := pdf.GetX()
	for _, item := range doc.Items {
		number, text := splitItem(item)
		pdf.SetX(initialX)
		pdf.CellFormat(8, 5, number, "", 0, "L", false, 0, "")
		pdf.MultiCell(pageWidth-leftMargin-rightMargin-8, 5, text, "", "J", false)
		pdf.Ln(1)
	}

	pdf.SetFontSize(11)
	pdf.Ln(5)
	pdf.MultiCell(0, 8, leadIn, "", "J", false)
	pdf.Ln(1)

	// centered session date/time with a hand-drawn underline sized to
	// the measured text width
	dateTimeStr := japaneseDate(doc.Date) + sessionTimeSuffix
	textWidth := pdf.GetStringWidth(dateTimeStr)
	startX := (pageWidth - textWidth) / 2
	pdf.CellFormat(0, 8, dateTimeStr, "", 1, "C", false, 0, "")
	yPos := pdf.GetY()
	pdf.Line(startX, yPos-1, startX+textWidth, yPos-1)
	pdf.Ln(6)

	lineStartX := pageWidth - rightMargin - underlineLength

	r.underlinedField(pdf, organizationHeading, organizationName, lineStartX, pageWidth-rightMargin)
	r.underlinedField(pdf, explainerHeading, doc.ExplainerName, lineStartX, pageWidth-rightMargin)

	pdf.MultiCell(0, 8, closingSentence, "", "J", false)

	// signature block, anchored to the page bottom
	sigYPos := pageHeight - 45
	pdf.SetY(sigYPos)
	pdf.CellFormat(0, 8, japaneseDate(doc.Date), "", 0, "R", false, 0, "")
	pdf.Ln(5)
	pdf.SetX(leftMargin)
	pdf.CellFormat(45, 8, signatureCaption, "", 0, "L", false, 0, "")
	sigLineStartX := pdf.GetX()
	sigLineEndX := sigLineStartX + 65
	pdf.Line(sigLineStartX, sigYPos+12, sigLineEndX, sigYPos+12)
	// signature image overlaps the drawn line from 8 units above the caption row
	pdf.ImageOptions(doc.SignaturePath, sigLineStartX+5, sigYPos-8, 55, 20, false,
		fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to assemble PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// underlinedField draws a centered heading row, then the value centered
// within the underline field anchored to the right margin.
func (r *Renderer) underlinedField(pdf *fpdf.Fpdf, heading, value string, lineStartX, lineEndX float64) {
	pdf.CellFormat(0, 8, heading, "", 1, "C", false, 0, "")
	pdf.Ln(1)
	textWidth := pdf.GetStringWidth(value)
	textStartX := lineStartX + (underlineLength-textWidth)/2
	pdf.SetX(textStartX)
	pdf.CellFormat(textWidth, 8, value, "", 1, "L", false, 0, "")
	yPos := pdf.GetY()
	pdf.Line(lineStartX, yPos-1, lineEndX, yPos-1)
	pdf.Ln(6)
}

// splitItem separates the full-width clause digit from the clause text.
// The source items are "１ ...", "２ ..." etc; the digit is the first
// rune and the text starts at the third.
func splitItem(item string) (number, text string) {
	runes := []rune(item)
	if len(runes) < 3 {
		return item, ""
	}
	return string(runes[:1]), string(runes[2:])
}

// japaneseDate formats a date as e.g. 2026年8月30日.
func japaneseDate(t time.Time) string {
	return fmt.Sprintf("%d年%d月%d日", t.Year(), int(t.Month()), t.Day())
}
