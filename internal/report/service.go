package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	"tabeeb-ai-agent/internal/consultation"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

type Service struct {
	tgClient     TelegramClient
	doctorChatID int64
}

func NewService(tg TelegramClient, doctorChatID int64) *Service {
	return &Service{
		tgClient:     tg,
		doctorChatID: doctorChatID,
	}
}

// Render builds an A4 PDF summary of the consultation: detected symptoms,
// clinical notes and the diagnosis block when one was delivered.
func (s *Service) Render(snap consultation.Snapshot) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	// DejaVuSans covers Arabic glyphs; try the usual distro paths.
	fontPaths := []string{
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	}

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Symptom Intake Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Consultation: %s", snap.ID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Turns: %d   Step: %d", len(snap.History), snap.Step))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Detected symptoms:")
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	if len(snap.Symptoms) == 0 {
		pdf.Cell(nil, "- none detected yet")
		pdf.Br(15)
	}
	for _, symptom := range snap.Symptoms {
		writeWrapped(&pdf, "- "+symptom)
	}
	pdf.Br(10)

	if len(snap.Notes) > 0 {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return nil, err
		}
		pdf.Cell(nil, "Clinical notes:")
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return nil, err
		}
		for _, note := range snap.Notes {
			writeWrapped(&pdf, "- "+note)
		}
		pdf.Br(10)
	}

	if snap.Diagnosis != nil {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return nil, err
		}
		pdf.Cell(nil, "Assessment:")
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return nil, err
		}
		d := snap.Diagnosis
		writeWrapped(&pdf, fmt.Sprintf("Condition: %s (%d%%)", d.Condition, d.Confidence))
		writeWrapped(&pdf, fmt.Sprintf("Severity: %s   Specialty: %s", d.Severity, d.Specialty))
		for _, rec := range d.Recommendations {
			writeWrapped(&pdf, "* "+rec)
		}
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// SendUrgentAlert notifies the on-call doctor about an urgent assessment and
// attaches the PDF summary when it can be rendered.
func (s *Service) SendUrgentAlert(ctx context.Context, snap consultation.Snapshot) error {
	var b strings.Builder
	b.WriteString("🚨 حالة عاجلة من المساعد الطبي\n\n")
	b.WriteString(fmt.Sprintf("الاستشارة: %s\n", snap.ID))
	if snap.Diagnosis != nil {
		b.WriteString(fmt.Sprintf("الحالة المحتملة: %s (%d%%)\n", snap.Diagnosis.Condition, snap.Diagnosis.Confidence))
		b.WriteString(fmt.Sprintf("التخصص: %s\n", snap.Diagnosis.Specialty))
	}
	b.WriteString(fmt.Sprintf("الأعراض: %s", strings.Join(snap.Symptoms, ", ")))

	if err := s.tgClient.SendMessage(s.doctorChatID, b.String()); err != nil {
		return err
	}

	// The PDF is best effort; the text alert above already went out.
	pdfBytes, err := s.Render(snap)
	if err != nil {
		return nil
	}
	fileName := fmt.Sprintf("report_%s.pdf", snap.ID)
	return s.tgClient.SendDocument(s.doctorChatID, pdfBytes, fileName)
}

func writeWrapped(pdf *gopdf.GoPdf, line string) {
	lines, _ := pdf.SplitText(line, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}
	pdf.Br(3)
}
