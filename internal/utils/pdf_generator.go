// internal/utils/pdf_generator.go

package utils

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"solarhub/internal/db"
	"solarhub/internal/load"
	"solarhub/internal/logger"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

// UnicodeFontFile is looked up in PDFOptions.FontDir for non-Latin customer names.
const UnicodeFontFile = "DejaVuSans.ttf"

type PDFOptions struct {
	CompanyName string
	FontDir     string // optional; core Arial is used when empty
	Now         time.Time
}

func generateQRCodeImage(content string) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	img := qr.Image(200)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateQuotationPDF renders a quotation with its load breakdown, the
// recommended system and a QR code of its reference.
func GenerateQuotationPDF(q db.Quotation, opts PDFOptions) (*gofpdf.Fpdf, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetTitle(fmt.Sprintf("Quotation %s", q.Reference), true)
	pdf.AddPage()
	font := setupFont(pdf, opts.FontDir)

	// header
	pdf.SetFont(font, "", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(130, 12, opts.CompanyName, "0", 0, "L", false, 0, "")
	pdf.Ln(12)
	pdf.SetFont(font, "", 14)
	pdf.CellFormat(130, 8, "Solar System Quotation", "0", 0, "L", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont(font, "", 10)
	pdf.CellFormat(130, 6, fmt.Sprintf("Reference: %s", q.Reference), "0", 0, "L", false, 0, "")
	pdf.Ln(6)
	pdf.CellFormat(130, 6, fmt.Sprintf("Date: %s", opts.Now.Format("2006-01-02")), "0", 0, "L", false, 0, "")
	pdf.Ln(6)
	pdf.CellFormat(130, 6, fmt.Sprintf("Status: %s", q.Status), "0", 0, "L", false, 0, "")

	qrBytes, err := generateQRCodeImage(q.Reference)
	if err != nil {
		return nil, fmt.Errorf("generate QR code: %w", err)
	}
	imageName := "qr_" + q.Reference
	pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "JPEG"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions(imageName, 160, 10, 35, 35, false, gofpdf.ImageOptions{ImageType: "JPEG"}, 0, "")

	pdf.SetY(50)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)

	drawCustomerSection(pdf, font, q)

	pdf.Ln(4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)

	drawLoadTable(pdf, font, q)

	pdf.Ln(6)
	drawSystemSection(pdf, font, q)

	pdf.SetY(-20)
	pdf.SetFont(font, "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s - printed %s. Estimates are indicative and subject to site survey.",
		opts.CompanyName, opts.Now.Format("2006-01-02 15:04:05")), "0", 0, "C", false, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return pdf, nil
}

// setupFont registers the unicode font when available and returns the family to use.
func setupFont(pdf *gofpdf.Fpdf, fontDir string) string {
	if fontDir == "" {
		return "Arial"
	}
	path := filepath.Join(fontDir, UnicodeFontFile)
	if _, err := os.Stat(path); err != nil {
		logger.Warn("PDF font %s not found, falling back to Arial", path)
		return "Arial"
	}
	pdf.AddUTF8Font("unicode", "", path)
	return "unicode"
}

func drawCustomerSection(pdf *gofpdf.Fpdf, font string, q db.Quotation) {
	rows := [][2]string{
		{"Customer:", q.CustomerName},
		{"Phone:", q.Phone},
		{"Email:", q.Email},
		{"Address:", q.Address},
		{"City:", q.City},
		{"Property:", q.PropertyType},
	}
	if q.MonthlyBill > 0 {
		rows = append(rows, [2]string{"Monthly bill:", formatPKR(q.MonthlyBill)})
	}

	pdf.SetFont(font, "", 11)
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		pdf.CellFormat(35, 7, r[0], "0", 0, "L", false, 0, "")
		pdf.CellFormat(155, 7, r[1], "0", 0, "L", false, 0, "")
		pdf.Ln(7)
	}
}

func drawLoadTable(pdf *gofpdf.Fpdf, font string, q db.Quotation) {
	headers := []struct {
		width float64
		name  string
	}{
		{80, "Appliance"},
		{30, "Quantity"},
		{40, "Watts / unit"},
		{40, "Subtotal (W)"},
	}

	pdf.SetFont(font, "", 12)
	pdf.CellFormat(190, 8, "Connected load", "0", 0, "L", false, 0, "")
	pdf.Ln(9)

	pdf.SetFont(font, "", 10)
	pdf.SetFillColor(240, 240, 240)
	for _, h := range headers {
		pdf.CellFormat(h.width, 8, h.name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(8)

	fill := false
	for _, a := range load.Appliances() {
		count := q.Appliances[string(a)]
		if count <= 0 {
			continue
		}
		if fill {
			pdf.SetFillColor(249, 249, 249)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		watts := load.Wattage(a)
		pdf.CellFormat(80, 7, load.Label(a), "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", count), "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", watts), "1", 0, "R", true, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", watts*count), "1", 0, "R", true, 0, "")
		pdf.Ln(7)
		fill = !fill
	}
	if q.OtherWatts > 0 {
		label := "Other"
		if q.OtherDescription != "" {
			label = fmt.Sprintf("Other (%s)", q.OtherDescription)
		}
		pdf.CellFormat(150, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", q.OtherWatts), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	pdf.SetFont(font, "", 11)
	pdf.CellFormat(150, 8, "Total load", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%d W", q.TotalLoad), "1", 0, "R", false, 0, "")
	pdf.Ln(8)
}

func drawSystemSection(pdf *gofpdf.Fpdf, font string, q db.Quotation) {
	pdf.SetFont(font, "", 12)
	pdf.CellFormat(190, 8, "Recommended system", "0", 0, "L", false, 0, "")
	pdf.Ln(9)

	pdf.SetFont(font, "", 11)
	rows := [][2]string{
		{"System size", fmt.Sprintf("%.0f kW", q.SystemSize)},
		{"Solar panels", fmt.Sprintf("%d", q.PanelsRequired)},
		{"Inverter", fmt.Sprintf("%d kW", q.InverterSize)},
		{"Battery capacity", fmt.Sprintf("%d kWh", q.BatteryCapacityCalc)},
		{"Estimated cost", formatPKR(q.EstimatedCost)},
	}
	for _, r := range rows {
		pdf.CellFormat(95, 7, r[0]+":", "0", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, r[1], "0", 0, "L", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont(font, "", 14)
	pdf.SetTextColor(0, 102, 204)
	pdf.CellFormat(95, 10, "Quoted amount:", "0", 0, "L", false, 0, "")
	pdf.CellFormat(95, 10, formatPKR(q.Amount), "0", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	if q.Notes != "" {
		pdf.SetFont(font, "", 10)
		pdf.MultiCell(190, 6, "Notes: "+q.Notes, "0", "L", false)
	}
}

// formatPKR groups thousands: 1050000 -> "PKR 1,050,000".
func formatPKR(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return "PKR " + sign + string(out)
}
