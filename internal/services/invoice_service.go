package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"image/png"
	"log"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/playden/backend/internal/models"
)

// InvoiceService renders billing records into printable invoice files. It
// always writes an HTML invoice; when a LibreOffice binary is available it
// also converts to PDF, which the front desk prefers to print. Conversion
// failures degrade to the HTML file, never to an error the caller must act
// on.
type InvoiceService struct {
	dir        string
	sofficeBin string
	upiVPA     string
	loungeName string
}

// NewInvoiceService writes invoices under dir and converts them with
// sofficeBin. A non-empty upiVPA adds a scan-to-pay QR code for the amount
// due.
func NewInvoiceService(dir, sofficeBin, upiVPA, loungeName string) *InvoiceService {
	return &InvoiceService{
		dir:        dir,
		sofficeBin: sofficeBin,
		upiVPA:     upiVPA,
		loungeName: loungeName,
	}
}

// Render writes the invoice files for rec and returns the web path of the
// best artifact produced, "/invoices/<id>.pdf" or "/invoices/<id>.html".
func (s *InvoiceService) Render(invoiceID string, rec models.BillingRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice dir: %w", err)
	}

	htmlName := invoiceID + ".html"
	pdfName := invoiceID + ".pdf"
	htmlPath := filepath.Join(s.dir, htmlName)

	view := invoiceView{
		LoungeName: s.loungeName,
		InvoiceID:  invoiceID,
		Record:     rec,
	}
	if s.upiVPA != "" && rec.TotalDue > 0 {
		_, image, err := s.PaymentQR(rec.TotalDue)
		if err != nil {
			log.Printf("[INVOICE] Failed to generate payment QR for %s: %v", invoiceID, err)
		} else {
			view.PaymentQR = template.URL("data:image/png;base64," + image)
		}
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render invoice %s: %w", invoiceID, err)
	}
	if err := os.WriteFile(htmlPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write invoice %s: %w", invoiceID, err)
	}

	if s.convertToPDF(htmlPath) {
		return "/invoices/" + pdfName, nil
	}
	return "/invoices/" + htmlName, nil
}

// convertToPDF shells out to LibreOffice headless. Any failure, including
// the binary being absent, just means no PDF this time.
func (s *InvoiceService) convertToPDF(htmlPath string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.sofficeBin, "--headless", "--convert-to", "pdf", "--outdir", s.dir, htmlPath)
	if err := cmd.Run(); err != nil {
		log.Printf("[INVOICE] PDF conversion unavailable (%s): %v", s.sofficeBin, err)
		return false
	}

	pdfPath := htmlPath[:len(htmlPath)-len(".html")] + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		log.Printf("[INVOICE] PDF conversion produced nothing for %s", htmlPath)
		return false
	}
	return true
}

// PaymentQR encodes a UPI pay intent for amount as a QR code. It returns
// the intent string and the PNG as base64, so callers can show the code on
// screen or embed it in a page.
func (s *InvoiceService) PaymentQR(amount float64) (string, string, error) {
	if s.upiVPA == "" {
		return "", "", fmt.Errorf("scan-to-pay is not configured: %w", ErrInvalidArgument)
	}
	intent := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR",
		url.QueryEscape(s.upiVPA), url.QueryEscape(s.loungeName), amount)

	qr, err := qrcode.New(intent, qrcode.Medium)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qr.Image(192)); err != nil {
		return "", "", err
	}
	return intent, base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

type invoiceView struct {
	LoungeName string
	InvoiceID  string
	Record     models.BillingRecord
	PaymentQR  template.URL
}

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
	"hours": func(v float64) string { return fmt.Sprintf("%.1f hr", v) },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceID}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; color: #222; }
  h1 { font-size: 20px; margin-bottom: 0; }
  .muted { color: #777; font-size: 12px; }
  table { border-collapse: collapse; margin-top: 24px; width: 100%; max-width: 520px; }
  td { padding: 6px 12px; border-bottom: 1px solid #e5e5e5; }
  td:first-child { color: #555; width: 45%; }
  tr.total td { border-top: 2px solid #222; border-bottom: none; font-weight: bold; }
  .qr { margin-top: 28px; }
  .qr img { width: 160px; height: 160px; }
</style>
</head>
<body>
  <h1>{{.LoungeName}}</h1>
  <div class="muted">Invoice {{.InvoiceID}} &middot; {{.Record.Date}}</div>

  <table>
    <tr><td>Mobile</td><td>{{.Record.Mobile}}</td></tr>
    <tr><td>Station</td><td>{{.Record.Station}}</td></tr>
    <tr><td>Game</td><td>{{.Record.Game}}</td></tr>
    <tr><td>Controllers</td><td>{{.Record.Controllers}}</td></tr>
    <tr><td>Duration</td><td>{{hours .Record.DurationHours}}</td></tr>
    <tr><td>Game Cost</td><td>{{money .Record.BaseCost}}</td></tr>
    <tr><td>Food &amp; Beverages</td><td>{{money .Record.FoodCost}}</td></tr>
    <tr><td>Wallet Used</td><td>{{money .Record.WalletUsed}}</td></tr>
    <tr class="total"><td>Total Due</td><td>{{money .Record.TotalDue}}</td></tr>
    <tr><td>Loyalty Earned</td><td>{{money .Record.LoyaltyEarned}}</td></tr>
    <tr><td>Wallet Balance</td><td>{{money .Record.RemainingWallet}}</td></tr>
  </table>

  {{if .PaymentQR}}
  <div class="qr">
    <div class="muted">Scan to pay</div>
    <img src="{{.PaymentQR}}" alt="UPI payment QR">
  </div>
  {{end}}

  <p class="muted">Thank you for playing. Loyalty credit is already in your wallet.</p>
</body>
</html>
`))
