package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playden/backend/internal/models"
)

func sampleBilling() models.BillingRecord {
	return models.BillingRecord{
		Date:            "2025-03-14 18:30:00",
		Mobile:          "9876543210",
		Station:         "A",
		Game:            "Game A",
		Controllers:     1,
		DurationHours:   1.5,
		BaseCost:        150,
		FoodCost:        20,
		WalletUsed:      50,
		TotalDue:        120,
		LoyaltyEarned:   15,
		RemainingWallet: 15,
	}
}

func TestInvoiceService_Render(t *testing.T) {
	t.Run("falls back to HTML without LibreOffice", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewInvoiceService(dir, "definitely-not-soffice", "", "PlayDen Test")

		ref, err := svc.Render("inv123", sampleBilling())
		assert.NoError(t, err)
		assert.Equal(t, "/invoices/inv123.html", ref)

		body, err := os.ReadFile(filepath.Join(dir, "inv123.html"))
		assert.NoError(t, err)
		html := string(body)
		assert.Contains(t, html, "PlayDen Test")
		assert.Contains(t, html, "Invoice inv123")
		assert.Contains(t, html, "9876543210")
		assert.Contains(t, html, "Game A")
		assert.Contains(t, html, "1.5 hr")
		assert.Contains(t, html, "₹150.00")
		assert.Contains(t, html, "₹120.00")
	})

	t.Run("embeds a payment QR when a VPA is configured", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewInvoiceService(dir, "definitely-not-soffice", "playden@upi", "PlayDen Test")

		_, err := svc.Render("inv456", sampleBilling())
		assert.NoError(t, err)

		body, err := os.ReadFile(filepath.Join(dir, "inv456.html"))
		assert.NoError(t, err)
		assert.Contains(t, string(body), "Scan to pay")
		assert.Contains(t, string(body), "data:image/png;base64,")
	})

	t.Run("skips the QR when nothing is due", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewInvoiceService(dir, "definitely-not-soffice", "playden@upi", "PlayDen Test")

		rec := sampleBilling()
		rec.WalletUsed = 170
		rec.TotalDue = 0

		_, err := svc.Render("inv789", rec)
		assert.NoError(t, err)

		body, err := os.ReadFile(filepath.Join(dir, "inv789.html"))
		assert.NoError(t, err)
		assert.NotContains(t, string(body), "data:image/png")
	})

	t.Run("skips the QR without a VPA", func(t *testing.T) {
		dir := t.TempDir()
		svc := NewInvoiceService(dir, "definitely-not-soffice", "", "PlayDen Test")

		_, err := svc.Render("inv000", sampleBilling())
		assert.NoError(t, err)

		body, err := os.ReadFile(filepath.Join(dir, "inv000.html"))
		assert.NoError(t, err)
		assert.NotContains(t, string(body), "data:image/png")
	})

	t.Run("reports an unusable invoice directory", func(t *testing.T) {
		parent := t.TempDir()
		blocker := filepath.Join(parent, "blocker")
		assert.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		svc := NewInvoiceService(filepath.Join(blocker, "invoices"), "definitely-not-soffice", "", "PlayDen Test")
		_, err := svc.Render("inv123", sampleBilling())
		assert.Error(t, err)
	})
}

func TestInvoiceService_PaymentQR(t *testing.T) {
	t.Run("encodes a UPI intent for the amount", func(t *testing.T) {
		svc := NewInvoiceService(t.TempDir(), "definitely-not-soffice", "playden@upi", "PlayDen Test")

		intent, image, err := svc.PaymentQR(120)
		assert.NoError(t, err)
		assert.Contains(t, intent, "upi://pay?pa=playden%40upi")
		assert.Contains(t, intent, "am=120.00")
		assert.Contains(t, intent, "cu=INR")
		assert.NotEmpty(t, image)
	})

	t.Run("rejects when no VPA is configured", func(t *testing.T) {
		svc := NewInvoiceService(t.TempDir(), "definitely-not-soffice", "", "PlayDen Test")

		_, _, err := svc.PaymentQR(120)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
