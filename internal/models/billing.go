package models

// BillingRecord is the immutable outcome of ending a session. Every amount
// is in rupees; DurationHours is the billable figure, not raw wall-clock.
type BillingRecord struct {
	Date            string  `json:"date" db:"billed_at" example:"2025-03-14 18:42:10"`
	Mobile          string  `json:"mobile" db:"mobile"`
	Station         string  `json:"station" db:"station"`
	Game            string  `json:"game" db:"game"`
	Controllers     int     `json:"controllers" db:"controllers"`
	DurationHours   float64 `json:"duration_hours" db:"duration_hours" example:"1.5"`
	BaseCost        float64 `json:"base_cost" db:"base_cost"`
	FoodCost        float64 `json:"food_cost" db:"food_cost"`
	WalletUsed      float64 `json:"wallet_used" db:"wallet_used"`
	TotalDue        float64 `json:"total_due" db:"total_due"`
	LoyaltyEarned   float64 `json:"loyalty_earned" db:"loyalty_earned"`
	RemainingWallet float64 `json:"remaining_wallet" db:"remaining_wallet"`
}

// InvoiceRecord is the append-only history row kept for each billing record.
type InvoiceRecord struct {
	InvoiceID       string  `json:"invoice_id" db:"invoice_id"`
	Date            string  `json:"date" db:"billed_at"`
	Mobile          string  `json:"mobile" db:"mobile"`
	AmountDue       float64 `json:"amount_due" db:"amount_due"`
	Game            string  `json:"game" db:"game"`
	Station         string  `json:"station" db:"station"`
	Controllers     int     `json:"controllers" db:"controllers"`
	DurationHours   float64 `json:"duration_hours" db:"duration_hours"`
	BaseCost        float64 `json:"base_cost" db:"base_cost"`
	FoodCost        float64 `json:"food_cost" db:"food_cost"`
	WalletUsed      float64 `json:"wallet_used" db:"wallet_used"`
	LoyaltyEarned   float64 `json:"loyalty_earned" db:"loyalty_earned"`
	RemainingWallet float64 `json:"remaining_wallet" db:"remaining_wallet"`
}

// NewInvoiceRecord flattens a billing record into its history row.
func NewInvoiceRecord(invoiceID string, rec BillingRecord) InvoiceRecord {
	return InvoiceRecord{
		InvoiceID:       invoiceID,
		Date:            rec.Date,
		Mobile:          rec.Mobile,
		AmountDue:       rec.TotalDue,
		Game:            rec.Game,
		Station:         rec.Station,
		Controllers:     rec.Controllers,
		DurationHours:   rec.DurationHours,
		BaseCost:        rec.BaseCost,
		FoodCost:        rec.FoodCost,
		WalletUsed:      rec.WalletUsed,
		LoyaltyEarned:   rec.LoyaltyEarned,
		RemainingWallet: rec.RemainingWallet,
	}
}

// PaymentRecord is the cash actually collected at the counter when a
// session ends. Amount is the post-wallet total due.
type PaymentRecord struct {
	Mobile string  `json:"mobile" db:"mobile"`
	Amount float64 `json:"amount" db:"amount"`
	Date   string  `json:"date" db:"paid_at"`
}
