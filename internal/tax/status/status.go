// Package status classifies invoice payment status. The status is a
// pure function of the invoice dates and the observation time, so it
// is re-evaluated on every read and never stored.
package status

import (
	"time"

	"github.com/gianmarioiamoni/pivabalance/pkg/models"
)

// PaymentStatus is the derived payment state of an invoice.
type PaymentStatus string

const (
	Paid    PaymentStatus = "paid"
	Pending PaymentStatus = "pending"
	Overdue PaymentStatus = "overdue"
)

// PaymentTerm is how long after issue an unpaid invoice stays pending
// before it is considered overdue.
const PaymentTerm = 30 * 24 * time.Hour

// Classify derives the payment status from the invoice dates:
// paid when a payment date is recorded, overdue when unpaid past the
// payment term, pending otherwise.
func Classify(issueDate time.Time, paymentDate *time.Time, now time.Time) PaymentStatus {
	if paymentDate != nil {
		return Paid
	}
	if now.After(issueDate.Add(PaymentTerm)) {
		return Overdue
	}
	return Pending
}

// Of classifies an invoice at the given observation time.
func Of(inv *models.Invoice, now time.Time) PaymentStatus {
	return Classify(inv.IssueDate, inv.PaymentDate, now)
}

// DaysOverdue returns how many whole days past the payment term an
// unpaid invoice is. Zero for paid or not-yet-overdue invoices.
func DaysOverdue(inv *models.Invoice, now time.Time) int {
	if Of(inv, now) != Overdue {
		return 0
	}
	return int(now.Sub(inv.IssueDate.Add(PaymentTerm)).Hours() / 24)
}
