package jobs

import (
	"context"

	"autoportal-backend/internal/domain"
	"autoportal-backend/internal/logger"
)

// MarkOverduePayments flips pending invoices past their due date to overdue.
func (jr *JobRunner) MarkOverduePayments() {
	jr.runWithRecovery("MarkOverduePayments", func() {
		ctx := context.Background()

		candidates, err := jr.store.PaymentRepository.ListOverdueCandidates(ctx)
		if err != nil {
			logger.Error("Failed to list overdue candidates", "error", err)
			return
		}

		marked := 0
		for i := range candidates {
			p := candidates[i]
			p.Status = domain.PaymentStatusOverdue
			if err := jr.store.PaymentRepository.Update(ctx, &p); err != nil {
				logger.Error("Failed to mark payment overdue", "payment", p.PaymentID, "error", err)
				continue
			}
			marked++
		}

		logger.Info("Marked overdue payments", "count", marked)
	})
}

// SendPaymentReminders emails the owner of every overdue invoice. Delivery
// failures are logged and skipped; the next run retries naturally.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.PaymentRepository.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue payments", "error", err)
			return
		}

		sent := 0
		for _, p := range overdue {
			user, err := jr.store.UserRepository.GetByID(ctx, p.UserID)
			if err != nil {
				logger.Error("Failed to load invoice owner", "payment", p.PaymentID, "error", err)
				continue
			}
			if err := jr.emailSvc.SendPaymentReminder(ctx, user.Email, user.FullName(), p.PaymentID, p.AmountCents); err != nil {
				logger.Error("Failed to send payment reminder", "payment", p.PaymentID, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent payment reminders", "count", sent)
	})
}
