package jobs

import (
	"context"
	"time"

	"pos-backend/internal/logger"
	"pos-backend/internal/service"
)

// SendOverdueReminders emails the manager a summary of every unreturned
// rental line that is past its due date.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		query := `
			SELECT c.phone, i.name, rl.quantity, r.due_date
			FROM rental_lines rl
			JOIN rentals r ON r.id = rl.rental_id
			JOIN customers c ON c.id = r.customer_id
			JOIN items i ON i.id = rl.item_id
			WHERE rl.returned = false
			  AND r.due_date < $1
			ORDER BY r.due_date, c.phone
		`

		today := time.Now().UTC().Truncate(24 * time.Hour)
		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to query overdue rental lines", "error", err)
			return
		}
		defer rows.Close()

		var notices []service.OverdueNotice
		for rows.Next() {
			var n service.OverdueNotice
			if err := rows.Scan(&n.CustomerPhone, &n.ItemName, &n.Quantity, &n.DueDate); err != nil {
				logger.Error("Failed to scan overdue rental line", "error", err)
				continue
			}
			n.DaysOverdue = service.DaysOverdue(today, n.DueDate)
			notices = append(notices, n)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating overdue rental lines", "error", err)
			return
		}

		if len(notices) == 0 {
			logger.Info("No overdue rental lines found")
			return
		}

		to := jr.config.Alerts.ManagerEmail
		if to == "" {
			logger.Warn("Manager email not configured, skipping overdue reminders", "count", len(notices))
			return
		}

		if err := jr.services.Email.SendOverdueSummary(ctx, to, notices); err != nil {
			logger.Error("Failed to send overdue summary", "error", err, "count", len(notices))
			return
		}
		logger.Info("Sent overdue summary", "to", to, "count", len(notices))
	})
}
