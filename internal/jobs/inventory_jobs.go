package jobs

import (
	"context"

	"pos-backend/internal/logger"
)

// SendLowStockAlerts emails the manager a list of items whose on-hand
// quantity has fallen below the configured threshold.
func (jr *JobRunner) SendLowStockAlerts() {
	jr.runWithRecovery("SendLowStockAlerts", func() {
		ctx := context.Background()

		threshold := jr.config.Alerts.LowStockThreshold
		items, err := jr.store.ListBelowThreshold(ctx, threshold)
		if err != nil {
			logger.Error("Failed to list low stock items", "error", err, "threshold", threshold)
			return
		}

		if len(items) == 0 {
			logger.Info("No items below stock threshold", "threshold", threshold)
			return
		}

		to := jr.config.Alerts.ManagerEmail
		if to == "" {
			logger.Warn("Manager email not configured, skipping low stock alerts", "count", len(items))
			return
		}

		if err := jr.services.Email.SendLowStockAlert(ctx, to, items); err != nil {
			logger.Error("Failed to send low stock alert", "error", err, "count", len(items))
			return
		}
		logger.Info("Sent low stock alert", "to", to, "count", len(items))
	})
}
