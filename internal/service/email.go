package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"pos-backend/internal/domain"
	"pos-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendOverdueSummary(ctx context.Context, to string, notices []OverdueNotice) error {
	var b strings.Builder
	b.WriteString("The following rental items are past their due date:\n\n")
	for _, n := range notices {
		fmt.Fprintf(&b, "- %s x%d (customer %s), due %s, %d day(s) overdue\n",
			n.ItemName, n.Quantity, n.CustomerPhone, n.DueDate.Format("2006-01-02"), n.DaysOverdue)
	}
	subject := fmt.Sprintf("Overdue rentals: %d outstanding line(s)", len(notices))
	return s.send(to, subject, b.String())
}

func (s *emailService) SendLowStockAlert(ctx context.Context, to string, items []domain.Item) error {
	var b strings.Builder
	b.WriteString("The following items are at or below the reorder threshold:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (item %d): %d on hand\n", item.Name, item.ItemID, item.Quantity)
	}
	subject := fmt.Sprintf("Low stock alert: %d item(s)", len(items))
	return s.send(to, subject, b.String())
}

func (s *emailService) send(to, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", to)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "Send", nil, "to", to, "status", response.StatusCode)
	return nil
}
