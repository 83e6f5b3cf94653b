package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"

	"github.com/luanmendes74/menu-flow-saas/structs"
	"github.com/luanmendes74/menu-flow-saas/structs/tables"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService notifies establishments about incoming orders. Sending is
// fire-and-forget: an outage at the email provider never blocks a checkout.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.APIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if !es.cfg.Email.Enabled {
		es.logger.Debug("Email sending disabled, skipping", gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.FromAddress,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendNewOrderNotification mails the establishment about a freshly placed
// order. Errors are logged, never returned to the checkout path.
func (es *EmailService) SendNewOrderNotification(establishment *tables.Establishment, order *tables.Order) {
	subject := fmt.Sprintf("Novo pedido %s", order.OrderNumber)

	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "<li>%dx %s - %s</li>", item.Quantity, item.ProductName, formatCents(item.UnitPrice*uint64(item.Quantity)))
	}

	target := "Delivery"
	if order.Type == tables.OrderTypeTable && order.Table != nil {
		target = fmt.Sprintf("Mesa %s", order.Table.Number)
	} else if order.Type == tables.OrderTypeTable {
		target = "Mesa"
	}

	body := fmt.Sprintf(`
		<h2>Novo pedido recebido</h2>
		<p><strong>Pedido:</strong> %s</p>
		<p><strong>Tipo:</strong> %s</p>
		<ul>%s</ul>
		<p><strong>Total:</strong> %s</p>`,
		order.OrderNumber, target, lines.String(), formatCents(order.Total))

	if err := es.SendEmail([]string{establishment.Email}, subject, body); err != nil {
		es.logger.Warn("New order notification not delivered",
			gecho.Field("order_id", order.Id),
			gecho.Field("establishment_id", establishment.Id),
		)
	}
}

func formatCents(cents uint64) string {
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}
