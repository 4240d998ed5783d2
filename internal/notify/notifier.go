package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"app/pkg/logger"
)

// OtpNotifier delivers the plaintext delivery code to the student out of
// band. Failures are reported to the caller, which logs and swallows them:
// a lost email never fails order placement.
type OtpNotifier interface {
	SendOrderOtp(ctx context.Context, toEmail string, code string, orderID int64) error
}

// SMTPNotifier sends the code by plain SMTP.
type SMTPNotifier struct {
	addr string // host:port
	from string
}

func NewSMTPNotifier(addr, from string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from}
}

func (n *SMTPNotifier) SendOrderOtp(ctx context.Context, toEmail string, code string, orderID int64) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Delivery OTP for order #%d\r\n\r\n"+
			"Your delivery OTP for order #%d is: %s\r\n"+
			"It expires in 30 minutes and can be used only once.\r\n"+
			"If you didn't place this order, ignore this email.\r\n",
		n.from, toEmail, orderID, orderID, code,
	)
	return smtp.SendMail(n.addr, nil, n.from, []string{toEmail}, []byte(body))
}

// LogNotifier is the dev fallback when no SMTP server is configured. It
// records that a code was issued without ever logging the code itself.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.WithComponent("notify")}
}

func (n *LogNotifier) SendOrderOtp(ctx context.Context, toEmail string, code string, orderID int64) error {
	n.log.Info("order OTP issued", "order_id", orderID, "to", toEmail)
	return nil
}
