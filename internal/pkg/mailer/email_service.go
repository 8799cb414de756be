package mailer

import (
	"fmt"

	"bookverse-be/pkg/txcode"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReceipt(toEmail, fullName, code string, amount int64, itemTitles []string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendReceipt(toEmail, fullName, code string, amount int64, itemTitles []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Payment received — %s", code))

	items := ""
	for _, title := range itemTitles {
		items += fmt.Sprintf("<li>%s</li>", title)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you, %s!</h2>
			<p>Your payment for order <strong>%s</strong> has been confirmed.</p>
			<ul>%s</ul>
			<p>Total: <strong>%s</strong></p>
			<p>Your purchases are now available in your library.</p>
		</div>
	`, fullName, code, items, txcode.FormatIDR(amount))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Receipt for %s sent to %s\n", code, toEmail)
	return nil
}
