package utils

import (
	"net/smtp"
	"os"
)

// MailSender performs the actual SMTP delivery. Tests replace it to keep
// handler tests off the network.
var MailSender = smtp.SendMail

// SendMail sends an email through the configured SMTP account. Delivery is
// best effort: failures are logged and never bubble up to the caller.
func SendMail(email string, message []byte) {
	from := "dancehub.notify@gmail.com"
	password := os.Getenv("GOOGLE_SMTP_MDP")
	to := email

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"
	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := MailSender(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		LogError(err, "Error sending email")
		return
	}

	LogSuccess("Email sent successfully")
}
