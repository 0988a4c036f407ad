package auth

import (
	"fmt"
	"net/smtp"

	"portfolio-app/config"

	"github.com/rs/zerolog/log"
)

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/auth/confirm?token=%s", config.SITE_URL, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

func SendPasswordResetEmail(to string, token string) error {
	link := fmt.Sprintf("%s/auth/reset-password?token=%s", config.SITE_URL, token)
	body := fmt.Sprintf("Click the following link to reset your password:\n\n%s", link)
	return sendMail(to, "Reset Your Password", body)
}

func sendMail(to, subject, body string) error {
	if config.SMTP_HOST == "" {
		// Local development without an SMTP server: log the mail
		// instead of failing the signup flow.
		log.Info().Str("to", to).Str("subject", subject).Msg(body)
		return nil
	}

	auth := smtp.PlainAuth("", config.SMTP_USER, config.SMTP_PASS, config.SMTP_HOST)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + config.SMTP_FROM + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, config.SMTP_FROM, []string{to}, message)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("smtp send failed")
	}
	return err
}
