package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"Family-Meal-Planner/internal/utils"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendFamilyInvite emails an invitation code so the recipient can join the
// family from the app.
func SendFamilyInvite(toEmail, familyName, code string) error {
	appURL := utils.GetConfig("APP_URL")
	body := fmt.Sprintf(
		`<p>You have been invited to join the family <b>%s</b>.</p>
<p>Your invitation code is: <b>%s</b></p>
<p>Open <a href="%s">%s</a>, sign in and enter the code to join.</p>`,
		familyName, code, appURL, appURL,
	)
	return SendMail(toEmail, "Invitation to join "+familyName, body)
}

func SendPasswordReset(toEmail, token string) error {
	appURL := utils.GetConfig("APP_URL")
	body := fmt.Sprintf(
		`<p>A password reset was requested for your account.</p>
<p><a href="%s/reset-password?token=%s">Click here to reset your password</a>.</p>
<p>If you did not request this, you can ignore this email.</p>`,
		appURL, token,
	)
	return SendMail(toEmail, "Password reset", body)
}
