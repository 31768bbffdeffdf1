package services

import (
	"fmt"
	"net/smtp"
)

type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(host, port, username, password, from string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

func (m *Mailer) Configured() bool {
	return m.host != "" && m.from != ""
}

func (m *Mailer) SendResetLink(to, link string) error {
	body := fmt.Sprintf(
		"Hello,\r\n\r\n"+
			"You recently requested to reset your DigiChamp password.\r\n"+
			"Please click the link below to set a new password:\r\n\r\n"+
			"%s\r\n\r\n"+
			"If you didn't request a password reset, feel free to ignore this message.\r\n\r\n"+
			"Best regards,\r\n"+
			"The DigiChamp Team", link)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Reset Your DigiChamp Password\r\n\r\n%s\r\n", m.from, to, body)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg))
}
