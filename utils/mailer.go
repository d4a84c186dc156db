package utils

import (
	"fmt"
	"strings"

	"grc-app/config"
	"grc-app/models"

	"gopkg.in/gomail.v2"
)

// SendDisputeAlert mails the configured recipients when a receive call
// raised disputes. Best effort: a mail failure never fails the workflow.
func SendDisputeAlert(disputes []models.GRCDispute) error {
	if config.SMTPHost == "" || len(config.DisputeAlertTo) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("<p>GRC receive reconciliation raised the following disputes:</p><ul>")
	for _, d := range disputes {
		b.WriteString(fmt.Sprintf("<li>%s / GRC %d (%s) issued %d</li>",
			d.SpareCode, d.GRCNumber, d.Division, d.IssueQty))
	}
	b.WriteString("</ul>")

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", config.DisputeAlertTo...)
	msg.SetHeader("Subject", fmt.Sprintf("GRC dispute alert (%d rows)", len(disputes)))
	msg.SetBody("text/html", b.String())

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("Failed to send dispute alert:", err)
		return err
	}
	return nil
}
