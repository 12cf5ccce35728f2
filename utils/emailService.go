package utils

import (
	"examdesk/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email via SendGrid when an API key is
// configured, falling back to plain SMTP otherwise.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridAPIKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := mail.NewEmail("ExamDesk", config.AppConfig.EmailSender)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)

	for _, addr := range to {
		message := mail.NewSingleEmail(from, subject, mail.NewEmail("", addr), "", htmlBody)
		resp, err := client.Send(message)
		if err != nil {
			log.Printf("Error sending email via SendGrid: %v", err)
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("SendGrid rejected email: status %d", resp.StatusCode)
			return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
		}
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ExamDesk <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A237E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A237E; line-height: 1.6; }
			.content h2 { color: #1A237E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3949AB; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EXAMDESK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 ExamDesk. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendStudentCredentialsEmail sends the generated login credentials to a
// newly registered student.
func SendStudentCredentialsEmail(email, name, studentID, tempPassword string) {
	subject := "Your ExamDesk Account Credentials"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>An examination account has been created for you.</p>
		<div class="info-box">
			<strong>Student ID:</strong> %s<br>
			<strong>Temporary password:</strong> %s
		</div>
		<p>Please log in and change your password as soon as possible.</p>
	`, name, studentID, tempPassword)

	go SendEmail([]string{email}, subject, getEmailTemplate("Welcome to ExamDesk", body))
}

// SendExamReminderEmail notifies an enrolled student about an upcoming exam.
func SendExamReminderEmail(email, name, examTitle string, startAt time.Time, durationMinutes int) {
	subject := "Upcoming Exam: " + examTitle
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder that you are enrolled in an upcoming exam.</p>
		<div class="info-box">
			<strong>Exam:</strong> %s<br>
			<strong>Starts:</strong> %s<br>
			<strong>Duration:</strong> %d minutes
		</div>
		<p>Make sure you are logged in before the exam starts. Good luck!</p>
	`, name, examTitle, startAt.Format(time.RFC1123), durationMinutes)

	go SendEmail([]string{email}, subject, getEmailTemplate("Exam Reminder", body))
}
