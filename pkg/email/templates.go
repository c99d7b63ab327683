package email

import (
	"fmt"
	"time"
)

const defaultAppName = "MedAssist"

// WelcomeEmailData carries the fields for the account welcome email sent when
// staff creates a user.
type WelcomeEmailData struct {
	FirstName string
	Email     string
	LoginURL  string
	AppName   string
}

// BuildWelcomeEmail creates the account welcome message for a new user.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = defaultAppName
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "Bonjour"
	}

	subject := fmt.Sprintf("Bienvenue sur %s", appName)

	textBody := fmt.Sprintf(`Bonjour %s,

Votre compte %s a été créé.

Vous pouvez vous connecter ici :
%s

Si vous n'êtes pas à l'origine de cette création, ignorez ce message.

L'équipe %s`,
		firstName, appName, data.LoginURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Bonjour %s,</h2>
    <p>Votre compte %s a été créé.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Se connecter</a>
    </p>
    <p style="color: #6b7280; font-size: 14px;">Si vous n'êtes pas à l'origine de cette création, ignorez ce message.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">L'équipe %s</p>
</body>
</html>`,
		firstName, appName, data.LoginURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// QuoteEmailData carries the fields for the quote notification email sent to
// a patient when staff releases a quote.
type QuoteEmailData struct {
	FirstName  string
	Email      string
	ClinicName string
	QuoteURL   string
	SentAt     time.Time
	AppName    string
}

// BuildQuoteSentEmail creates the message telling a patient a quote is
// available in their space.
func BuildQuoteSentEmail(data QuoteEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = defaultAppName
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "Bonjour"
	}

	clinic := data.ClinicName
	if clinic == "" {
		clinic = "votre clinique"
	}

	subject := fmt.Sprintf("Votre devis est disponible sur %s", appName)

	textBody := fmt.Sprintf(`Bonjour %s,

Un devis préparé avec %s est maintenant disponible dans votre espace patient.

Consultez-le et répondez ici :
%s

Vous pouvez accepter le devis ou le refuser en précisant la raison.

L'équipe %s`,
		firstName, clinic, data.QuoteURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Bonjour %s,</h2>
    <p>Un devis préparé avec <strong>%s</strong> est maintenant disponible dans votre espace patient.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 14px 28px; text-decoration: none; border-radius: 6px; display: inline-block; font-size: 16px;">Consulter le devis</a>
    </p>
    <p>Vous pouvez accepter le devis ou le refuser en précisant la raison.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">L'équipe %s</p>
</body>
</html>`,
		firstName, clinic, data.QuoteURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AppointmentEmailData carries the fields for appointment status emails.
type AppointmentEmailData struct {
	FirstName  string
	Email      string
	ClinicName string
	Date       time.Time
	Status     string
	AppName    string
}

// BuildAppointmentStatusEmail creates the message telling a patient their
// appointment was confirmed or cancelled.
func BuildAppointmentStatusEmail(data AppointmentEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = defaultAppName
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "Bonjour"
	}

	var subject, line string
	switch data.Status {
	case "confirmed":
		subject = "Votre rendez-vous est confirmé"
		line = fmt.Sprintf("Votre rendez-vous du %s est confirmé.", data.Date.Format("02/01/2006 à 15h04"))
	case "cancelled":
		subject = "Votre rendez-vous a été annulé"
		line = fmt.Sprintf("Votre rendez-vous du %s a été annulé.", data.Date.Format("02/01/2006 à 15h04"))
	default:
		subject = "Mise à jour de votre rendez-vous"
		line = fmt.Sprintf("Le statut de votre rendez-vous du %s a changé.", data.Date.Format("02/01/2006 à 15h04"))
	}

	if data.ClinicName != "" {
		line += fmt.Sprintf(" Clinique : %s.", data.ClinicName)
	}

	textBody := fmt.Sprintf(`Bonjour %s,

%s

L'équipe %s`,
		firstName, line, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Bonjour %s,</h2>
    <p>%s</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">L'équipe %s</p>
</body>
</html>`,
		firstName, line, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
