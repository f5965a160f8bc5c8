package i18n

// ContactForm returns the bundled en/de catalog for the contactForm
// namespace. English is the fallback language.
func ContactForm() *Catalog {
	return New("en", map[string]map[string]string{
		"en": {
			"nameLabel":              "Name",
			"namePlaceholder":        "Your name",
			"emailLabel":             "Email",
			"emailPlaceholder":       "you@example.com",
			"projectTypeLabel":       "Project type",
			"projectTypePlaceholder": "Select a project type",
			"projectType_ai_chatbot":       "AI Chatbot",
			"projectType_rag_system":       "RAG System",
			"projectType_fullstack_webapp": "Full-Stack Web App",
			"projectType_other":            "Other",
			"messageLabel":       "Message",
			"messagePlaceholder": "Tell me about your project...",
			"submit":             "Send message",
			"sending":            "Sending...",
			"toast_success":      "Thanks! Your message has been sent.",
			"toast_error":        "Something went wrong. Please try again.",
			"toast_errorSend":    "Could not send your message. Check your connection and try again.",
			"error_nameMin":      "Name must be at least 2 characters.",
			"error_nameMax":      "Name must be at most 100 characters.",
			"error_email":        "Please enter a valid email address.",
			"error_projectType":  "Please select a project type.",
			"error_messageMin":   "Message must be at least 20 characters.",
			"error_messageMax":   "Message must be at most 2000 characters.",
			"error_invalid":      "Invalid value.",
		},
		"de": {
			"nameLabel":              "Name",
			"namePlaceholder":        "Ihr Name",
			"emailLabel":             "E-Mail",
			"emailPlaceholder":       "sie@beispiel.de",
			"projectTypeLabel":       "Projekttyp",
			"projectTypePlaceholder": "Projekttyp auswählen",
			"projectType_ai_chatbot":       "AI-Chatbot",
			"projectType_rag_system":       "RAG-System",
			"projectType_fullstack_webapp": "Full-Stack-Webanwendung",
			"projectType_other":            "Sonstiges",
			"messageLabel":       "Nachricht",
			"messagePlaceholder": "Erzählen Sie mir von Ihrem Projekt...",
			"submit":             "Nachricht senden",
			"sending":            "Wird gesendet...",
			"toast_success":      "Danke! Ihre Nachricht wurde gesendet.",
			"toast_error":        "Etwas ist schiefgelaufen. Bitte versuchen Sie es erneut.",
			"toast_errorSend":    "Die Nachricht konnte nicht gesendet werden. Prüfen Sie Ihre Verbindung und versuchen Sie es erneut.",
			"error_nameMin":      "Der Name muss mindestens 2 Zeichen lang sein.",
			"error_nameMax":      "Der Name darf höchstens 100 Zeichen lang sein.",
			"error_email":        "Bitte geben Sie eine gültige E-Mail-Adresse ein.",
			"error_projectType":  "Bitte wählen Sie einen Projekttyp aus.",
			"error_messageMin":   "Die Nachricht muss mindestens 20 Zeichen lang sein.",
			"error_messageMax":   "Die Nachricht darf höchstens 2000 Zeichen lang sein.",
			"error_invalid":      "Ungültiger Wert.",
		},
	})
}
