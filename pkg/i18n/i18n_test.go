package i18n_test

import (
	"testing"

	"go-portfolio-backend/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookup(t *testing.T) {
	catalog := i18n.New("en", map[string]map[string]string{
		"en": {"greeting": "Hello"},
		"de": {"greeting": "Hallo"},
	})

	t.Run("Should resolve the requested language", func(t *testing.T) {
		assert.Equal(t, "Hallo", catalog.T("de", "greeting"))
	})

	t.Run("Should fall back to the default language", func(t *testing.T) {
		catalog := i18n.New("en", map[string]map[string]string{
			"en": {"greeting": "Hello", "only_en": "English only"},
			"de": {"greeting": "Hallo"},
		})
		assert.Equal(t, "English only", catalog.T("de", "only_en"))
	})

	t.Run("Should return the key when nothing matches", func(t *testing.T) {
		assert.Equal(t, "missing_key", catalog.T("de", "missing_key"))
	})

	t.Run("Should not observe later mutation of the input maps", func(t *testing.T) {
		source := map[string]map[string]string{"en": {"greeting": "Hello"}}
		catalog := i18n.New("en", source)
		source["en"]["greeting"] = "changed"
		assert.Equal(t, "Hello", catalog.T("en", "greeting"))
	})
}

func TestTranslator(t *testing.T) {
	translate := i18n.ContactForm().Translator("de")
	assert.Equal(t, "Danke! Ihre Nachricht wurde gesendet.", translate("toast_success"))
}

func TestContactFormCatalog(t *testing.T) {
	catalog := i18n.ContactForm()

	// Every key present in English must be translated in German too
	keys := []string{
		"nameLabel", "namePlaceholder",
		"emailLabel", "emailPlaceholder",
		"projectTypeLabel", "projectTypePlaceholder",
		"projectType_ai_chatbot", "projectType_rag_system",
		"projectType_fullstack_webapp", "projectType_other",
		"messageLabel", "messagePlaceholder",
		"submit", "sending",
		"toast_success", "toast_error", "toast_errorSend",
		"error_nameMin", "error_nameMax", "error_email",
		"error_projectType", "error_messageMin", "error_messageMax",
	}
	for _, key := range keys {
		assert.NotEqual(t, key, catalog.T("en", key), "missing en message for %s", key)
		assert.NotEqual(t, key, catalog.T("de", key), "missing de message for %s", key)
	}
}
