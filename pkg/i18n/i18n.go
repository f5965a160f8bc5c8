// Package i18n supplies the translated strings the contact form consumes:
// field labels, placeholders, inline error messages, and toast texts for the
// supported locales. Catalogs are immutable after construction and safe for
// concurrent use; lookups are O(1) with default-language fallback.
package i18n

// Catalog holds per-language message maps for one namespace.
type Catalog struct {
	defaultLang string
	messages    map[string]map[string]string
}

// New builds a catalog from language-keyed message maps. The maps are copied
// so later mutation of the input cannot leak into the catalog.
func New(defaultLang string, translations map[string]map[string]string) *Catalog {
	messages := make(map[string]map[string]string, len(translations))
	for lang, msgs := range translations {
		copied := make(map[string]string, len(msgs))
		for k, v := range msgs {
			copied[k] = v
		}
		messages[lang] = copied
	}
	return &Catalog{
		defaultLang: defaultLang,
		messages:    messages,
	}
}

// T resolves a message for the given language, falling back to the default
// language and finally to the key itself. Returning the key keeps a missing
// translation visible instead of rendering an empty label.
func (c *Catalog) T(lang, key string) string {
	if msgs, ok := c.messages[lang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msgs, ok := c.messages[c.defaultLang]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	return key
}

// Translator returns a single-language lookup function, the shape the form
// controller accepts.
func (c *Catalog) Translator(lang string) func(key string) string {
	return func(key string) string {
		return c.T(lang, key)
	}
}

// Languages lists the languages the catalog carries.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.messages))
	for lang := range c.messages {
		langs = append(langs, lang)
	}
	return langs
}
