// Package i18n maps form and authentication outcomes to user-facing
// messages. Every validation and registration outcome has exactly one
// message id; translations are YAML files embedded from locales/.
package i18n

import (
	"embed"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog translates message ids into one language.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// New loads the embedded locales and selects lang (a BCP 47 tag such as
// "en" or "de"). Unknown languages fall back to English.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, err
		}
	}

	return &Catalog{bundle: bundle, localizer: i18n.NewLocalizer(bundle, lang)}, nil
}

// Languages lists the tags with an embedded translation.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// T translates messageID. Missing ids are returned unchanged.
func (c *Catalog) T(messageID string) string {
	return c.TData(messageID, nil)
}

// TData translates messageID, filling template fields from data.
func (c *Catalog) TData(messageID string, data map[string]any) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
