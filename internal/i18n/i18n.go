// internal/i18n/i18n.go

// Package i18n holds the message catalog for every user-facing string the
// bot renders or posts. English is the fallback; a room's language command
// switches the whole room to another catalog.
package i18n

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Languages lists the supported locale tags, fallback first.
var Languages = []string{"en", "zh"}

// Supported reports whether tag names a supported locale.
func Supported(tag string) bool {
	for _, l := range Languages {
		if tag == l {
			return true
		}
	}
	return false
}

var bundle *i18n.Bundle

func init() {
	bundle = i18n.NewBundle(language.English)
	mustAdd(language.English, englishMessages)
	mustAdd(language.Chinese, chineseMessages)
}

func mustAdd(tag language.Tag, messages []*i18n.Message) {
	if err := bundle.AddMessages(tag, messages...); err != nil {
		panic(err)
	}
}

// Printer localizes message ids for one language. The zero tag ("") falls
// back to English.
type Printer struct {
	loc *i18n.Localizer
}

// NewPrinter returns a Printer for the given locale tag.
func NewPrinter(tag string) *Printer {
	return &Printer{loc: i18n.NewLocalizer(bundle, tag)}
}

// T renders a message id with optional template data.
func (p *Printer) T(id string, data map[string]interface{}) string {
	return p.loc.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}
