// Package i18n maps the client's internal tags to display strings.
//
// Status tags, quality tags and banner states are data; what the user
// sees is a localized lookup on top of them. Locale files are embedded
// so the binaries stay self-contained.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/hamzaanis/openedx-client/internal/model"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message IDs against the embedded locale bundle.
type Translator struct {
	localizer *goi18n.Localizer
}

// NewTranslator loads the embedded locale files and returns a
// Translator for the requested language, falling back to English for
// messages the language does not cover.
func NewTranslator(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("could not access embedded locales: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("could not load locale %s: %w", name, err)
		}
	}

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, lang, "en"),
	}, nil
}

// Msg translates a message ID. Unknown IDs come back verbatim so a
// missing translation never blanks out the UI.
func (t *Translator) Msg(id string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// StatusLabel returns the display string for a date block status.
func (t *Translator) StatusLabel(s model.StatusType) string {
	return t.Msg("status." + s.Tag())
}

// QualityLabel returns the display string for a download quality.
func (t *Translator) QualityLabel(q model.DownloadQuality) string {
	return t.Msg("quality." + q.Tag())
}

// BannerMessage returns the display string for a dates banner state,
// empty when no banner is shown.
func (t *Translator) BannerMessage(b model.BannerStatus) string {
	switch b {
	case model.BannerUpgradeToReset:
		return t.Msg("banner.upgrade-to-reset")
	case model.BannerResetDates:
		return t.Msg("banner.reset-dates")
	default:
		return ""
	}
}
