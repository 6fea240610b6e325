package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads every <lang>.toml file of the translation folder.
// Missing or broken files are logged and skipped so the service still starts
// with message ids as fallback texts.
func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range cfg.SupportedLanguages {
		path := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := Translator.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", path), zap.Error(err))
		}
	}
}

// Localize renders messageID in lang, falling back to English and then to
// the id itself.
func Localize(lang, messageID string, data map[string]any) string {
	if Translator == nil {
		return messageID
	}

	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", messageID), zap.Error(err))
	}
	// A message missing in lang comes back in English along with
	// *i18n.MessageNotFoundErr.
	if msg == "" {
		return messageID
	}
	return msg
}

// Messenger renders notification texts in a fixed language.
type Messenger struct {
	Lang string
}

func NewMessenger(lang string) *Messenger {
	if lang == "" {
		lang = LanguageEn
	}
	return &Messenger{Lang: lang}
}

func (m *Messenger) Message(id string, data map[string]any) string {
	return Localize(m.Lang, id, data)
}
