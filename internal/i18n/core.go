package i18n

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/farmchainx/farmchainx/internal/common/cnst"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	translator  atomic.Pointer[I18n]
	defaultLang = cnst.LangDefault
)

// InitTranslator loads the TOML bundles under translationsPath and installs
// the result as the global translator.
func InitTranslator(translationsPath string) error {
	t := NewI18n(language.English)
	if err := t.LoadTranslations(translationsPath); err != nil {
		return err
	}
	translator.Store(t)
	return nil
}

// GetTranslator returns the global translator, falling back to the built-in
// English catalog when InitTranslator has not run.
func GetTranslator() *I18n {
	if t := translator.Load(); t != nil {
		return t
	}
	translator.CompareAndSwap(nil, NewI18n(language.English))
	return translator.Load()
}

// I18n manages internationalization and translations
type I18n struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

// NewI18n creates a bundle seeded with the built-in English messages
func NewI18n(defaultLang language.Tag) *I18n {
	bundle := i18n.NewBundle(defaultLang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	_ = bundle.AddMessages(language.English, catalog...)

	return &I18n{
		bundle:      bundle,
		defaultLang: defaultLang,
	}
}

// LoadTranslations loads every *.toml file in translationsDir. Files are
// named after their language, e.g. en.toml.
func (i *I18n) LoadTranslations(translationsDir string) error {
	files, err := os.ReadDir(translationsDir)
	if err != nil {
		return fmt.Errorf("failed to read translations directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".toml") {
			continue
		}
		filePath := filepath.Join(translationsDir, file.Name())
		if _, err := i.bundle.LoadMessageFile(filePath); err != nil {
			return fmt.Errorf("failed to load translation file %s: %w", file.Name(), err)
		}
	}

	return nil
}

// Languages returns the base language codes the bundle can serve
func (i *I18n) Languages() []string {
	tags := i.bundle.LanguageTags()
	langs := make([]string, 0, len(tags))
	for _, tag := range tags {
		base, _ := tag.Base()
		langs = append(langs, base.String())
	}
	return langs
}

// Translate returns a localized string for the given message ID and language.
// The message ID itself is returned when no translation exists.
func (i *I18n) Translate(msgID string, lang string, templateData map[string]any) string {
	localizer := i18n.NewLocalizer(i.bundle, lang, i.defaultLang.String())

	lc := &i18n.LocalizeConfig{MessageID: msgID}
	if len(templateData) > 0 {
		lc.TemplateData = templateData
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		return msgID
	}
	return msg
}

// LanguageFromRequest picks the response language from X-Lang, then
// Accept-Language, then the default language.
func LanguageFromRequest(r *http.Request) string {
	if lang := r.Header.Get(cnst.XLang); lang != "" {
		return normalizeLang(lang)
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		first := strings.TrimSpace(strings.Split(strings.Split(accept, ",")[0], ";")[0])
		return normalizeLang(first)
	}

	return defaultLang
}

// normalizeLang reduces a language tag to a supported base code
func normalizeLang(lang string) string {
	code := strings.ToLower(strings.Split(lang, "-")[0])
	for _, supported := range GetTranslator().Languages() {
		if code == supported {
			return code
		}
	}
	return defaultLang
}

func contextLang(c *gin.Context) string {
	if c == nil {
		return defaultLang
	}
	if lang, ok := c.Get(cnst.XLang); ok {
		if s, ok := lang.(string); ok && s != "" {
			return s
		}
	}
	return defaultLang
}

// TranslateMessage translates a message ID using the context's language preference
func TranslateMessage(c *gin.Context, msgID string, data map[string]any) string {
	return GetTranslator().Translate(msgID, contextLang(c), data)
}
