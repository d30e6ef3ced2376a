package cnst

const (
	LangEN      = "en"
	LangDefault = LangEN

	// XLang is the request header that overrides Accept-Language
	XLang = "X-Lang"
)
