package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("translation adapter is nil")
	ErrNilParser  = errors.New("translation parser is nil")

	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	ErrLoadingTranslationsCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory        = errors.New("failed to read translations directory")
	ErrFailedToReadFile             = errors.New("failed to read translation file")
	ErrFailedToParseFile            = errors.New("failed to parse translation file")
	ErrNoTranslationFiles           = errors.New("no translation files found")
	ErrInvalidTranslations          = errors.New("invalid translations structure")
)
