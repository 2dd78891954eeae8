package errors

import (
	"github.com/uniplan/uniplan/internal/platform/errors/i18n"
)

// Localize renders the user-facing message for err in the given locale.
// Non-domain errors fall back to their plain Error() text so front ends
// never show a bare error code for unexpected failures.
func Localize(err error, locale string) string {
	if err == nil {
		return ""
	}
	e, ok := AsError(err)
	if !ok {
		return err.Error()
	}
	return i18n.GetCatalog(locale).Format(string(e.Code), e.Metadata)
}
