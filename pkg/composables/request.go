package composables

import (
	"net/http"

	"github.com/yinyiqing/hotel-backoffice/pkg/constants"
)

// UseForm decodes a POST body into the given DTO via the shared decoder.
func UseForm[T comparable](v T, r *http.Request) (T, error) {
	if err := r.ParseForm(); err != nil {
		return v, err
	}
	return v, constants.FormDecoder.Decode(v, r.Form)
}

// UseQuery returns the named query parameter, trimmed of surrounding form
// noise: when a parameter appears more than once the last occurrence wins.
func UseQuery(r *http.Request, key string) string {
	values := r.URL.Query()[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}
