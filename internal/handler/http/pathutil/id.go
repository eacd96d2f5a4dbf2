// Package pathutil extracts and normalizes URL path components.
package pathutil

import (
	"net/http"
	"strconv"

	"pandamarket/internal/apperr"
)

// ID parses the named path parameter as a positive int64. Anything that
// is not a positive integer is rejected as an invalid-id error rather
// than a missing resource.
func ID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.Invalid, apperr.MsgInvalidID)
	}
	return id, nil
}
