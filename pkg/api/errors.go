package api

import (
	"errors"
	"net/http"

	"github.com/ssargent/tinyprs/pkg/codec"
	"github.com/ssargent/tinyprs/pkg/convert"
	"github.com/ssargent/tinyprs/pkg/document"
	"github.com/ssargent/tinyprs/pkg/storage"
)

var errorKinds = []struct {
	err    error
	status int
	kind   string
}{
	{codec.ErrMagicMismatch, http.StatusBadRequest, "magic_mismatch"},
	{codec.ErrTruncatedStream, http.StatusBadRequest, "truncated_stream"},
	{codec.ErrChecksumMismatch, http.StatusUnprocessableEntity, "checksum_mismatch"},
	{codec.ErrCountMismatch, http.StatusUnprocessableEntity, "count_mismatch"},
	{codec.ErrTextEncoding, http.StatusUnprocessableEntity, "text_encoding"},
	{codec.ErrInvalidEnum, http.StatusUnprocessableEntity, "invalid_enum"},
	{document.ErrSyntax, http.StatusBadRequest, "syntax"},
	{document.ErrNotObject, http.StatusBadRequest, "not_object"},
	{document.ErrTypeMismatch, http.StatusUnprocessableEntity, "type_mismatch"},
	{document.ErrNull, http.StatusUnprocessableEntity, "null_value"},
	{convert.ErrUnknownFormat, http.StatusBadRequest, "unsupported_format"},
	{storage.ErrNotFound, http.StatusNotFound, "not_found"},
}

func classify(err error) (int, string) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, k.kind
		}
	}
	var fe *document.FieldError
	if errors.As(err, &fe) {
		return http.StatusUnprocessableEntity, "invalid_field"
	}
	return http.StatusInternalServerError, "internal"
}
