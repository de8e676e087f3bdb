package orientation

// signature.go decodes the data-URL payload posted by the signature
// canvas in the guidance view.

import (
	"encoding/base64"
	"strings"
)

// DecodeSignatureDataURL splits a data URL of the form
// "data:image/png;base64,<payload>" on the first comma and decodes the
// base64 payload to raw image bytes.
//
// A missing comma or an invalid base64 payload is a validation error;
// the caller must not contact the blob store in that case.
func DecodeSignatureDataURL(dataURL string) ([]byte, error) {
	_, encoded, found := strings.Cut(dataURL, ",")
	if !found {
		return nil, NewValidationError("署名データの形式が正しくありません。")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, WrapValidationError(err, "署名データの形式が正しくありません。")
	}

	return data, nil
}
