package order

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/antt-creator/beyondthetrenchesproject/pkg/errorbank"
)

// EncodeReceipt reads a payment proof image and returns it as an inline data
// URL, ready to be stored in the order record. The image is embedded whole;
// there is no size cap, type check, or compression, and no object-storage
// hand-off. Large receipts therefore bloat the order row.
func EncodeReceipt(r io.Reader, contentType string) (string, error) {
	if r == nil {
		return "", nil
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", errorbank.BadRequest("failed to read receipt image", errorbank.WithCause(err))
	}
	if len(raw) == 0 {
		return "", nil
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(raw)), nil
}
