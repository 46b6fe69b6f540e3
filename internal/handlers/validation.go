package handlers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
)

// User-facing messages.
const (
	msgInternalError    = "Internal server error"
	msgPasswordTooLong  = "Password terlalu panjang"
	msgItemName         = "Nama harus diisi dan berupa teks"
	msgIDsMustBeNumeric = "ChecklistId dan itemId harus berupa angka"
)

var (
	msgUsernameInvalid = textFieldMessage("Username")
	msgPasswordInvalid = textFieldMessage("Password")
	msgEmailInvalid    = textFieldMessage("Email")
	msgChecklistName   = textFieldMessage("Nama")
)

// rejection is a 400-class validation failure carrying the message shown to the caller.
type rejection struct {
	message string
}

func (r *rejection) Error() string { return r.message }

// rejectionMessage extracts the caller-facing text of a validation failure.
func rejectionMessage(err error) string {
	var r *rejection
	if errors.As(err, &r) {
		return r.message
	}
	return err.Error()
}

// requireText accepts a JSON string with at least one non-blank character.
// The original (untrimmed) value is returned.
func requireText(value any, message string) (string, error) {
	s, ok := value.(string)
	if !ok || trimBlank(s) == "" {
		return "", &rejection{message: message}
	}
	return s, nil
}

// isBlank matches the characters clients strip when checking for empty text:
// space separators, tab, vertical tab, form feed, BOM and the line
// terminators LF, CR, LS and PS. NEL (U+0085) is not blank.
func isBlank(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trimBlank(s string) string {
	return strings.TrimFunc(s, isBlank)
}

// parseNumber reads a path identifier as any decimal number spelling
// ("5", " 5", "+5", "1.0", "1e0", "Infinity"). NaN is not a number.
func parseNumber(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(trimBlank(raw), 64)
	if err != nil {
		var numErr *strconv.NumError
		// out-of-range values still parse as ±Inf
		if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, false
		}
	}
	return f, !math.IsNaN(f)
}

// rowID converts a parsed number to a row id. Fractional, infinite and
// out-of-range numbers cannot name a row.
func rowID(f float64) (int64, bool) {
	if math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// requireNumeric rejects a path identifier that is not a number. A number
// that cannot name a row passes validation with found=false.
func requireNumeric(raw, message string) (id int64, found bool, err error) {
	f, ok := parseNumber(raw)
	if !ok {
		return 0, false, &rejection{message: message}
	}
	id, found = rowID(f)
	return id, found, nil
}

// lookupID parses an identifier on routes that do not validate it; a value
// that is not a whole number cannot match any row.
func lookupID(raw string) (int64, bool) {
	f, ok := parseNumber(raw)
	if !ok {
		return 0, false
	}
	return rowID(f)
}

// bindBody decodes the JSON body into dst. An unreadable body leaves dst
// zero-valued so field validation rejects it with the first field's message.
func (h *Handler) bindBody(c *gin.Context, dst any) {
	if err := c.ShouldBindJSON(dst); err != nil && h.log != nil {
		h.log.Debugw("request_body_unreadable", "path", c.FullPath(), "err", err)
	}
}

// textFieldMessage builds the standard non-empty text message for a field label.
func textFieldMessage(label string) string {
	return fmt.Sprintf("%s harus berupa teks dan tidak boleh kosong", label)
}
