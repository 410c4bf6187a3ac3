package network

import (
	"errors"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

// Method is one of the HTTP methods that can be requested.
type Method int

const (
	MethodHead Method = iota
	MethodGet
	MethodPatch
	MethodPost
	MethodPut
	MethodDelete
)

var methodNames = [...]string{
	MethodHead:   "HEAD",
	MethodGet:    "GET",
	MethodPatch:  "PATCH",
	MethodPost:   "POST",
	MethodPut:    "PUT",
	MethodDelete: "DELETE",
}

var ErrInvalidMethod = errors.New("Invalid HTTP method. Allowed: " + strings.Join(methodNames[:], ", "))

// ParseMethod matches text against the supported methods ignoring case.
func ParseMethod(text string) (Method, error) {
	for m, name := range methodNames {
		if strings.EqualFold(text, name) {
			return Method(m), nil
		}
	}

	return MethodGet, ErrInvalidMethod
}

func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
	return methodNames[m]
}

// Decode allows Method to be used directly as a kong flag.
func (m *Method) Decode(ctx *kong.DecodeContext) error {
	var text string
	err := ctx.Scan.PopValueInto("method", &text)
	if err != nil {
		return err
	}

	parsed, err := ParseMethod(text)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}

var _ kong.MapperValue = (*Method)(nil)
