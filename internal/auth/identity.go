// Package auth resolves caller identity and hashes passwords.
//
// The default HeaderResolver trusts a raw user id supplied by the client,
// with no signature or expiry. It is kept behind the Resolver interface so
// TokenAuthority, which verifies a signed session token, can replace it
// without touching the store.
package auth

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/nhle/project-tracker/internal/model"
)

// DefaultHeader carries the asserted user id.
const DefaultHeader = "User-Id"

// Resolver extracts the caller's user id from a request. Implementations
// return an error wrapping model.ErrAuthRequired when no usable identity is
// present.
type Resolver interface {
	Resolve(r *http.Request) (int64, error)
}

// TokenIssuer hands out credentials at login for resolvers that need them.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// HeaderResolver reads the user id verbatim from a request header.
type HeaderResolver struct {
	Header string
}

// NewHeaderResolver returns a resolver for header, or DefaultHeader when
// header is empty.
func NewHeaderResolver(header string) HeaderResolver {
	if strings.TrimSpace(header) == "" {
		header = DefaultHeader
	}
	return HeaderResolver{Header: header}
}

// Resolve implements Resolver.
func (h HeaderResolver) Resolve(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(h.Header))
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s header", model.ErrAuthRequired, h.Header)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: malformed %s header", model.ErrAuthRequired, h.Header)
	}
	return id, nil
}
