package gateway

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxLimit is the largest page size Mollie accepts.
const MaxLimit = 250

// Params are the path and list-query inputs of an operation. For customer
// operations CustomerID is the customer being addressed; ID is the nested
// mandate or subscription id.
type Params struct {
	CustomerID string
	ID         string
	Limit      int    `validate:"gte=0,lte=250"` // 0 means absent
	From       string `validate:"max=255"`
}

var validate = validator.New()

// ParseLimit converts the raw limit query value. Empty means absent.
func ParseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("limit must be a positive integer, got %q", raw)
	}
	return n, nil
}

// validateList checks the list query against Mollie's bounds.
func (p Params) validateList() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Limit":
			return fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, p.Limit)
		case "From":
			return fmt.Errorf("from must be at most 255 characters")
		}
	}
	return err
}

// path builds the upstream path for the operation, including the list
// query. The query keeps limit before from and is omitted entirely when
// neither is set.
func (s endpoint) path(p Params) string {
	var b strings.Builder
	b.WriteString("/customers")

	if s.nested() {
		b.WriteString("/")
		b.WriteString(url.PathEscape(p.CustomerID))
		b.WriteString("/")
		b.WriteString(string(s.resource))
		if s.withID {
			b.WriteString("/")
			b.WriteString(url.PathEscape(p.ID))
		}
	} else if s.withID {
		b.WriteString("/")
		b.WriteString(url.PathEscape(p.CustomerID))
	}

	if s.list {
		if q := p.query(); q != "" {
			b.WriteString("?")
			b.WriteString(q)
		}
	}
	return b.String()
}

func (p Params) query() string {
	parts := make([]string, 0, 2)
	if p.Limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(p.Limit))
	}
	if p.From != "" {
		parts = append(parts, "from="+url.QueryEscape(p.From))
	}
	return strings.Join(parts, "&")
}
