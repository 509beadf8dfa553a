// Package id validates backend identifiers before they are put into a URL path.
package id

import (
	"strings"

	"coupon-admin/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Parse accepts a 24-character hex ObjectID and returns it in canonical lower-case form.
func Parse(raw string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "parse id "+raw), errs.ErrInvalidID)
	}
	return oid.Hex(), nil
}
