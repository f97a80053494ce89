// Package impl contains the implementation of the application's business logic.
package impl

import (
	"time"

	"github.com/pkg/errors"

	domainerrors "perpus/internal/domain/errors"
)

// dateLayout is the wire format for every date field. The admin UI submits
// plain date inputs, so time components are never carried.
const dateLayout = "2006-01-02"

func parseWireDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrap(domainerrors.ErrValidationFailed, "invalid date: "+value)
	}

	return parsed, nil
}

func formatWireDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(dateLayout)
}
