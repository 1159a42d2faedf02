package tracking

import (
	"fmt"

	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

var (
	ErrEmployeeNotFound = fmt.Errorf("%w: employee not found", apperr.ErrNotFound)
	ErrNoOpenShift      = fmt.Errorf("%w: no open shift to close", apperr.ErrNotFound)
	ErrShiftAlreadyOpen = fmt.Errorf("%w: multiple check-ins without check-out", apperr.ErrConflict)
	ErrDetailsRequired  = fmt.Errorf("%w: details required for reason 'other'", apperr.ErrValidation)
)
