package worksessions

import (
	"fmt"
	"strings"

	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

// CloseReason is the enumerated reason a session was checked out.
type CloseReason string

const (
	ReasonEndShift     CloseReason = "end_shift"
	ReasonLunchStart   CloseReason = "lunch_start"
	ReasonBreakStart   CloseReason = "break_start"
	ReasonMeetingStart CloseReason = "meeting_start"
	ReasonMedical      CloseReason = "medical"
	ReasonOther        CloseReason = "other"
)

var ErrInvalidReason = fmt.Errorf("%w: invalid close reason", apperr.ErrValidation)

var reasonLabels = map[CloseReason]string{
	ReasonEndShift:     "Fim de Expediente",
	ReasonLunchStart:   "Início de Almoço",
	ReasonBreakStart:   "Pausa/Intervalo",
	ReasonMeetingStart: "Reunião",
	ReasonMedical:      "Consulta Médica",
	ReasonOther:        "Outros",
}

// ReasonFromCode resolves a reason code case-insensitively. An unrecognized
// code returns ErrInvalidReason.
func ReasonFromCode(code string) (CloseReason, error) {
	reason := CloseReason(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := reasonLabels[reason]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidReason, code)
	}
	return reason, nil
}

func (r CloseReason) Code() string {
	return string(r)
}

func (r CloseReason) Label() string {
	return reasonLabels[r]
}
