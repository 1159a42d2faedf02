package worksessions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbarros/go-timeclock-server/internal/apperr"
	"github.com/jbarros/go-timeclock-server/worksessions"
)

func TestReasonFromCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    worksessions.CloseReason
		wantErr bool
	}{
		{name: "exact code", code: "end_shift", want: worksessions.ReasonEndShift},
		{name: "uppercase", code: "END_SHIFT", want: worksessions.ReasonEndShift},
		{name: "mixed case", code: "Medical", want: worksessions.ReasonMedical},
		{name: "surrounding whitespace", code: " lunch_start ", want: worksessions.ReasonLunchStart},
		{name: "unknown code", code: "holiday", wantErr: true},
		{name: "empty code", code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, err := worksessions.ReasonFromCode(tt.code)
			if tt.wantErr {
				require.ErrorIs(t, err, worksessions.ErrInvalidReason)
				require.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, reason)
		})
	}
}

func TestReasonLabels(t *testing.T) {
	labels := map[worksessions.CloseReason]string{
		worksessions.ReasonEndShift:     "Fim de Expediente",
		worksessions.ReasonLunchStart:   "Início de Almoço",
		worksessions.ReasonBreakStart:   "Pausa/Intervalo",
		worksessions.ReasonMeetingStart: "Reunião",
		worksessions.ReasonMedical:      "Consulta Médica",
		worksessions.ReasonOther:        "Outros",
	}
	for reason, label := range labels {
		require.Equal(t, label, reason.Label())
		require.Equal(t, string(reason), reason.Code())
	}
}
