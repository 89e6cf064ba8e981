package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentDraft_Merge(t *testing.T) {
	svc := Service{ID: 1, Name: "Dental Cleaning", Price: decimal.NewFromInt(85)}
	var draft AppointmentDraft
	assert.False(t, draft.HasService())

	draft = draft.Merge(DraftUpdate{Service: &svc})
	require.True(t, draft.HasService())
	svc.Name = "changed"
	assert.Equal(t, "Dental Cleaning", draft.Service.Name)
	assert.False(t, draft.HasSchedule())

	date := time.Date(2025, time.April, 15, 13, 45, 0, 0, time.UTC)
	slot := "10:30"
	draft = draft.Merge(DraftUpdate{Date: &date, Time: &slot})
	assert.Equal(t, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC), *draft.Date)
	assert.True(t, draft.HasSchedule())
	assert.False(t, draft.IsComplete())

	draft = draft.Merge(DraftUpdate{PatientInfo: &PatientInfo{Name: "Jane Smith", Notes: "first"}})
	draft = draft.Merge(DraftUpdate{PatientInfo: &PatientInfo{Name: "Jane Smith"}})
	assert.Empty(t, draft.PatientInfo.Notes)
	assert.True(t, draft.IsComplete())

	unchanged := draft.Merge(DraftUpdate{})
	assert.Equal(t, draft, unchanged)
}

func TestAppointmentDraft_EmptyTimeIsNotScheduled(t *testing.T) {
	svc := Service{ID: 1}
	date := time.Now()
	empty := ""
	draft := AppointmentDraft{}.Merge(DraftUpdate{Service: &svc, Date: &date, Time: &empty})
	assert.False(t, draft.HasSchedule())
}
