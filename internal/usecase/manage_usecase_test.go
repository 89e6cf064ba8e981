package usecase

import (
	"context"
	"testing"

	"dental-clinic-booking/internal/delivery/dto"
	"dental-clinic-booking/internal/domain/entity"
	"dental-clinic-booking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManageUsecase() ManageUsecase {
	repo := repository.NewManagedAppointmentRepository(repository.NewServiceRepository())
	return NewManageUsecase(quietLogger(), repo, newStubSlotSource(), testNow)
}

func TestManage_GetAppointment(t *testing.T) {
	u := newManageUsecase()

	appointment, err := u.GetAppointment(context.Background(), "ABC12345")
	require.NoError(t, err)
	assert.Equal(t, "ABC12345", appointment.ID)
	assert.Equal(t, "Dental Cleaning", appointment.Service.Name)
	assert.Equal(t, "2025-04-15", appointment.Date)
	assert.Equal(t, "Tuesday, April 15, 2025", appointment.DateDisplay)
	assert.Equal(t, "10:30", appointment.Time)
	assert.Equal(t, "Jane Smith", appointment.Patient.Name)
	assert.Equal(t, string(entity.AppointmentStatusConfirmed), appointment.Status)
}

func TestManage_RescheduleToOfferedSlot(t *testing.T) {
	u := newManageUsecase()
	ctx := context.Background()
	tomorrow := entity.DateOf(testNow()).AddDate(0, 0, 1).Format(entity.DateLayout)

	_, err := u.Reschedule(ctx, "ABC12345", &dto.RescheduleRequest{Date: tomorrow, Time: "11:00"})
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	options, err := u.GetRescheduleOptions(ctx, "ABC12345")
	require.NoError(t, err)
	require.Len(t, options.Options, 1)
	assert.Equal(t, tomorrow, options.Options[0].Date)
	assert.Equal(t, []string{"11:00", "13:00"}, options.Options[0].Slots)

	_, err = u.Reschedule(ctx, "ABC12345", &dto.RescheduleRequest{Date: tomorrow, Time: "12:00"})
	assert.ErrorIs(t, err, ErrSlotNotOffered)

	updated, err := u.Reschedule(ctx, "ABC12345", &dto.RescheduleRequest{Date: tomorrow, Time: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, tomorrow, updated.Date)
	assert.Equal(t, "13:00", updated.Time)

	again, err := u.GetAppointment(ctx, "ABC12345")
	require.NoError(t, err)
	assert.Equal(t, "13:00", again.Time)

	other, err := u.GetAppointment(ctx, "ZZZ99999")
	require.NoError(t, err)
	assert.Equal(t, "10:30", other.Time)
}

func TestManage_RejectsMalformedCodes(t *testing.T) {
	u := newManageUsecase()
	ctx := context.Background()

	for _, code := range []string{"", "abc12345", "ABC1234", "ABC123456", "ABC-1234", "../../etc"} {
		_, err := u.GetAppointment(ctx, code)
		assert.ErrorIs(t, err, ErrAppointmentNotFound, code)
		_, err = u.GetRescheduleOptions(ctx, code)
		assert.ErrorIs(t, err, ErrAppointmentNotFound, code)
		_, err = u.Cancel(ctx, code, &dto.CancelAppointmentRequest{Confirm: true})
		assert.ErrorIs(t, err, ErrAppointmentNotFound, code)
	}
}

func TestManage_RescheduleRequiresDateAndTime(t *testing.T) {
	u := newManageUsecase()

	_, err := u.Reschedule(context.Background(), "ABC12345", &dto.RescheduleRequest{Date: "2025-04-16"})
	assert.ErrorIs(t, err, ErrDateTimeRequired)
}

func TestManage_Cancel(t *testing.T) {
	u := newManageUsecase()
	ctx := context.Background()

	_, err := u.Cancel(ctx, "ABC12345", &dto.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrCancelNotConfirmed)

	canceled, err := u.Cancel(ctx, "ABC12345", &dto.CancelAppointmentRequest{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCanceled), canceled.Status)
	assert.Equal(t, dto.StepHome, canceled.NextStep)

	_, err = u.Cancel(ctx, "ABC12345", &dto.CancelAppointmentRequest{Confirm: true})
	assert.ErrorIs(t, err, ErrAppointmentAlreadyCanceled)

	_, err = u.GetRescheduleOptions(ctx, "ABC12345")
	assert.ErrorIs(t, err, ErrAppointmentCanceled)
}
