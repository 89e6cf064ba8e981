package repository

import (
	"context"
	"testing"
	"time"

	"dental-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceRepository_Catalog(t *testing.T) {
	repo := NewServiceRepository()
	ctx := context.Background()

	services, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, services, 6)
	assert.Equal(t, "Dental Cleaning", services[0].Name)
	assert.Equal(t, "$85", services[0].DisplayPrice())

	services[0].Name = "changed"
	svc, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dental Cleaning", svc.Name)

	missing, err := repo.FindByID(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestMemorySessionRepository_ExpiresOnInjectedClock(t *testing.T) {
	clock := &testClock{now: time.Date(2025, time.April, 16, 10, 0, 0, 0, time.UTC)}
	repo := NewMemorySessionRepository(clock.Now)
	ctx := context.Background()

	session := &entity.BookingSession{ID: uuid.New()}
	session.Touch(clock.Now(), 30*time.Minute)
	require.NoError(t, repo.Save(ctx, session))

	clock.Advance(29 * time.Minute)
	found, err := repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)

	clock.Advance(time.Minute)
	found, err = repo.FindByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	removed, err := repo.DeleteExpired(ctx, clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestMemoryTokenRepository(t *testing.T) {
	clock := &testClock{now: time.Date(2025, time.April, 16, 10, 0, 0, 0, time.UTC)}
	repo := NewMemoryTokenRepository(clock.Now)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "live", time.Hour))
	require.NoError(t, repo.Store(ctx, "short", time.Minute))

	clock.Advance(2 * time.Minute)
	exists, err := repo.Exists(ctx, "live")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, "short")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Revoke(ctx, "live"))
	exists, err = repo.Exists(ctx, "live")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryTokenRepository_DefaultsToWallClock(t *testing.T) {
	repo := NewMemoryTokenRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Store(ctx, "live", time.Hour))
	exists, err := repo.Exists(ctx, "live")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAvailabilityRepository_ReturnsCopies(t *testing.T) {
	repo := NewAvailabilityRepository()
	ctx := context.Background()

	rules, err := repo.FindRules(ctx)
	require.NoError(t, err)
	require.Len(t, rules, 7)
	assert.Equal(t, []string{"9:00 AM - 1:00 PM", "2:00 PM - 5:00 PM"}, rules[0].Slots)
	assert.False(t, rules[6].IsActive)

	rules[0].Slots[0] = "changed"
	again, err := repo.FindRules(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM - 1:00 PM", again[0].Slots[0])

	exceptions, err := repo.FindExceptions(ctx)
	require.NoError(t, err)
	require.Len(t, exceptions, 1)
	assert.Equal(t, "2025-05-01", exceptions[0].Date)
}

func TestSettingsRepository_Defaults(t *testing.T) {
	repo := NewSettingsRepository()
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationSettings{Email: true, SMS: false, Push: true}, settings.Notifications)
	assert.Equal(t, "office@dentalclinic.com", settings.ContactInfo.Email)
	assert.Equal(t, []string{"10:00 AM - 2:00 PM"}, settings.BusinessHours[5].Hours)

	settings.BusinessHours[0].IsOpen = false
	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, again.BusinessHours[0].IsOpen)
}

func TestManagedAppointmentRepository_StoresChanges(t *testing.T) {
	repo := NewManagedAppointmentRepository(NewServiceRepository())
	ctx := context.Background()

	appointment, err := repo.FindByCode(ctx, "CODE1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", appointment.Patient.Name)

	appointment.Cancel()
	require.NoError(t, repo.Save(ctx, appointment))

	stored, err := repo.FindByCode(ctx, "CODE1")
	require.NoError(t, err)
	assert.True(t, stored.IsCanceled())
	assert.False(t, stored.UpdatedAt.IsZero())

	other, err := repo.FindByCode(ctx, "CODE2")
	require.NoError(t, err)
	assert.False(t, other.IsCanceled())
}
