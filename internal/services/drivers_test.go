package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delivery_admin/internal/models"
)

func TestDriverCreateAndConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)

	require.NoError(t, db.Create(&models.User{Username: "wheels", UserType: models.UserTypeDriver}).Error)
	var user models.User
	require.NoError(t, db.Where("username = ?", "wheels").First(&user).Error)

	driver, err := svc.Create(CreateDriverInput{UserID: user.ID, Name: "老李", VehiclePlate: "京A12345"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, driver.Status)

	_, err = svc.Create(CreateDriverInput{UserID: user.ID, Name: "someone else"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDriverSearchConjunction(t *testing.T) {
	db := newTestDB(t)
	svc := NewDriverService(db)

	base := time.Now().Add(-time.Hour)
	fixtures := []models.Driver{
		{UserID: 1, Name: "li ming", Area: "east", VehiclePlate: "A111", Status: models.StatusActive, CreatedAt: base},
		{UserID: 2, Name: "li hua", Area: "west", VehiclePlate: "A222", Status: models.StatusActive, CreatedAt: base.Add(time.Minute)},
		{UserID: 3, Name: "wang lei", Area: "east", VehiclePlate: "B333", Status: models.StatusInactive, CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range fixtures {
		require.NoError(t, db.Create(&fixtures[i]).Error)
	}

	rows, total, err := svc.Search(DriverFilter{Name: "li"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "li hua", rows[0].Name)

	rows, total, err = svc.Search(DriverFilter{Name: "li", Area: "east"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "li ming", rows[0].Name)

	rows, _, err = svc.Search(DriverFilter{Status: models.StatusInactive})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "wang lei", rows[0].Name)
}

func TestDriverUpdateLocation(t *testing.T) {
	svc := NewDriverService(newTestDB(t))

	driver, err := svc.Create(CreateDriverInput{UserID: 9, Name: "mover"})
	require.NoError(t, err)
	require.Nil(t, driver.LocatedAt)

	updated, err := svc.UpdateLocation(driver.ID, 116.404, 39.915, "北京市东城区")
	require.NoError(t, err)
	assert.Equal(t, 116.404, updated.Longitude)
	assert.Equal(t, 39.915, updated.Latitude)
	assert.Equal(t, "北京市东城区", updated.Address)
	require.NotNil(t, updated.LocatedAt)
	assert.WithinDuration(t, time.Now(), *updated.LocatedAt, time.Minute)

	_, err = svc.UpdateLocation(12345, 0, 0, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDriverRemoveIdempotent(t *testing.T) {
	svc := NewDriverService(newTestDB(t))

	none, err := svc.Remove(321)
	require.NoError(t, err)
	assert.Nil(t, none)

	driver, err := svc.Create(CreateDriverInput{UserID: 5, Name: "leaving"})
	require.NoError(t, err)

	snapshot, err := svc.Remove(driver.ID)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "leaving", snapshot.Name)

	again, err := svc.Remove(driver.ID)
	require.NoError(t, err)
	assert.Nil(t, again)
}
