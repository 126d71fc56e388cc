// Package identity persists the one piece of device-local state the mobile
// client relies on: its stored user id. Absence is a normal state, not a
// failure.
package identity

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promptdeck/internal/models"
)

var ErrNoUser = errors.New("no stored user id")

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the user id stored for a device, or ErrNoUser.
func (s *Store) Get(deviceID string) (string, error) {
	var session models.Session
	if err := s.db.Where("device_id = ?", deviceID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNoUser
		}
		return "", err
	}
	return session.UserID, nil
}

// Put stores (or replaces) the user id for a device.
func (s *Store) Put(deviceID, userID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		err := tx.Where("device_id = ?", deviceID).First(&session).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			session = models.Session{
				ID:       uuid.NewString(),
				DeviceID: deviceID,
				UserID:   userID,
			}
			return tx.Create(&session).Error
		}
		if err != nil {
			return err
		}
		return tx.Model(&session).Update("user_id", userID).Error
	})
}

// Delete drops a device's stored user id. Deleting an unknown device is a
// no-op.
func (s *Store) Delete(deviceID string) error {
	return s.db.Where("device_id = ?", deviceID).Delete(&models.Session{}).Error
}
