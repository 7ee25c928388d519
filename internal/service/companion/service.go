package companion

import (
	"context"
	"errors"
	"strings"
	"time"

	"dollshop-backend/internal/domain"
	alarmrepo "dollshop-backend/internal/repository/alarm"
	calendarrepo "dollshop-backend/internal/repository/calendar"
	devicerepo "dollshop-backend/internal/repository/device"
	musicrepo "dollshop-backend/internal/repository/music"
)

// ErrDeviceTaken is returned when syncing a device already bound to another
// account.
var ErrDeviceTaken = errors.New("device already synced to another account")

// Service covers the companion doll hardware: device pairing, alarms, music
// and the calendar.
type Service struct {
	devices  devicerepo.Repository
	alarms   alarmrepo.Repository
	music    musicrepo.Repository
	calendar calendarrepo.Repository
}

func New(devices devicerepo.Repository, alarms alarmrepo.Repository, music musicrepo.Repository, calendar calendarrepo.Repository) *Service {
	return &Service{devices: devices, alarms: alarms, music: music, calendar: calendar}
}

// DeviceInput registers or renames a device.
type DeviceInput struct {
	MACAddress string `json:"macAddress" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// AlarmInput carries alarm create/update payloads. Repeat is a seven
// character mask, Sunday first.
type AlarmInput struct {
	TimeID   string `json:"timeId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Sentence string `json:"sentence"`
	File     string `json:"file"`
	State    bool   `json:"state"`
	Repeat   string `json:"repeat" binding:"required"`
}

// MusicInput carries music create/update payloads.
type MusicInput struct {
	Name string `json:"name" binding:"required"`
	File string `json:"file" binding:"required"`
}

// EventInput carries calendar event payloads.
type EventInput struct {
	Title       string    `json:"title" binding:"required"`
	StartAt     time.Time `json:"start" binding:"required"`
	EndAt       time.Time `json:"end" binding:"required"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

func (s *Service) RegisterDevice(ctx context.Context, in DeviceInput) (*domain.Device, error) {
	mac := strings.TrimSpace(strings.ToLower(in.MACAddress))
	if mac == "" {
		return nil, domain.Invalid("macAddress required")
	}
	return s.devices.Create(ctx, domain.Device{
		MACAddress: mac,
		Name:       strings.TrimSpace(in.Name),
	})
}

func (s *Service) GetDevice(ctx context.Context, id int64) (*domain.Device, error) {
	return s.devices.GetByID(ctx, id)
}

func (s *Service) GetDeviceByMAC(ctx context.Context, macAddress string) (*domain.Device, error) {
	return s.devices.GetByMAC(ctx, strings.TrimSpace(strings.ToLower(macAddress)))
}

func (s *Service) ListDevices(ctx context.Context) ([]domain.Device, error) {
	return s.devices.List(ctx)
}

func (s *Service) ListUserDevices(ctx context.Context, userID int64) ([]domain.Device, error) {
	return s.devices.ListByUser(ctx, userID)
}

// SyncDevice binds the device with the given MAC to the user. A device held
// by another account cannot be re-synced until it is released.
func (s *Service) SyncDevice(ctx context.Context, userID int64, macAddress string) (*domain.Device, error) {
	mac := strings.TrimSpace(strings.ToLower(macAddress))
	d, err := s.devices.GetByMAC(ctx, mac)
	if err != nil {
		return nil, err
	}
	if d.UserID != nil && *d.UserID != userID {
		return nil, ErrDeviceTaken
	}
	if err := s.devices.SetUser(ctx, d.ID, &userID); err != nil {
		return nil, err
	}
	d.UserID = &userID
	return d, nil
}

// UnsyncDevice releases a device from the owning account.
func (s *Service) UnsyncDevice(ctx context.Context, userID, deviceID int64) error {
	d, err := s.devices.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if d.UserID == nil || *d.UserID != userID {
		return domain.ErrNotFound
	}
	return s.devices.SetUser(ctx, deviceID, nil)
}

func (s *Service) UpdateDevice(ctx context.Context, id int64, in DeviceInput) (*domain.Device, error) {
	err := s.devices.Update(ctx, id, domain.Device{
		MACAddress: strings.TrimSpace(strings.ToLower(in.MACAddress)),
		Name:       strings.TrimSpace(in.Name),
	})
	if err != nil {
		return nil, err
	}
	return s.devices.GetByID(ctx, id)
}

func (s *Service) DeleteDevice(ctx context.Context, id int64) error {
	return s.devices.Delete(ctx, id)
}

func validateRepeat(mask string) error {
	if len(mask) != 7 {
		return domain.Invalid("repeat must be a 7 character mask")
	}
	for _, r := range mask {
		if r != '0' && r != '1' {
			return domain.Invalid("repeat mask may only contain 0 and 1")
		}
	}
	return nil
}

func (s *Service) CreateAlarm(ctx context.Context, userID int64, in AlarmInput) (*domain.Alarm, error) {
	if err := validateRepeat(in.Repeat); err != nil {
		return nil, err
	}
	return s.alarms.Create(ctx, domain.Alarm{
		UserID:   userID,
		TimeID:   in.TimeID,
		Name:     strings.TrimSpace(in.Name),
		Sentence: in.Sentence,
		File:     in.File,
		State:    in.State,
		Repeat:   in.Repeat,
	})
}

func (s *Service) GetAlarm(ctx context.Context, id, userID int64) (*domain.Alarm, error) {
	a, err := s.alarms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return a, nil
}

func (s *Service) ListAlarms(ctx context.Context, userID int64) ([]domain.Alarm, error) {
	return s.alarms.ListByUser(ctx, userID)
}

func (s *Service) UpdateAlarm(ctx context.Context, id, userID int64, in AlarmInput) (*domain.Alarm, error) {
	if err := validateRepeat(in.Repeat); err != nil {
		return nil, err
	}
	existing, err := s.alarms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrNotFound
	}
	err = s.alarms.Update(ctx, id, domain.Alarm{
		UserID:   userID,
		TimeID:   in.TimeID,
		Name:     strings.TrimSpace(in.Name),
		Sentence: in.Sentence,
		File:     in.File,
		State:    in.State,
		Repeat:   in.Repeat,
	})
	if err != nil {
		return nil, err
	}
	return s.alarms.GetByID(ctx, id)
}

func (s *Service) DeleteAlarm(ctx context.Context, id, userID int64) error {
	existing, err := s.alarms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotFound
	}
	return s.alarms.Delete(ctx, id)
}

func (s *Service) CreateMusic(ctx context.Context, userID int64, in MusicInput) (*domain.Music, error) {
	return s.music.Create(ctx, domain.Music{
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
		File:   in.File,
	})
}

func (s *Service) GetMusic(ctx context.Context, id, userID int64) (*domain.Music, error) {
	m, err := s.music.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (s *Service) ListMusic(ctx context.Context, userID int64) ([]domain.Music, error) {
	return s.music.ListByUser(ctx, userID)
}

func (s *Service) UpdateMusic(ctx context.Context, id, userID int64, in MusicInput) (*domain.Music, error) {
	existing, err := s.music.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrNotFound
	}
	err = s.music.Update(ctx, id, domain.Music{
		UserID: userID,
		Name:   strings.TrimSpace(in.Name),
		File:   in.File,
	})
	if err != nil {
		return nil, err
	}
	return s.music.GetByID(ctx, id)
}

func (s *Service) DeleteMusic(ctx context.Context, id, userID int64) error {
	existing, err := s.music.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotFound
	}
	return s.music.Delete(ctx, id)
}

func (s *Service) CreateEvent(ctx context.Context, userID int64, in EventInput) (*domain.CalendarEvent, error) {
	if !in.EndAt.After(in.StartAt) {
		return nil, domain.Invalid("end must be after start")
	}
	return s.calendar.Create(ctx, domain.CalendarEvent{
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Location:    in.Location,
		Description: in.Description,
	})
}

func (s *Service) GetEvent(ctx context.Context, id, userID int64) (*domain.CalendarEvent, error) {
	ev, err := s.calendar.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ev.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (s *Service) ListEvents(ctx context.Context, userID int64) ([]domain.CalendarEvent, error) {
	return s.calendar.ListByUser(ctx, userID)
}

// SearchEvents returns every event overlapping the [from, to) window.
func (s *Service) SearchEvents(ctx context.Context, userID int64, from, to time.Time) ([]domain.CalendarEvent, error) {
	if !to.After(from) {
		return nil, domain.Invalid("search window must not be empty")
	}
	return s.calendar.Search(ctx, userID, from, to)
}

func (s *Service) UpdateEvent(ctx context.Context, id, userID int64, in EventInput) (*domain.CalendarEvent, error) {
	if !in.EndAt.After(in.StartAt) {
		return nil, domain.Invalid("end must be after start")
	}
	existing, err := s.calendar.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, domain.ErrNotFound
	}
	err = s.calendar.Update(ctx, id, domain.CalendarEvent{
		UserID:      userID,
		Title:       strings.TrimSpace(in.Title),
		StartAt:     in.StartAt,
		EndAt:       in.EndAt,
		Location:    in.Location,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}
	return s.calendar.GetByID(ctx, id)
}

func (s *Service) DeleteEvent(ctx context.Context, id, userID int64) error {
	existing, err := s.calendar.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrNotFound
	}
	return s.calendar.Delete(ctx, id)
}
