package companion

import (
	"context"
	"errors"
	"testing"
	"time"

	"dollshop-backend/internal/domain"
)

type memoryDeviceRepo struct {
	devices map[int64]*domain.Device
	nextID  int64
}

func newMemoryDeviceRepo() *memoryDeviceRepo {
	return &memoryDeviceRepo{devices: make(map[int64]*domain.Device)}
}

func (r *memoryDeviceRepo) Create(_ context.Context, d domain.Device) (*domain.Device, error) {
	for _, existing := range r.devices {
		if existing.MACAddress == d.MACAddress {
			return nil, domain.ErrAlreadyExists
		}
	}
	r.nextID++
	d.ID = r.nextID
	clone := d
	r.devices[d.ID] = &clone
	return &d, nil
}

func (r *memoryDeviceRepo) GetByID(_ context.Context, id int64) (*domain.Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *memoryDeviceRepo) GetByMAC(_ context.Context, mac string) (*domain.Device, error) {
	for _, d := range r.devices {
		if d.MACAddress == mac {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryDeviceRepo) List(_ context.Context) ([]domain.Device, error) {
	var out []domain.Device
	for _, d := range r.devices {
		out = append(out, *d)
	}
	return out, nil
}

func (r *memoryDeviceRepo) ListByUser(_ context.Context, userID int64) ([]domain.Device, error) {
	var out []domain.Device
	for _, d := range r.devices {
		if d.UserID != nil && *d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memoryDeviceRepo) Update(_ context.Context, id int64, d domain.Device) error {
	existing, ok := r.devices[id]
	if !ok {
		return domain.ErrNotFound
	}
	existing.MACAddress = d.MACAddress
	existing.Name = d.Name
	return nil
}

func (r *memoryDeviceRepo) SetUser(_ context.Context, id int64, userID *int64) error {
	existing, ok := r.devices[id]
	if !ok {
		return domain.ErrNotFound
	}
	existing.UserID = userID
	return nil
}

func (r *memoryDeviceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.devices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.devices, id)
	return nil
}

func TestSyncDevice(t *testing.T) {
	ctx := context.Background()
	devices := newMemoryDeviceRepo()
	svc := &Service{devices: devices}

	d, err := svc.RegisterDevice(ctx, DeviceInput{MACAddress: "AA:BB:CC:DD:EE:FF", Name: "dolly"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if d.MACAddress != "aa:bb:cc:dd:ee:ff" {
		t.Fatalf("expected lowercased mac, got %q", d.MACAddress)
	}

	synced, err := svc.SyncDevice(ctx, 5, "aa:bb:cc:dd:ee:ff")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if synced.UserID == nil || *synced.UserID != 5 {
		t.Fatalf("expected device bound to user 5, got %+v", synced.UserID)
	}

	// Re-syncing by the same user is a no-op; another user is rejected.
	if _, err := svc.SyncDevice(ctx, 5, "aa:bb:cc:dd:ee:ff"); err != nil {
		t.Fatalf("re-sync by owner: %v", err)
	}
	if _, err := svc.SyncDevice(ctx, 6, "aa:bb:cc:dd:ee:ff"); !errors.Is(err, ErrDeviceTaken) {
		t.Fatalf("expected ErrDeviceTaken, got %v", err)
	}
}

func TestUnsyncDevice_OnlyOwner(t *testing.T) {
	ctx := context.Background()
	devices := newMemoryDeviceRepo()
	svc := &Service{devices: devices}

	d, _ := svc.RegisterDevice(ctx, DeviceInput{MACAddress: "aa:bb:cc:dd:ee:ff", Name: "dolly"})
	if _, err := svc.SyncDevice(ctx, 5, d.MACAddress); err != nil {
		t.Fatalf("sync: %v", err)
	}

	if err := svc.UnsyncDevice(ctx, 6, d.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owner unsync, got %v", err)
	}
	if err := svc.UnsyncDevice(ctx, 5, d.ID); err != nil {
		t.Fatalf("owner unsync: %v", err)
	}
	stored, _ := devices.GetByID(ctx, d.ID)
	if stored.UserID != nil {
		t.Fatalf("expected device released, got %+v", stored.UserID)
	}

	// Another user can take a released device.
	if _, err := svc.SyncDevice(ctx, 6, d.MACAddress); err != nil {
		t.Fatalf("sync after release: %v", err)
	}
}

func TestValidateRepeat(t *testing.T) {
	cases := []struct {
		mask string
		ok   bool
	}{
		{"0000000", true},
		{"1010101", true},
		{"1111111", true},
		{"101010", false},
		{"10101011", false},
		{"10a1010", false},
		{"", false},
	}
	for _, tc := range cases {
		err := validateRepeat(tc.mask)
		if tc.ok && err != nil {
			t.Fatalf("mask %q: unexpected error %v", tc.mask, err)
		}
		if !tc.ok && !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("mask %q: expected invalid input, got %v", tc.mask, err)
		}
	}
}

func TestEventWindowValidation(t *testing.T) {
	svc := &Service{}
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	_, err := svc.CreateEvent(context.Background(), 1, EventInput{Title: "t", StartAt: start, EndAt: start})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty window, got %v", err)
	}
	_, err = svc.SearchEvents(context.Background(), 1, start, start)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty search window, got %v", err)
	}
}
