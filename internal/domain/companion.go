package domain

import "time"

// Device is a physical companion unit, identified by MAC address. UserID is
// set once the device is synced to an account.
type Device struct {
	ID         int64     `json:"id"`
	MACAddress string    `json:"macAddress"`
	Name       string    `json:"name"`
	UserID     *int64    `json:"userId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Alarm is a scheduled wake-up on the device. Repeat is a seven-character
// mask, Sunday first, '1' marking repeating days.
type Alarm struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	TimeID    string    `json:"timeId"`
	Name      string    `json:"name"`
	Sentence  string    `json:"sentence,omitempty"`
	File      string    `json:"file,omitempty"`
	State     bool      `json:"state"`
	Repeat    string    `json:"repeat"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Music is an uploaded audio file playable on the device.
type Music struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CalendarEvent is a schedule entry announced by the device.
type CalendarEvent struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	StartAt     time.Time `json:"start"`
	EndAt       time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
