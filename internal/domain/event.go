package domain

import "time"

type EventStatus string

const (
	EventDraft  EventStatus = "draft"
	EventOpen   EventStatus = "open"
	EventActive EventStatus = "active"
	EventClosed EventStatus = "closed"
)

type LocationType string

const (
	LocationOnline LocationType = "online"
	LocationOnSite LocationType = "on-site"
	LocationNone   LocationType = "none"
	// LocationHidden marks a logical event used only for scoring. It is
	// excluded from visible event listings.
	LocationHidden LocationType = "hidden"
)

func (l LocationType) IsValid() bool {
	switch l {
	case LocationOnline, LocationOnSite, LocationNone, LocationHidden:
		return true
	}
	return false
}

type EventTrigger string

const (
	TriggerPublish         EventTrigger = "publish"
	TriggerStartAttendance EventTrigger = "start_attendance"
	TriggerClose           EventTrigger = "close"
	TriggerReopen          EventTrigger = "reopen"
)

var eventTransitions = map[EventStatus]map[EventTrigger]EventStatus{
	EventDraft: {
		TriggerPublish: EventOpen,
	},
	EventOpen: {
		TriggerPublish:         EventOpen,
		TriggerStartAttendance: EventActive,
	},
	EventActive: {
		TriggerClose: EventClosed,
	},
	EventClosed: {
		TriggerReopen: EventActive,
	},
}

// NextStatus looks up the transition table. ok is false when the trigger is
// not allowed from the given status.
func NextStatus(from EventStatus, trigger EventTrigger) (EventStatus, bool) {
	to, ok := eventTransitions[from][trigger]
	return to, ok
}

type Event struct {
	ID            uint         `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	LocationType  LocationType `json:"location_type"`
	Location      string       `json:"location"`
	StartDateTime time.Time    `json:"start_datetime"`
	EndDateTime   time.Time    `json:"end_datetime"`
	Status        EventStatus  `json:"status"`
	IsOfficial    bool         `json:"is_official"`
	// ClosedAt is kept after a reopen so a reopened event can be told apart
	// from one that never closed.
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (e *Event) Apply(trigger EventTrigger, at time.Time) error {
	to, ok := NextStatus(e.Status, trigger)
	if !ok {
		return NewBusinessRuleError(ErrIllegalTransition, "cannot %s an event in status %q", trigger, e.Status)
	}

	e.Status = to
	if trigger == TriggerClose {
		e.ClosedAt = &at
	}
	return nil
}

func (e *Event) Publish() error {
	return e.Apply(TriggerPublish, time.Now())
}

func (e *Event) StartAttendance() error {
	return e.Apply(TriggerStartAttendance, time.Now())
}

func (e *Event) Close(at time.Time) error {
	return e.Apply(TriggerClose, at)
}

func (e *Event) Reopen() error {
	return e.Apply(TriggerReopen, time.Now())
}

func (e *Event) AcceptsAttendance() bool {
	return e.Status == EventActive
}

func (e *Event) WasReopened() bool {
	return e.Status == EventActive && e.ClosedAt != nil
}

func (e *Event) IsHidden() bool {
	return e.LocationType == LocationHidden
}
