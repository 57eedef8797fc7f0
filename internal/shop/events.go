package shop

import "time"

type EventType string

const (
	EventServe     EventType = "serve"
	EventRestock   EventType = "restock"
	EventBoost     EventType = "boost"
	EventAuditPass EventType = "audit_pass"
	EventAuditFail EventType = "audit_fail"
	EventPrestige  EventType = "prestige"
)

// Event is one entry in the rush-replay log. Value carries the cash delta
// where one applies (serve earnings, audit reward).
type Event struct {
	At    time.Time `json:"at"`
	Type  EventType `json:"type"`
	Value int       `json:"value"`
}

func (s *Service) logEventLocked(t EventType, value int) {
	s.events = append(s.events, Event{At: time.Now(), Type: t, Value: value})
	if over := len(s.events) - s.bal.EventLogCap; over > 0 {
		s.events = append(s.events[:0], s.events[over:]...)
	}
}
