package event

var typeToName = [EventTypeCount]string{
	EventItemEaten:     "EventItemEaten",
	EventItemSpawned:   "EventItemSpawned",
	EventItemDespawned: "EventItemDespawned",
	EventGameOver:      "EventGameOver",
	EventEffectStarted: "EventEffectStarted",
	EventEffectExpired: "EventEffectExpired",
	EventTeleported:    "EventTeleported",
	EventDebuffPulse:   "EventDebuffPulse",
	EventResumePulse:   "EventResumePulse",
	EventPaused:        "EventPaused",
	EventResumeStarted: "EventResumeStarted",
	EventResumed:       "EventResumed",
	EventSessionStart:  "EventSessionStart",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for i, n := range typeToName {
		m[n] = EventType(i)
	}
	return m
}()

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et >= 0 && et < EventTypeCount {
		return typeToName[et]
	}
	return "EventUnknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

func (t EventType) String() string {
	return GetEventName(t)
}
