package Triage

import (
	"fmt"
	"strconv"
	"strings"
)

// Urgency orders patients; lower is seen first.
type Urgency uint8

const (
	Emergency Urgency = iota + 1
	Urgent
	LowUrgency
)

var urgencyNames = [...]string{Emergency: "EMERGENCY", Urgent: "URGENT", LowUrgency: "LOW URGENCY"}

func (u Urgency) Valid() bool {
	return u >= Emergency && u <= LowUrgency
}

func (u Urgency) String() string {
	if !u.Valid() {
		return "Urgency(" + strconv.Itoa(int(u)) + ")"
	}
	return urgencyNames[u]
}

// InvalidUrgencyError is returned for an urgency outside Emergency..LowUrgency.
type InvalidUrgencyError struct {
	Input string
}

func (e *InvalidUrgencyError) Error() string {
	return "invalid urgency " + strconv.Quote(e.Input) + ": want 1-3 or one of emergency, urgent, low"
}

// ParseUrgency accepts the numeric level or its name, case-insensitively. "low" is short for
// LowUrgency.
func ParseUrgency(s string) (Urgency, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		if u := Urgency(n); u.Valid() {
			return u, nil
		}
		return 0, &InvalidUrgencyError{s}
	}
	switch strings.ToUpper(s) {
	case "EMERGENCY":
		return Emergency, nil
	case "URGENT":
		return Urgent, nil
	case "LOW", "LOW URGENCY", "LOW_URGENCY":
		return LowUrgency, nil
	}
	return 0, &InvalidUrgencyError{s}
}

// Patient is someone waiting at the desk. Arrival is the caller's own timestamp and only shows
// up in String; the desk breaks ties by admission order.
type Patient struct {
	Name    string
	Urgency Urgency
	Arrival int
}

func (p Patient) String() string {
	return fmt.Sprintf("Patient: %s | Urgency: %s | Arrival: %d", p.Name, p.Urgency, p.Arrival)
}
