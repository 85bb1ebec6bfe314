// Package Triage runs a hospital triage desk on top of an ordered priority queue: the most
// urgent patient is served first, and patients of equal urgency in the order they were admitted.
package Triage

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/g-m-twostay/go-linear/PriorityQueues"
)

type Desk struct {
	queue PriorityQueues.OrderedPriorityQueue[Urgency, Patient]
	log   *zap.Logger
}

// NewDesk returns an empty desk. A nil log discards everything.
func NewDesk(log *zap.Logger) *Desk {
	if log == nil {
		log = zap.NewNop()
	}
	return &Desk{
		queue: PriorityQueues.MakeSorted[Urgency, Patient](),
		log:   log,
	}
}

// Admit puts p in line. It fails with *InvalidUrgencyError if p.Urgency is not a known level.
func (d *Desk) Admit(p Patient) error {
	if !p.Urgency.Valid() {
		return &InvalidUrgencyError{strconv.Itoa(int(p.Urgency))}
	}
	d.queue.Insert(p.Urgency, p)
	d.log.Info("patient admitted",
		zap.String("name", p.Name),
		zap.Stringer("urgency", p.Urgency),
		zap.Int("arrival", p.Arrival),
		zap.Uint("waiting", d.queue.Size()))
	return nil
}

// Next returns who would be served next without serving them.
func (d *Desk) Next() (Patient, error) {
	e, err := d.queue.Peek()
	if err != nil {
		return Patient{}, fmt.Errorf("next patient: %w", err)
	}
	return e.Value, nil
}

// Serve removes and returns the next patient. When nobody is waiting the error wraps the queue's
// *EmptyContainerError.
func (d *Desk) Serve() (Patient, error) {
	e, err := d.queue.Extract()
	if err != nil {
		d.log.Debug("no patients waiting")
		return Patient{}, fmt.Errorf("serve patient: %w", err)
	}
	d.log.Info("serving patient",
		zap.String("name", e.Value.Name),
		zap.Stringer("urgency", e.Priority),
		zap.Uint64("admission", e.Arrival))
	return e.Value, nil
}

func (d *Desk) Waiting() uint {
	return d.queue.Size()
}

// Roster lists the waiting patients in the order they will be served.
func (d *Desk) Roster() []Patient {
	ps := make([]Patient, 0, d.queue.Size())
	d.queue.Range(func(e PriorityQueues.Entry[Urgency, Patient]) bool {
		ps = append(ps, e.Value)
		return true
	})
	return ps
}
