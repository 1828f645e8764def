package service

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// ─────────────────────────────────────────────────────────────
// Autosaver — periodic snapshots of the open design
// ─────────────────────────────────────────────────────────────

// DefaultAutosaveSpec snapshots the open design every two minutes.
const DefaultAutosaveSpec = "@every 2m"

// Autosaver snapshots the open design on a cron schedule. Ticks while no
// design is open are skipped silently.
type Autosaver struct {
	design  *DesignService
	emitter EventEmitter
	spec    string
	sched   *cron.Cron
}

// NewAutosaver creates an Autosaver. An empty spec uses
// DefaultAutosaveSpec.
func NewAutosaver(design *DesignService, emitter EventEmitter, spec string) *Autosaver {
	if spec == "" {
		spec = DefaultAutosaveSpec
	}
	return &Autosaver{design: design, emitter: emitter, spec: spec}
}

// Start begins the autosave schedule.
func (a *Autosaver) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(a.spec, func() {
		a.tick(ctx)
	})
	if err != nil {
		return err
	}
	c.Start()
	a.sched = c
	log.Printf("autosave: scheduled %q", a.spec)
	return nil
}

// Stop halts the schedule. A tick already in flight completes.
func (a *Autosaver) Stop() {
	if a.sched != nil {
		a.sched.Stop()
		a.sched = nil
	}
}

func (a *Autosaver) tick(ctx context.Context) {
	id, open := a.design.OpenDesignID()
	if !open {
		return
	}
	snap, err := a.design.Snapshot(ctx, "autosave")
	if err != nil {
		log.Printf("autosave: snapshot failed for design %s: %v", id, err)
		return
	}
	a.emitter.Emit(ctx, "design:autosaved", snap.ID)
}
