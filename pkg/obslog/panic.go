package obslog

import (
	"fmt"

	"github.com/fluxorio/actorcell/pkg/actor"
)

// panicObserver adapts a Logger to actor.PanicObserver, so a handler panic
// is logged at Error level with the recovered value and a stack trace
// before the actor terminates.
type panicObserver struct {
	log Logger
}

func (p panicObserver) ObservePanic(actorType, actorID string, recovered any, stack []byte) {
	p.log.Error(
		fmt.Errorf("actor handler panicked: %v", recovered),
		"actor terminated after handler panic",
		"actor_type", actorType,
		"actor_id", actorID,
		"stack", string(stack),
	)
}

// RegisterPanicObserver installs log as the process-wide destination for
// actor handler panics. Call once at startup alongside actor.SetDispatchObserver.
func RegisterPanicObserver(log Logger) {
	actor.SetPanicObserver(panicObserver{log: log})
}
