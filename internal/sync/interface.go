package sync

import "context"

// Emitter queues change events for the background mirror push. Emit
// must never block the caller for long: when the queue is full the
// event is dropped and logged.
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// Remote is the mirror store the worker pushes rows to.
type Remote interface {
	Upsert(ctx context.Context, table string, record interface{}) error
	Delete(ctx context.Context, table string, id int64) error
}
