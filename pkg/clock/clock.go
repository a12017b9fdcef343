package clock

import (
	"github.com/google/uuid"
)

// Результаты сравнения временных меток
type Ordering int

const (
	Before     Ordering = iota // метка строго раньше другой
	After                      // метка строго позже другой
	Equal                      // метки совпадают
	Concurrent                 // причинно не связаны (только векторное время)
)

func (o Ordering) String() string {
	switch o {
	case Before:
		return "before"
	case After:
		return "after"
	case Equal:
		return "equal"
	case Concurrent:
		return "concurrent"
	}
	return "unknown"
}

// PID — идентификатор процесса-владельца часов.
// Сравнивается только как tie-break или как ключ фронтира, никогда как время.
type PID = uuid.UUID

type Clock[TS any, E any] interface {
	// Advance local time, return a fresh timestamp strictly greater
	// than anything this instance returned or observed before
	Advance() TS

	// Merge a remote timestamp into local state.
	// Does not advance local time by itself: only the next Advance
	// is guaranteed to exceed the observed timestamp
	Observe(ts TS)

	// Snapshot (process id + fresh timestamp) for transfer or storage.
	// Advances the clock, so repeated exports are monotonic too
	Export() E

	// Owning process id, fixed at construction
	Process() PID
}
