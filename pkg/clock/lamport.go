package clock

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

// LamportTimestamp — скалярная метка времени Лампорта: счётчик + процесс.
// Порядок тотальный: сначала по счётчику, при равных счётчиках — по байтам
// идентификатора процесса. Tie-break детерминированный, но не причинный:
// две причинно не связанные метки всё равно получают порядок. Это известное
// ограничение скалярного времени, а не дефект.
type LamportTimestamp[V constraints.Unsigned] struct {
	Counter V   `json:"counter"`
	Process PID `json:"process"`
}

// Сравнение двух меток: Before, After или Equal, никогда Concurrent
func (t LamportTimestamp[V]) Compare(other LamportTimestamp[V]) Ordering {
	if t.Counter < other.Counter {
		return Before
	}
	if t.Counter > other.Counter {
		return After
	}
	switch bytes.Compare(t.Process[:], other.Process[:]) {
	case -1:
		return Before
	case 1:
		return After
	}
	return Equal
}

func (t LamportTimestamp[V]) Less(other LamportTimestamp[V]) bool {
	return t.Compare(other) == Before
}

func (t LamportTimestamp[V]) String() string {
	return fmt.Sprintf("(%d, id=%s)", t.Counter, t.Process)
}

// LamportExport — снимок скалярных часов для передачи или сохранения
type LamportExport[V constraints.Unsigned] struct {
	Process PID                 `json:"process"`
	TS      LamportTimestamp[V] `json:"ts"`
}

func (e LamportExport[V]) Snapshot() ([]byte, error) {
	return json.Marshal(e)
}

// LamportClock — скалярные часы: один счётчик на процесс.
// Не потокобезопасны: вызовы одного экземпляра сериализует вызывающая сторона.
type LamportClock[V constraints.Unsigned] struct {
	process PID
	counter V
}

// NewLamport создаёт часы со свежим случайным идентификатором процесса
func NewLamport[V constraints.Unsigned]() *LamportClock[V] {
	return NewLamportForProcess[V](uuid.New())
}

// NewLamportForProcess создаёт часы для заранее известного процесса
func NewLamportForProcess[V constraints.Unsigned](process PID) *LamportClock[V] {
	return &LamportClock[V]{process: process}
}

// Advance продвигает счётчик и возвращает свежую метку.
// Переполнение счётчика фатально: молчаливый wrap сломал бы монотонность
// всех будущих сравнений, поэтому паника вместо переноса.
func (c *LamportClock[V]) Advance() LamportTimestamp[V] {
	if c.counter == maxCounter[V]() {
		panic(fmt.Sprintf("lamport clock %s: counter overflow", c.process))
	}
	c.counter++
	return LamportTimestamp[V]{Counter: c.counter, Process: c.process}
}

// Observe сливает чужую метку: counter = max(counter, ts.Counter).
// Идемпотентна и коммутативна, собственный идентификатор не меняет
func (c *LamportClock[V]) Observe(ts LamportTimestamp[V]) {
	if ts.Counter > c.counter {
		c.counter = ts.Counter
	}
}

func (c *LamportClock[V]) Export() LamportExport[V] {
	return LamportExport[V]{Process: c.process, TS: c.Advance()}
}

func (c *LamportClock[V]) Process() PID {
	return c.process
}

// RestoreLamport восстанавливает часы из снимка: тот же процесс, счётчик с
// нуля, затем Observe метки снимка — первый Advance гарантированно её превысит
func RestoreLamport[V constraints.Unsigned](e LamportExport[V]) *LamportClock[V] {
	c := NewLamportForProcess[V](e.Process)
	c.Observe(e.TS)
	return c
}

// RestoreLamportFromSnapshot разбирает сериализованный снимок.
// Снимок без процесса или без метки отвергается: без них невозможно
// гарантировать, что восстановленные часы продолжат то же время
func RestoreLamportFromSnapshot[V constraints.Unsigned](snapshot []byte) (*LamportClock[V], error) {
	var data struct {
		Process *PID                 `json:"process"`
		TS      *LamportTimestamp[V] `json:"ts"`
	}

	if err := json.Unmarshal(snapshot, &data); err != nil {
		return nil, fmt.Errorf("lamport snapshot: %w", err)
	}
	if data.Process == nil || *data.Process == uuid.Nil {
		return nil, ErrMissingProcess
	}
	if data.TS == nil {
		return nil, ErrMissingTimestamp
	}

	return RestoreLamport(LamportExport[V]{Process: *data.Process, TS: *data.TS}), nil
}

func maxCounter[V constraints.Unsigned]() V {
	var zero V
	return ^zero
}

var _ Clock[LamportTimestamp[uint64], LamportExport[uint64]] = (*LamportClock[uint64])(nil)
