package clock

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"

	"logical-clock/pkg/structs"
)

// VectorTimestamp — векторная метка: фронтир "процесс → последний
// наблюдавшийся счётчик". Отсутствующий ключ читается как ноль.
// Порядок частичный: метки без причинной связи несравнимы, и это
// нормальный результат (Concurrent), а не ошибка.
type VectorTimestamp[V constraints.Unsigned] map[PID]V

// Get возвращает счётчик процесса, ноль если процесс неизвестен
func (t VectorTimestamp[V]) Get(process PID) V {
	return t[process]
}

// Processes возвращает множество известных метке процессов
func (t VectorTimestamp[V]) Processes() structs.Set[PID] {
	ids := structs.NewSet[PID]()
	for p := range t {
		ids.Add(p)
	}
	return ids
}

// Clone создаёт независимую копию метки
func (t VectorTimestamp[V]) Clone() VectorTimestamp[V] {
	out := make(VectorTimestamp[V], len(t))
	for p, v := range t {
		out[p] = v
	}
	return out
}

func (t VectorTimestamp[V]) EqualTo(other VectorTimestamp[V]) bool {
	if len(t) != len(other) {
		return false
	}
	for p, v := range t {
		if other[p] != v {
			return false
		}
	}
	return true
}

// Compare сравнивает две метки по частичному порядку:
//
//	t < other  ⇔  ключи t ⊆ ключи other, каждый счётчик t не больше
//	              счётчика other и метки не равны
//
// Если ни t < other, ни other < t — метки Concurrent
func (t VectorTimestamp[V]) Compare(other VectorTimestamp[V]) Ordering {
	if t.EqualTo(other) {
		return Equal
	}
	if t.dominatedBy(other) {
		return Before
	}
	if other.dominatedBy(t) {
		return After
	}
	return Concurrent
}

func (t VectorTimestamp[V]) Less(other VectorTimestamp[V]) bool {
	return t.Compare(other) == Before
}

// dominatedBy — нестрогая половина порядка: t ≤ other
func (t VectorTimestamp[V]) dominatedBy(other VectorTimestamp[V]) bool {
	if !t.Processes().IsSubsetOf(other.Processes()) {
		return false
	}
	for p, v := range t {
		if v > other[p] {
			return false
		}
	}
	return true
}

func (t VectorTimestamp[V]) String() string {
	keys := make([]PID, 0, len(t))
	for p := range t {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	parts := make([]string, 0, len(keys))
	for _, p := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", p, t[p]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// VectorExport — снимок векторных часов для передачи или сохранения
type VectorExport[V constraints.Unsigned] struct {
	Process PID                `json:"process"`
	TS      VectorTimestamp[V] `json:"ts"`
}

func (e VectorExport[V]) Snapshot() ([]byte, error) {
	return json.Marshal(e)
}

// VectorClock — векторные часы: фронтир плюс собственный процесс.
// Не потокобезопасны: вызовы одного экземпляра сериализует вызывающая сторона.
type VectorClock[V constraints.Unsigned] struct {
	process  PID
	frontier VectorTimestamp[V]
}

// NewVector создаёт часы со свежим случайным идентификатором процесса
func NewVector[V constraints.Unsigned]() *VectorClock[V] {
	return NewVectorForProcess[V](uuid.New())
}

// NewVectorForProcess создаёт часы для заранее известного процесса
func NewVectorForProcess[V constraints.Unsigned](process PID) *VectorClock[V] {
	return &VectorClock[V]{
		process:  process,
		frontier: make(VectorTimestamp[V]),
	}
}

// Advance продвигает собственный счётчик и возвращает копию фронтира.
// Метка — значение: её мутация не трогает живое состояние часов и наоборот.
// Переполнение собственного счётчика фатально, см. LamportClock.Advance
func (c *VectorClock[V]) Advance() VectorTimestamp[V] {
	if c.frontier[c.process] == maxCounter[V]() {
		panic(fmt.Sprintf("vector clock %s: counter overflow", c.process))
	}
	c.frontier[c.process]++
	return c.frontier.Clone()
}

// Observe сливает чужую метку поэлементным максимумом.
// Собственный счётчик при этом не продвигается: чистый merge, строгое
// превышение наблюдённой метки даёт только следующий Advance.
// Идемпотентна и коммутативна
func (c *VectorClock[V]) Observe(ts VectorTimestamp[V]) {
	for p, v := range ts {
		if v > c.frontier[p] {
			c.frontier[p] = v
		}
	}
}

func (c *VectorClock[V]) Export() VectorExport[V] {
	return VectorExport[V]{Process: c.process, TS: c.Advance()}
}

func (c *VectorClock[V]) Process() PID {
	return c.process
}

// RestoreVector восстанавливает часы из снимка: тот же процесс, пустой
// фронтир, затем Observe метки снимка
func RestoreVector[V constraints.Unsigned](e VectorExport[V]) *VectorClock[V] {
	c := NewVectorForProcess[V](e.Process)
	c.Observe(e.TS)
	return c
}

// RestoreVectorFromSnapshot разбирает сериализованный снимок,
// отвергая снимки без процесса или без метки
func RestoreVectorFromSnapshot[V constraints.Unsigned](snapshot []byte) (*VectorClock[V], error) {
	var data struct {
		Process *PID               `json:"process"`
		TS      VectorTimestamp[V] `json:"ts"`
	}

	if err := json.Unmarshal(snapshot, &data); err != nil {
		return nil, fmt.Errorf("vector snapshot: %w", err)
	}
	if data.Process == nil || *data.Process == uuid.Nil {
		return nil, ErrMissingProcess
	}
	if data.TS == nil {
		return nil, ErrMissingTimestamp
	}

	return RestoreVector(VectorExport[V]{Process: *data.Process, TS: data.TS}), nil
}

var _ Clock[VectorTimestamp[uint64], VectorExport[uint64]] = (*VectorClock[uint64])(nil)
