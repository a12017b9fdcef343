package clock

import "logical-clock/pkg/structs"

const (
	LamportKind = "lamport"
	VectorKind  = "vector"
)

// Kinds — имена известных реализаций часов.
// Обобщённые типы не положить в одну таблицу конструкторов,
// поэтому фабрика сводится к проверке имени на стороне вызывающего.
var Kinds = structs.NewSet(LamportKind, VectorKind)

// KnownKind проверяет имя реализации (для валидации конфигов)
func KnownKind(kind string) bool {
	return Kinds.Contains(kind)
}
