package engine

import (
	"reflect"

	"github.com/rs/zerolog"
)

func componentName(c Component) string {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

func loadEntityIntoArray(slot *entitySlot, index uint32, arr *zerolog.Array) *zerolog.Array {
	names := zerolog.Arr()
	for _, c := range slot.components {
		names = names.Str(componentName(c))
	}
	dict := zerolog.Dict().
		Uint32("index", index).
		Uint32("generation", slot.generation).
		Str("name", slot.name).
		Array("components", names)
	return arr.Dict(dict)
}

// LogWorld writes one event describing every live entity and its components
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	event := logger.WithLevel(level)
	arr := zerolog.Arr()
	total := 0
	for _, e := range w.live {
		slot, ok := w.slot(e)
		if !ok || !slot.alive {
			continue
		}
		arr = loadEntityIntoArray(slot, e.Index, arr)
		total++
	}
	event.Int("total_entities", total).Array("entities", arr).Msg("world")
}
