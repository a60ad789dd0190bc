package interrupt

import "reflect"

var (
	criticalSectionType = reflect.TypeOf((*CriticalSection)(nil)).Elem()
	sectionType         = reflect.TypeOf(section{})
)

func mustTransfer[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if !transferable(t, map[reflect.Type]bool{}) {
		panic("interrupt: " + t.String() + " holds a CriticalSection and cannot be shared between contexts")
	}
}

// transferable reports whether values of t can be handed between execution
// contexts. Function values and interfaces other than CriticalSection cannot
// be inspected and are accepted.
func transferable(t reflect.Type, seen map[reflect.Type]bool) bool {
	if t == criticalSectionType || t == sectionType {
		return false
	}
	if seen[t] {
		return true
	}
	seen[t] = true

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan:
		return transferable(t.Elem(), seen)
	case reflect.Map:
		return transferable(t.Key(), seen) && transferable(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !transferable(t.Field(i).Type, seen) {
				return false
			}
		}
	}
	return true
}
