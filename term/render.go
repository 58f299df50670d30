package term

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hupe1980/dialogmesh/core"
)

// Render produces the canonical textual form of a term value built from
// registered vocabulary, such that Parse(reg, Render(reg, v)) == v. Values of
// unregistered types cannot be rendered.
func Render(reg *Registry, v any) (string, error) {
	var sb strings.Builder
	if err := render(reg, v, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func render(reg *Registry, v any, sb *strings.Builder) error {
	if v == nil {
		sb.WriteString("None")
		return nil
	}
	switch val := v.(type) {
	case *core.Symbol:
		sb.WriteString(val.Name())
		return nil
	case core.Predicate:
		name, ok := reg.nameOf(val.Type())
		if !ok {
			return fmt.Errorf("term: no registered name for predicate type %v", val.Type())
		}
		sb.WriteString(name)
		return nil
	case core.Truth:
		sb.WriteString(strconv.FormatBool(val.Value))
		return nil
	case bool:
		sb.WriteString(strconv.FormatBool(val))
		return nil
	case string:
		sb.WriteByte('\'')
		sb.WriteString(strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(val))
		sb.WriteByte('\'')
		return nil
	case float64:
		sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		return nil
	case int:
		sb.WriteString(strconv.Itoa(val))
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		sb.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := render(reg, rv.Index(i).Interface(), sb); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
		return nil
	case reflect.Struct:
		return renderStruct(reg, rv, sb)
	default:
		return fmt.Errorf("term: cannot render value %v (%T)", v, v)
	}
}

// renderStruct writes a constructor call with the struct's fields as
// positional arguments. Trailing absent optional fields (nil interfaces and
// nil pointers) are omitted so Why{} renders as "Why()".
func renderStruct(reg *Registry, rv reflect.Value, sb *strings.Builder) error {
	name, ok := reg.nameOf(rv.Type())
	if !ok {
		return fmt.Errorf("term: no registered name for type %v", rv.Type())
	}
	args := make([]reflect.Value, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		// Embedded marker fields (core.DomainProposition and friends) carry
		// no data and take no constructor argument.
		if rv.Type().Field(i).Anonymous {
			continue
		}
		args = append(args, rv.Field(i))
	}
	for len(args) > 0 && isAbsent(args[len(args)-1]) {
		args = args[:len(args)-1]
	}
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		value := arg.Interface()
		// Optional numeric fields are carried as pointers; render the value.
		if f, ok := value.(*float64); ok {
			if f == nil {
				sb.WriteString("None")
				continue
			}
			value = *f
		}
		if err := render(reg, value, sb); err != nil {
			return err
		}
	}
	sb.WriteByte(')')
	return nil
}

func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		return v.IsNil()
	case reflect.Pointer:
		if v.IsNil() {
			return true
		}
		// Registered symbols (hedges etc.) are present pointers.
		return false
	default:
		return false
	}
}
