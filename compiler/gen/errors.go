package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the generation failure cases. Every failure is
// fatal for the whole run; the generator never produces partial output.
var (
	// ErrUnsupportedShape indicates a type reference that does not
	// terminate in a named leaf type.
	ErrUnsupportedShape = errors.New("gqlts: unsupported type shape")
	// ErrUnsupportedNesting indicates a doubly-nested list modifier
	// chain, which has no defined TypeScript rendering.
	ErrUnsupportedNesting = errors.New("gqlts: unsupported list nesting")
	// ErrDanglingInterface indicates an object implementing an
	// interface that is absent from the graph.
	ErrDanglingInterface = errors.New("gqlts: dangling interface reference")
	// ErrUnknownKind indicates a node kind outside the closed kind set.
	ErrUnknownKind = errors.New("gqlts: unknown type kind")
	// ErrNamingCollision indicates two fields whose generated symbol
	// names collide under the uppercase-first naming rule.
	ErrNamingCollision = errors.New("gqlts: generated name collision")
	// ErrInvalidConfig indicates a configuration error.
	ErrInvalidConfig = errors.New("gqlts: invalid configuration")
)

// ShapeError reports a type reference chain that never reached a named
// leaf type.
type ShapeError struct {
	Type  string // owning type name
	Field string // field or argument name, if applicable
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	var b strings.Builder
	b.WriteString("gqlts: type reference does not terminate in a named type")
	writeSite(&b, e.Type, e.Field)
	return b.String()
}

// Is reports whether the target matches the sentinel for ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrUnsupportedShape
}

// NewShapeError creates a new ShapeError.
func NewShapeError(typeName, fieldName string) *ShapeError {
	return &ShapeError{Type: typeName, Field: fieldName}
}

// NestingError reports a list-of-list modifier chain.
type NestingError struct {
	Type  string
	Field string
}

// Error implements the error interface.
func (e *NestingError) Error() string {
	var b strings.Builder
	b.WriteString("gqlts: nested list modifiers have no TypeScript rendering")
	writeSite(&b, e.Type, e.Field)
	return b.String()
}

// Is reports whether the target matches the sentinel for NestingError.
func (e *NestingError) Is(target error) bool {
	return target == ErrUnsupportedNesting
}

// NewNestingError creates a new NestingError.
func NewNestingError(typeName, fieldName string) *NestingError {
	return &NestingError{Type: typeName, Field: fieldName}
}

// DanglingInterfaceError reports an implemented-interface name that is
// not declared in the graph.
type DanglingInterfaceError struct {
	Type      string // the implementing object type
	Interface string // the missing interface name
}

// Error implements the error interface.
func (e *DanglingInterfaceError) Error() string {
	return fmt.Sprintf("gqlts: type %q implements undeclared interface %q", e.Type, e.Interface)
}

// Is reports whether the target matches the sentinel for DanglingInterfaceError.
func (e *DanglingInterfaceError) Is(target error) bool {
	return target == ErrDanglingInterface
}

// NewDanglingInterfaceError creates a new DanglingInterfaceError.
func NewDanglingInterfaceError(typeName, ifaceName string) *DanglingInterfaceError {
	return &DanglingInterfaceError{Type: typeName, Interface: ifaceName}
}

// UnknownKindError reports a node or reference kind outside the closed set.
type UnknownKindError struct {
	Type string
	Kind Kind
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("gqlts: type %q has unknown kind %q", e.Type, string(e.Kind))
}

// Is reports whether the target matches the sentinel for UnknownKindError.
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// NewUnknownKindError creates a new UnknownKindError.
func NewUnknownKindError(typeName string, kind Kind) *UnknownKindError {
	return &UnknownKindError{Type: typeName, Kind: kind}
}

// NamingCollisionError reports two distinct fields of one owner mapping
// to the same generated symbol. The uppercase-first rule folds names
// such as "name" and "Name" together; the run aborts rather than
// silently overwriting one declaration with the other.
type NamingCollisionError struct {
	Type   string // owning type
	Field  string // the field that triggered the collision
	Other  string // the previously seen field
	Symbol string // the shared generated symbol
}

// Error implements the error interface.
func (e *NamingCollisionError) Error() string {
	return fmt.Sprintf("gqlts: fields %q and %q on type %q both generate symbol %q",
		e.Other, e.Field, e.Type, e.Symbol)
}

// Is reports whether the target matches the sentinel for NamingCollisionError.
func (e *NamingCollisionError) Is(target error) bool {
	return target == ErrNamingCollision
}

// NewNamingCollisionError creates a new NamingCollisionError.
func NewNamingCollisionError(typeName, field, other, symbol string) *NamingCollisionError {
	return &NamingCollisionError{Type: typeName, Field: field, Other: other, Symbol: symbol}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("gqlts: invalid %s option (%v): %s", e.Option, e.Value, e.Message)
}

// Is reports whether the target matches the sentinel for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

func writeSite(b *strings.Builder, typeName, fieldName string) {
	if typeName != "" {
		b.WriteString(" on type ")
		b.WriteString(typeName)
	}
	if fieldName != "" {
		b.WriteString(" field ")
		b.WriteString(fieldName)
	}
}
