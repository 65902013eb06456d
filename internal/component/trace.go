package component

import (
	"fmt"
	"strings"
)

// Tracer receives the structure of a component tree.
type Tracer interface {
	Open(name string)
	// Field writes a named value. Traceable values are traced recursively.
	Field(name string, value any)
	// String writes raw content.
	String(s string)
	Close()
}

// Traceable is implemented by components that can describe themselves.
type Traceable interface {
	Trace(t Tracer)
}

type stringTracer struct {
	b strings.Builder
}

func (s *stringTracer) Open(name string) {
	s.b.WriteString("<")
	s.b.WriteString(name)
	s.b.WriteString(" ")
}

func (s *stringTracer) Field(name string, value any) {
	s.b.WriteString(name)
	s.b.WriteString(":")
	if v, ok := value.(Traceable); ok {
		v.Trace(s)
	} else {
		fmt.Fprint(&s.b, value)
	}
	s.b.WriteString(" ")
}

func (s *stringTracer) String(str string) {
	s.b.WriteString(str)
}

func (s *stringTracer) Close() {
	s.b.WriteString(">")
}

// TraceString renders v as "<Name field:value >".
func TraceString(v Traceable) string {
	var t stringTracer
	v.Trace(&t)
	return t.b.String()
}

// traceValue traces v if it is Traceable and writes a placeholder otherwise.
func traceValue(t Tracer, v any) {
	if tv, ok := v.(Traceable); ok {
		tv.Trace(t)
		return
	}
	t.Open(fmt.Sprintf("%T", v))
	t.Close()
}
