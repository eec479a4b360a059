package ast

import "github.com/lucacasonato/mf2/pos"

// Expression is a placeholder body: a literal, a variable, or an
// annotation, each optionally followed by an annotation and/or
// attributes. Every Expression also satisfies PatternPart, since an
// expression wrapped in `{ }` is itself a pattern part.
type Expression interface {
	PatternPart
	isExpression()
}

// LiteralExpression is a placeholder whose body is a literal value,
// e.g. `{42}` or `{42 :number}`.
type LiteralExpression struct {
	SpanValue  pos.Span
	Literal    Literal
	Annotation Annotation // nil if absent
	Attributes []*Attribute
}

func (e *LiteralExpression) isPatternPart()  {}
func (e *LiteralExpression) isExpression()   {}
func (e *LiteralExpression) Span() pos.Span  { return e.SpanValue }
func (e *LiteralExpression) ApplyVisitor(v Visitor) {
	v.VisitLiteralExpression(e)
}

func (e *LiteralExpression) ApplyVisitorToChildren(v Visitor) {
	e.Literal.ApplyVisitor(v)
	if e.Annotation != nil {
		e.Annotation.ApplyVisitor(v)
	}
	for _, attr := range e.Attributes {
		attr.ApplyVisitor(v)
	}
}

// VariableExpression is a placeholder whose body is a variable
// reference, e.g. `{$count}` or `{$count :number}`.
type VariableExpression struct {
	SpanValue  pos.Span
	Variable   *Variable
	Annotation Annotation // nil if absent
	Attributes []*Attribute
}

func (e *VariableExpression) isPatternPart() {}
func (e *VariableExpression) isExpression()  {}
func (e *VariableExpression) Span() pos.Span { return e.SpanValue }
func (e *VariableExpression) ApplyVisitor(v Visitor) {
	v.VisitVariableExpression(e)
}

func (e *VariableExpression) ApplyVisitorToChildren(v Visitor) {
	e.Variable.ApplyVisitor(v)
	if e.Annotation != nil {
		e.Annotation.ApplyVisitor(v)
	}
	for _, attr := range e.Attributes {
		attr.ApplyVisitor(v)
	}
}

// AnnotationExpression is a placeholder whose body is a bare annotation
// with no literal or variable operand, e.g. `{:now}`.
type AnnotationExpression struct {
	SpanValue  pos.Span
	Annotation Annotation
	Attributes []*Attribute
}

func (e *AnnotationExpression) isPatternPart() {}
func (e *AnnotationExpression) isExpression()  {}
func (e *AnnotationExpression) Span() pos.Span { return e.SpanValue }
func (e *AnnotationExpression) ApplyVisitor(v Visitor) {
	v.VisitAnnotationExpression(e)
}

func (e *AnnotationExpression) ApplyVisitorToChildren(v Visitor) {
	e.Annotation.ApplyVisitor(v)
	for _, attr := range e.Attributes {
		attr.ApplyVisitor(v)
	}
}

// Variable is a `$name` reference.
type Variable struct {
	SpanValue pos.Span
	Name      string
}

func (v *Variable) isLiteralOrVariable() {}
func (va *Variable) Span() pos.Span      { return va.SpanValue }
func (va *Variable) ApplyVisitor(v Visitor) {
	v.VisitVariable(va)
}
func (va *Variable) ApplyVisitorToChildren(v Visitor) {}

// Annotation is a function annotation attached to an expression. The
// only implementation is [Function]; private-use and reserved
// annotation sigils are not represented as distinct nodes (see
// DESIGN.md's Open Question #1).
type Annotation interface {
	Visitable
	isAnnotation()
}

// Function is a `:name option=value ...` annotation.
type Function struct {
	Start   pos.Location
	ID      *Identifier
	Options []*FnOrMarkupOption
}

func (f *Function) isAnnotation() {}

func (f *Function) Span() pos.Span {
	end := f.ID.Span().End
	if n := len(f.Options); n > 0 {
		end = f.Options[n-1].Span().End
	}
	return pos.NewSpan(f.Start, end)
}

func (f *Function) ApplyVisitor(v Visitor) { v.VisitFunction(f) }

func (f *Function) ApplyVisitorToChildren(v Visitor) {
	f.ID.ApplyVisitor(v)
	for _, opt := range f.Options {
		opt.ApplyVisitor(v)
	}
}

// Identifier is a possibly-namespaced name, e.g. `number` or `icu:date`.
type Identifier struct {
	Start     pos.Location
	Namespace *string // nil if absent
	Name      string
}

func (id *Identifier) Span() pos.Span {
	end := id.Start
	if id.Namespace != nil {
		end = end.Add(*id.Namespace).Add(":")
	}
	end = end.Add(id.Name)
	return pos.NewSpan(id.Start, end)
}

func (id *Identifier) ApplyVisitor(v Visitor) { v.VisitIdentifier(id) }

func (id *Identifier) ApplyVisitorToChildren(v Visitor) {}

// FnOrMarkupOption is a single `key=value` option on a function
// annotation or markup tag.
type FnOrMarkupOption struct {
	Key   *Identifier
	Value LiteralOrVariable
}

func (o *FnOrMarkupOption) Span() pos.Span {
	return pos.NewSpan(o.Key.Span().Start, o.Value.Span().End)
}

func (o *FnOrMarkupOption) ApplyVisitor(v Visitor) {
	v.VisitFnOrMarkupOption(o)
}

func (o *FnOrMarkupOption) ApplyVisitorToChildren(v Visitor) {
	o.Key.ApplyVisitor(v)
	o.Value.ApplyVisitor(v)
}

// Attribute is a `@key` or `@key=value` annotation attribute.
type Attribute struct {
	SpanValue pos.Span
	Key       *Identifier
	Value     Literal // nil if absent
}

func (a *Attribute) Span() pos.Span          { return a.SpanValue }
func (a *Attribute) ApplyVisitor(v Visitor) { v.VisitAttribute(a) }

func (a *Attribute) ApplyVisitorToChildren(v Visitor) {
	a.Key.ApplyVisitor(v)
	if a.Value != nil {
		a.Value.ApplyVisitor(v)
	}
}

// LiteralOrVariable is a [Literal] or a [Variable] — the value shape
// accepted by function/markup options.
type LiteralOrVariable interface {
	Visitable
	isLiteralOrVariable()
}
