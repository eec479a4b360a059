// Package scope implements a post-parse semantic analysis pass over an
// [ast.Message]: variable declaration/reference tracking and the
// invariants the grammar alone can't enforce (no duplicate
// declarations, no use before declaration, every `.match` selector
// resolves to an annotated value), grounded on the reference
// implementation's scope.rs.
//
// Like package parser, this pass never fails: findings are reported
// through a [diag.Collector] and analysis always completes, returning a
// best-effort [Scope] even for a message riddled with scope errors.
package scope

import (
	"context"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/diag"
	"github.com/lucacasonato/mf2/internal/trace"
	"github.com/lucacasonato/mf2/pos"
)

// Usage records everything observed about one variable name while
// walking a message.
type Usage struct {
	// Declared reports whether the variable has a `.input` or `.local`
	// declaration anywhere in the message.
	Declared bool
	// Declaration is the span of that declaration's variable, valid only
	// when Declared is true.
	Declaration pos.Span
	// References lists every span where the variable was used, in the
	// order encountered. A variable declared but never used still has an
	// empty References.
	References []pos.Span
	// Annotation is the function name resolved for this variable from its
	// own declaration's annotation (e.g. "number" for
	// `.input {$x :number}`), or, for a `.local $x = {$y}` with no
	// annotation of its own, the one already recorded for $y; empty if
	// neither applies.
	Annotation string
}

// Scope is the result of analyzing a message: every variable name
// touched by it, keyed by name.
type Scope struct {
	Variables map[string]Usage
}

// Analyze walks msg and reports scope-level diagnostics to collector.
// It returns the resulting [Scope] regardless of how many issues were
// found.
func Analyze(ctx context.Context, msg ast.Message, collector *diag.Collector, opts ...Option) Scope {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	op := trace.Begin(ctx, cfg.logger, "mf2.scope.analyze")
	defer func() { op.End(nil) }()

	a := &analyzer{diags: collector, vars: map[string]*varState{}}
	a.BaseVisitor = ast.NewBaseVisitor(a)
	msg.ApplyVisitor(a)

	variables := make(map[string]Usage, len(a.vars))
	for name, st := range a.vars {
		u := Usage{Declared: st.declared, Declaration: st.declSpan, References: st.refs}
		if st.annotation != nil {
			u.Annotation = *st.annotation
		}
		variables[name] = u
	}
	return Scope{Variables: variables}
}

// varState is the analyzer's mutable per-name bookkeeping, mirroring
// scope.rs's VariableUsage: a declaration span (if any), every reference
// span seen so far, and a resolved annotation name (if any).
type varState struct {
	declared   bool
	declSpan   pos.Span
	refs       []pos.Span
	annotation *string
}

// analyzer embeds [ast.BaseVisitor] for the 17 node kinds it doesn't
// care about, and overrides the 4 that declaration/reference tracking
// needs to control traversal order for (visit a `.local`'s expression
// before recording its own declaration, and never treat an
// `.input`/`.local`'s own variable name as a reference). Its
// BaseVisitor is constructed with [ast.NewBaseVisitor] so a node
// reached only through a promoted default method (e.g. a `.match`
// variant's pattern) still recurses back into analyzer's own
// overrides rather than falling back to bare default recursion.
type analyzer struct {
	*ast.BaseVisitor
	diags *diag.Collector
	vars  map[string]*varState
}

func (a *analyzer) state(name string) *varState {
	if name == "" {
		return nil
	}
	st := a.vars[name]
	if st == nil {
		st = &varState{}
		a.vars[name] = st
	}
	return st
}

func (a *analyzer) recordReference(name string, span pos.Span) {
	st := a.state(name)
	if st == nil {
		return
	}
	st.refs = append(st.refs, span)
}

// recordDeclaration registers name as declared at span. A name already
// declared produces a [diag.DuplicateDeclaration]; a name only
// referenced so far (never declared) produces one
// [diag.UsageBeforeDeclaration] per prior reference, since every use of
// a `.local` variable must come after its declaration.
func (a *analyzer) recordDeclaration(name string, span pos.Span) {
	st := a.state(name)
	if st == nil {
		return
	}
	if st.declared {
		a.diags.Collect(diag.DuplicateDeclaration(name, st.declSpan, span))
	} else {
		for _, ref := range st.refs {
			a.diags.Collect(diag.UsageBeforeDeclaration(name, span, ref))
		}
	}
	st.declared = true
	st.declSpan = span
}

func (a *analyzer) recordAnnotation(name, functionName string) {
	st := a.state(name)
	if st == nil {
		return
	}
	st.annotation = &functionName
}

// expressionAnnotation extracts the Annotation field shared by all three
// Expression shapes; they don't share an interface method for it since
// AnnotationExpression's Annotation is required while the other two's is
// optional.
func expressionAnnotation(e ast.Expression) ast.Annotation {
	switch ex := e.(type) {
	case *ast.LiteralExpression:
		return ex.Annotation
	case *ast.VariableExpression:
		return ex.Annotation
	case *ast.AnnotationExpression:
		return ex.Annotation
	default:
		return nil
	}
}

func (a *analyzer) VisitVariable(v *ast.Variable) {
	a.recordReference(v.Name, v.Span())
}

// VisitInputDeclaration visits an `.input {$var ...}` declaration's
// annotation and attributes, but not its own $var as a reference — that
// $var names the declaration.
func (a *analyzer) VisitInputDeclaration(d *ast.InputDeclaration) {
	ve := d.Expression
	if ve.Annotation != nil {
		ve.Annotation.ApplyVisitor(a)
		if fn, ok := ve.Annotation.(*ast.Function); ok {
			a.recordAnnotation(ve.Variable.Name, fn.ID.Name)
		}
	}
	for _, attr := range ve.Attributes {
		attr.ApplyVisitor(a)
	}
	a.recordDeclaration(ve.Variable.Name, ve.Variable.Span())
}

// VisitLocalDeclaration visits a `.local $var = {expr}` declaration's
// expression (recording any variables it references) before recording
// $var's own declaration, so a self-referential `.local $x = {$x}`
// correctly reports a use-before-declaration rather than nothing.
//
// If expr is a bare VariableExpression with no annotation of its own,
// $var inherits the annotation already recorded for the referenced
// variable (e.g. `.input {$y :number} .local $x = {$y}` resolves $x's
// annotation to "number" via $y), so a later selector check on $x
// doesn't misreport SelectorMissingAnnotation.
func (a *analyzer) VisitLocalDeclaration(d *ast.LocalDeclaration) {
	d.Expression.ApplyVisitor(a)
	if ann := expressionAnnotation(d.Expression); ann != nil {
		if fn, ok := ann.(*ast.Function); ok {
			a.recordAnnotation(d.Variable.Name, fn.ID.Name)
		}
	} else if ve, ok := d.Expression.(*ast.VariableExpression); ok {
		if st := a.vars[ve.Variable.Name]; st != nil && st.annotation != nil {
			a.recordAnnotation(d.Variable.Name, *st.annotation)
		}
	}
	a.recordDeclaration(d.Variable.Name, d.Variable.Span())
}

// VisitMatcher records each selector as a reference and checks that it
// resolves to an annotated value, per spec.md's selector-annotation
// invariant. Declarations always precede a message's body in the
// grammar, so every selector's annotation (if any) has already been
// recorded by the time this runs.
func (a *analyzer) VisitMatcher(m *ast.Matcher) {
	for _, sel := range m.Selectors {
		a.recordReference(sel.Name, sel.Span())
		st := a.vars[sel.Name]
		if st == nil || st.annotation == nil {
			a.diags.Collect(diag.SelectorMissingAnnotation(sel.Span(), sel.Name))
		}
	}
	for _, variant := range m.Variants {
		variant.ApplyVisitor(a)
	}
}
