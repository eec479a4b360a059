package ast

// Visitor is implemented by anything that walks the AST. Each node kind
// has its own Visit method (double dispatch via [Visitable.ApplyVisitor])
// rather than a single method switching on a tagged union, mirroring the
// reference implementation's per-variant visitor methods.
type Visitor interface {
	VisitPattern(*Pattern)
	VisitText(*Text)
	VisitEscape(*Escape)

	VisitLiteralExpression(*LiteralExpression)
	VisitVariableExpression(*VariableExpression)
	VisitAnnotationExpression(*AnnotationExpression)
	VisitVariable(*Variable)
	VisitFunction(*Function)
	VisitIdentifier(*Identifier)
	VisitFnOrMarkupOption(*FnOrMarkupOption)
	VisitAttribute(*Attribute)

	VisitQuoted(*Quoted)
	VisitNumber(*Number)

	VisitMarkup(*Markup)

	VisitComplexMessage(*ComplexMessage)
	VisitInputDeclaration(*InputDeclaration)
	VisitLocalDeclaration(*LocalDeclaration)
	VisitQuotedPattern(*QuotedPattern)
	VisitMatcher(*Matcher)
	VisitVariant(*Variant)
	VisitStar(*Star)
}

// BaseVisitor is an embeddable [Visitor] whose every method simply
// recurses into the node's children. Embed *BaseVisitor and override
// only the methods a particular walk cares about.
//
// A visitor that embeds BaseVisitor and overrides some methods but not
// others relies on the *promoted* methods to keep recursing with the
// outer type's overrides in effect — a nested node reachable only
// through a non-overridden method must still reach the overridden ones
// further down. Plain embedding can't do this on its own: a promoted
// method has no way to learn which concrete type it was promoted into.
// BaseVisitor instead holds an explicit Self reference; construct it
// with [NewBaseVisitor] so every default method recurses through the
// embedding visitor rather than through bare BaseVisitor semantics.
type BaseVisitor struct {
	// Self is the outer Visitor that default methods recurse through.
	// Left nil, a BaseVisitor recurses through itself.
	Self Visitor
}

// NewBaseVisitor returns a *BaseVisitor whose default methods recurse
// through self. Embed the result, not a bare BaseVisitor{}, in any
// visitor that overrides only some of the interface:
//
//	type analyzer struct {
//		*ast.BaseVisitor
//		// ...
//	}
//
//	a := &analyzer{}
//	a.BaseVisitor = ast.NewBaseVisitor(a)
func NewBaseVisitor(self Visitor) *BaseVisitor {
	return &BaseVisitor{Self: self}
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitPattern(n *Pattern) { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitText(n *Text)       { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitEscape(n *Escape)   { n.ApplyVisitorToChildren(b.self()) }

func (b *BaseVisitor) VisitLiteralExpression(n *LiteralExpression) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitVariableExpression(n *VariableExpression) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitAnnotationExpression(n *AnnotationExpression) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitVariable(n *Variable)     { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitFunction(n *Function)     { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitIdentifier(n *Identifier) { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitFnOrMarkupOption(n *FnOrMarkupOption) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitAttribute(n *Attribute) { n.ApplyVisitorToChildren(b.self()) }

func (b *BaseVisitor) VisitQuoted(n *Quoted) { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitNumber(n *Number) { n.ApplyVisitorToChildren(b.self()) }

func (b *BaseVisitor) VisitMarkup(n *Markup) { n.ApplyVisitorToChildren(b.self()) }

func (b *BaseVisitor) VisitComplexMessage(n *ComplexMessage) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitInputDeclaration(n *InputDeclaration) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitLocalDeclaration(n *LocalDeclaration) {
	n.ApplyVisitorToChildren(b.self())
}
func (b *BaseVisitor) VisitQuotedPattern(n *QuotedPattern) { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitMatcher(n *Matcher)             { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitVariant(n *Variant)             { n.ApplyVisitorToChildren(b.self()) }
func (b *BaseVisitor) VisitStar(n *Star)                   { n.ApplyVisitorToChildren(b.self()) }

// anyNodeVisitor implements [Visitor] by invoking a callback on every
// node before recursing into its children, realizing the reference
// implementation's AnyNodeVisitor without a hand-rolled tagged union:
// every AST node already satisfies [AnyNode] (an alias for [Spanned]),
// so the callback just takes that.
type anyNodeVisitor struct {
	callback func(AnyNode)
}

// NewAnyNodeVisitor returns a [Visitor] that invokes callback on every
// node in the tree, in pre-order, before visiting that node's children.
func NewAnyNodeVisitor(callback func(AnyNode)) Visitor {
	return &anyNodeVisitor{callback: callback}
}

func (a *anyNodeVisitor) VisitPattern(n *Pattern) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitText(n *Text) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitEscape(n *Escape) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitLiteralExpression(n *LiteralExpression) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitVariableExpression(n *VariableExpression) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitAnnotationExpression(n *AnnotationExpression) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitVariable(n *Variable) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitFunction(n *Function) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitIdentifier(n *Identifier) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitFnOrMarkupOption(n *FnOrMarkupOption) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitAttribute(n *Attribute) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitQuoted(n *Quoted) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitNumber(n *Number) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitMarkup(n *Markup) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitComplexMessage(n *ComplexMessage) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitInputDeclaration(n *InputDeclaration) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitLocalDeclaration(n *LocalDeclaration) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitQuotedPattern(n *QuotedPattern) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitMatcher(n *Matcher) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitVariant(n *Variant) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
func (a *anyNodeVisitor) VisitStar(n *Star) {
	a.callback(n)
	n.ApplyVisitorToChildren(a)
}
