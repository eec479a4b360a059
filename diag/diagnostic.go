package diag

import (
	"fmt"

	"github.com/lucacasonato/mf2/ast"
	"github.com/lucacasonato/mf2/pos"
)

// Diagnostic is a single non-fatal finding produced while parsing or
// analyzing a message. Construct one with the per-Kind functions below,
// never with a struct literal — that would let an arbitrary, possibly
// stale span/message pair masquerade as a real Kind.
type Diagnostic struct {
	kind    Kind
	span    pos.Span
	message string
}

func (d Diagnostic) Kind() Kind      { return d.kind }
func (d Diagnostic) Span() pos.Span  { return d.span }
func (d Diagnostic) Message() string { return d.message }

// Fatal always reports false: every Kind in this package is recoverable,
// because the parser never discards source bytes in a way a later
// reprint can't losslessly reproduce. Kept as a method, rather than
// omitted, so callers that branch on severity compile against a stable
// shape if a future Kind ever needs to be fatal.
func (d Diagnostic) Fatal() bool { return false }

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (at %s)", d.message, d.span)
}

func newDiagnostic(k Kind, span pos.Span, message string) Diagnostic {
	return Diagnostic{kind: k, span: span, message: message}
}

// --- Number ---

func NumberMissingIntegralPart(n *ast.Number) Diagnostic {
	return newDiagnostic(KindNumberMissingIntegralPart, n.Span(),
		fmt.Sprintf("Number is missing an integral part (at %s)", n.Span()))
}

func NumberLeadingZeroIntegralPart(n *ast.Number) Diagnostic {
	return newDiagnostic(KindNumberLeadingZeroIntegral, n.Span(),
		fmt.Sprintf("Number has a leading zero in the integral part (at %s)", n.Span()))
}

func NumberMissingFractionalPart(n *ast.Number) Diagnostic {
	return newDiagnostic(KindNumberMissingFractionalPart, n.Span(),
		fmt.Sprintf("Number is missing a fractional part (at %s)", n.Span()))
}

func NumberMissingExponentPart(n *ast.Number) Diagnostic {
	return newDiagnostic(KindNumberMissingExponentPart, n.Span(),
		fmt.Sprintf("Number is missing an exponent part (at %s)", n.Span()))
}

// --- Options (function annotations and markup) ---

func OptionMissingValue(span pos.Span) Diagnostic {
	return newDiagnostic(KindOptionMissingValue, span,
		fmt.Sprintf("Option is missing a value, which is required (at %s)", span))
}

// --- Markup ---

func MarkupMissingClosingBrace(span pos.Span) Diagnostic {
	return newDiagnostic(KindMarkupMissingClosingBrace, span,
		fmt.Sprintf("Markup is missing a closing brace (at %s)", span))
}

func MarkupCloseInvalidSelfClose(selfCloseLoc pos.Location) Diagnostic {
	span := pos.NewSpan(selfCloseLoc, selfCloseLoc.Add("/"))
	return newDiagnostic(KindMarkupCloseInvalidSelfClose, span,
		fmt.Sprintf("Markup has an invalid self-closing tag on a markup close (at %s)", selfCloseLoc))
}

func MarkupInvalidSpaceBetweenSelfCloseAndBrace(space pos.Span) Diagnostic {
	return newDiagnostic(KindMarkupInvalidSpaceBetweenSelfCloseAndBrace, space,
		fmt.Sprintf("Markup has invalid spaces between self-closing tag and closing brace (at %s)", space))
}

func MarkupOptionAfterAttribute(previousAttribute *ast.Attribute, option *ast.FnOrMarkupOption) Diagnostic {
	return newDiagnostic(KindMarkupOptionAfterAttribute, option.Span(),
		fmt.Sprintf("Markup has option after attribute (at %s)", option.Span()))
}

// --- Quoted literals and placeholders ---

func UnterminatedQuoted(span pos.Span) Diagnostic {
	return newDiagnostic(KindUnterminatedQuoted, span,
		fmt.Sprintf("Quoted string is missing a closing quote (at %s)", span))
}

func PlaceholderMissingClosingBrace(span pos.Span) Diagnostic {
	return newDiagnostic(KindPlaceholderMissingClosingBrace, span,
		fmt.Sprintf("Placeholder is missing a closing brace (at %s)", span))
}

func PlaceholderMissingBody(span pos.Span) Diagnostic {
	return newDiagnostic(KindPlaceholderMissingBody, span,
		fmt.Sprintf("Placeholder is missing a variable reference, literal, or annotation (at %s)", span))
}

// --- Identifiers ---

func MissingIdentifierName(id *ast.Identifier) Diagnostic {
	return newDiagnostic(KindMissingIdentifierName, id.Span(),
		fmt.Sprintf("Identifier is missing a name (at %s)", id.Span()))
}

func MissingIdentifierNamespace(id *ast.Identifier) Diagnostic {
	return newDiagnostic(KindMissingIdentifierNamespace, id.Span(),
		fmt.Sprintf("Identifier is missing a namespace (at %s)", id.Span()))
}

// --- Escapes and raw characters ---

func EscapeInvalidCharacter(charLoc pos.Location, char rune) Diagnostic {
	span := pos.NewSpan(charLoc, charLoc.AddRune(char))
	return newDiagnostic(KindEscapeInvalidCharacter, span,
		fmt.Sprintf("Escape sequence can only escape '}', '{', '|', and '\\' (found %q at %s)", char, charLoc))
}

func EscapeMissingCharacter(slashLoc pos.Location) Diagnostic {
	span := pos.NewSpan(slashLoc, slashLoc.Add("\\"))
	return newDiagnostic(KindEscapeMissingCharacter, span,
		fmt.Sprintf("Escape sequence is missing a character to escape (at %s)", slashLoc))
}

func InvalidNullCharacter(charLoc pos.Location) Diagnostic {
	span := pos.NewSpan(charLoc, charLoc.Add("\x00"))
	return newDiagnostic(KindInvalidNullCharacter, span,
		fmt.Sprintf("Invalid NULL (0x00) character (at %s)", charLoc))
}

func InvalidClosingBrace(braceLoc pos.Location) Diagnostic {
	span := pos.NewSpan(braceLoc, braceLoc.Add("}"))
	return newDiagnostic(KindInvalidClosingBrace, span,
		fmt.Sprintf("'}' in simple messages must be escaped (at %s)", braceLoc))
}

// --- Annotations and attributes ---

func AnnotationMissingSpaceBefore(span pos.Span) Diagnostic {
	return newDiagnostic(KindAnnotationMissingSpaceBefore, span,
		fmt.Sprintf("Annotations must be preceeded by a leading space (at %s)", span))
}

func AttributeMissingSpaceBefore(span pos.Span) Diagnostic {
	return newDiagnostic(KindAttributeMissingSpaceBefore, span,
		fmt.Sprintf("Attributes must be preceeded by a leading space (at %s)", span))
}

func AttributeInvalidSpacesAfterAt(span pos.Span) Diagnostic {
	return newDiagnostic(KindAttributeInvalidSpacesAfterAt, span,
		fmt.Sprintf("'@' must be immediately followed by an identifier, without spaces (at %s)", span))
}

func AttributeMissingValue(span pos.Span) Diagnostic {
	return newDiagnostic(KindAttributeMissingValue, span,
		fmt.Sprintf("Attribute is missing a value (at %s)", span))
}

// --- Complex messages (supplemented; see kind.go) ---

func InputDeclarationMissingVariable(span pos.Span) Diagnostic {
	return newDiagnostic(KindInputDeclarationMissingVariable, span,
		fmt.Sprintf("'.input' declaration is missing a variable expression (at %s)", span))
}

func LocalDeclarationMissingVariable(span pos.Span) Diagnostic {
	return newDiagnostic(KindLocalDeclarationMissingVariable, span,
		fmt.Sprintf("'.local' declaration is missing a variable (at %s)", span))
}

func QuotedPatternMissingOpeningBraces(span pos.Span) Diagnostic {
	return newDiagnostic(KindQuotedPatternMissingOpeningBraces, span,
		fmt.Sprintf("Quoted pattern is missing its opening '{{' (at %s)", span))
}

func QuotedPatternMissingClosingBraces(span pos.Span) Diagnostic {
	return newDiagnostic(KindQuotedPatternMissingClosingBraces, span,
		fmt.Sprintf("Quoted pattern is missing its closing '}}' (at %s)", span))
}

func MatcherMissingSelector(span pos.Span) Diagnostic {
	return newDiagnostic(KindMatcherMissingSelector, span,
		fmt.Sprintf("'.match' statement has no selectors (at %s)", span))
}

// --- Scope (grounded on scope.rs) ---

func DuplicateDeclaration(name string, firstSpan, secondSpan pos.Span) Diagnostic {
	return newDiagnostic(KindDuplicateDeclaration, secondSpan,
		fmt.Sprintf("Variable $%s is already declared (first declared at %s, redeclared at %s)", name, firstSpan, secondSpan))
}

func UsageBeforeDeclaration(name string, declarationSpan, usageSpan pos.Span) Diagnostic {
	return newDiagnostic(KindUsageBeforeDeclaration, usageSpan,
		fmt.Sprintf("Variable $%s is used at %s before its declaration at %s", name, usageSpan, declarationSpan))
}

func SelectorMissingAnnotation(span pos.Span, name string) Diagnostic {
	return newDiagnostic(KindSelectorMissingAnnotation, span,
		fmt.Sprintf("Selector $%s has no annotation; a .match selector must resolve to an annotated value", name))
}
