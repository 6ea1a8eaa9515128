package ast

import (
	"github.com/tovalang/tova/internal/token"
)

// --- Type System Nodes ---

// Type represents a type node in the AST.
// E.g., Int, Option a, (Int, Bool), { x: Int }, Int -> Bool
type Type interface {
	Node
	typeNode()
}

// NamedType represents a named type reference like 'Int', 'Option a',
// or a lowercase type parameter like 'a'.
type NamedType struct {
	Token token.Token
	Name  *Identifier
	Args  []Type
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// TupleType represents a tuple type, e.g. (Int, Bool)
type TupleType struct {
	Token token.Token // the '(' token
	Types []Type
}

func (tt *TupleType) typeNode()             {}
func (tt *TupleType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token { return tt.Token }

// RecordType represents a record type, e.g. { x: Int, y: Bool }
type RecordType struct {
	Token  token.Token // the '{' token
	Fields map[string]Type
}

func (rt *RecordType) typeNode()             {}
func (rt *RecordType) TokenLiteral() string  { return rt.Token.Lexeme }
func (rt *RecordType) GetToken() token.Token { return rt.Token }

// FunctionType represents a function type, e.g. Int -> Bool
type FunctionType struct {
	Token      token.Token // the '->' token
	Parameter  Type
	ReturnType Type
}

func (ft *FunctionType) typeNode()             {}
func (ft *FunctionType) TokenLiteral() string  { return ft.Token.Lexeme }
func (ft *FunctionType) GetToken() token.Token { return ft.Token }

// DataConstructor represents a single case in a sum type declaration.
// E.g., 'Some a' or 'None'.
type DataConstructor struct {
	Token      token.Token // the constructor's token
	Name       *Identifier
	Parameters []Type
}

func (dc *DataConstructor) TokenLiteral() string  { return dc.Token.Lexeme }
func (dc *DataConstructor) GetToken() token.Token { return dc.Token }

// TypeDeclarationStatement represents a sum type definition.
// E.g., 'type Option a = Some a | None'
type TypeDeclarationStatement struct {
	Token          token.Token // the 'type' token
	Name           *Identifier
	TypeParameters []*Identifier
	Constructors   []*DataConstructor
}

func (tds *TypeDeclarationStatement) statementNode()        {}
func (tds *TypeDeclarationStatement) TokenLiteral() string  { return tds.Token.Lexeme }
func (tds *TypeDeclarationStatement) GetToken() token.Token { return tds.Token }

// --- Pattern Matching ---

type Pattern interface {
	Node
	patternNode()
}

// MatchArm represents a single case in a match expression.
type MatchArm struct {
	Pattern    Pattern
	Expression Expression
}

// MatchExpression represents a match expression.
// match <Expression> { <MatchArms> }
type MatchExpression struct {
	Token      token.Token // the 'match' token
	Expression Expression
	Arms       []*MatchArm
}

func (me *MatchExpression) expressionNode()       {}
func (me *MatchExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MatchExpression) GetToken() token.Token { return me.Token }

// WildcardPattern: _
type WildcardPattern struct {
	Token token.Token
}

func (p *WildcardPattern) patternNode()          {}
func (p *WildcardPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *WildcardPattern) GetToken() token.Token { return p.Token }

// IdentifierPattern: x (irrefutable, binds the scrutinee)
type IdentifierPattern struct {
	Token token.Token
	Value string
}

func (p *IdentifierPattern) patternNode()          {}
func (p *IdentifierPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *IdentifierPattern) GetToken() token.Token { return p.Token }

// LiteralPattern: 1, true. Value holds an int64 or a bool.
type LiteralPattern struct {
	Token token.Token
	Value interface{}
}

func (p *LiteralPattern) patternNode()          {}
func (p *LiteralPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *LiteralPattern) GetToken() token.Token { return p.Token }

// ConstructorPattern: Some x, None
type ConstructorPattern struct {
	Token    token.Token // constructor name token
	Name     *Identifier
	Elements []Pattern
}

func (p *ConstructorPattern) patternNode()          {}
func (p *ConstructorPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *ConstructorPattern) GetToken() token.Token { return p.Token }

// TuplePattern: (x, y, _)
type TuplePattern struct {
	Token    token.Token // the '(' token
	Elements []Pattern
}

func (p *TuplePattern) patternNode()          {}
func (p *TuplePattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *TuplePattern) GetToken() token.Token { return p.Token }

// RecordPattern: { x: p1, y: p2 }
type RecordPattern struct {
	Token  token.Token // the '{' token
	Fields map[string]Pattern
}

func (p *RecordPattern) patternNode()          {}
func (p *RecordPattern) TokenLiteral() string  { return p.Token.Lexeme }
func (p *RecordPattern) GetToken() token.Token { return p.Token }
