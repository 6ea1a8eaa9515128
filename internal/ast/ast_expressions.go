package ast

import (
	"sort"

	"github.com/tovalang/tova/internal/token"
)

// IntegerLiteral: 42
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }

// BooleanLiteral: true, false
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()       {}
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Lexeme }
func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }

// CharLiteral: 'a'
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()       {}
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CharLiteral) GetToken() token.Token { return cl.Token }

// FunctionLiteral represents a single-parameter lambda: \x -> body.
// Multi-parameter lambdas are curried by the parser before this core
// ever sees them.
type FunctionLiteral struct {
	Token     token.Token // the '\' token
	Parameter *Identifier
	Body      Expression
}

func (fl *FunctionLiteral) expressionNode()       {}
func (fl *FunctionLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FunctionLiteral) GetToken() token.Token { return fl.Token }

// CallExpression represents a unary application: f arg.
// Multi-argument calls arrive as nested applications.
type CallExpression struct {
	Token    token.Token
	Function Expression
	Argument Expression
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// ConstructorExpression represents a saturated sum-constructor
// application: Some 5, Cons x xs, None. The parser resolves constructor
// syntax, so arity is checked against the registry, not curried.
type ConstructorExpression struct {
	Token     token.Token // the constructor's token
	Name      *Identifier
	Arguments []Expression
}

func (ce *ConstructorExpression) expressionNode()       {}
func (ce *ConstructorExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *ConstructorExpression) GetToken() token.Token { return ce.Token }

// LetExpression: let name = value in body, or let rec name = value in body.
type LetExpression struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Value Expression
	Body  Expression
	IsRec bool
}

func (le *LetExpression) expressionNode()       {}
func (le *LetExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LetExpression) GetToken() token.Token { return le.Token }

// IfExpression: if cond then consequence else alternative.
// The else branch is mandatory; both branches must unify.
type IfExpression struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token { return ie.Token }

// TupleLiteral: (a, b, c)
type TupleLiteral struct {
	Token    token.Token // the '(' token
	Elements []Expression
}

func (tl *TupleLiteral) expressionNode()       {}
func (tl *TupleLiteral) TokenLiteral() string  { return tl.Token.Lexeme }
func (tl *TupleLiteral) GetToken() token.Token { return tl.Token }

// RecordLiteral: { x: 1, y: true }
type RecordLiteral struct {
	Token  token.Token // the '{' token
	Fields map[string]Expression
}

func (rl *RecordLiteral) expressionNode()       {}
func (rl *RecordLiteral) TokenLiteral() string  { return rl.Token.Lexeme }
func (rl *RecordLiteral) GetToken() token.Token { return rl.Token }

// SortedFieldNames returns the record's field names in lexicographic
// order, giving visitors a deterministic traversal.
func (rl *RecordLiteral) SortedFieldNames() []string {
	names := make([]string, 0, len(rl.Fields))
	for name := range rl.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RangeExpression: a..b. Both endpoints are Int; descending ranges are
// legal, so no ordering constraint exists between them.
type RangeExpression struct {
	Token token.Token // the '..' token
	Start Expression
	End   Expression
}

func (re *RangeExpression) expressionNode()       {}
func (re *RangeExpression) TokenLiteral() string  { return re.Token.Lexeme }
func (re *RangeExpression) GetToken() token.Token { return re.Token }
