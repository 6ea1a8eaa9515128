package analyzer

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/config"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/token"
	"github.com/tovalang/tova/internal/typesystem"
)

// RegisterDeclarations walks every type declaration in the program and
// fills the constructor registry, then freezes it. Declaration heads are
// registered before any constructor body is built so recursive and
// mutually recursive types resolve.
func (a *Analyzer) RegisterDeclarations(program *ast.Program) error {
	var decls []*ast.TypeDeclarationStatement
	for _, stmt := range program.Statements {
		if decl, ok := stmt.(*ast.TypeDeclarationStatement); ok {
			decls = append(decls, decl)
		}
	}

	for _, decl := range decls {
		if err := a.registry.DeclareType(decl.Name.Value, len(decl.TypeParameters)); err != nil {
			return diagnostics.WrapError(diagnostics.ErrT006, decl.GetToken(), err)
		}
	}
	for _, decl := range decls {
		if err := a.registerTypeDeclaration(decl); err != nil {
			return err
		}
	}
	a.registry.Freeze()
	return nil
}

func (a *Analyzer) registerTypeDeclaration(decl *ast.TypeDeclarationStatement) error {
	params := make(map[string]typesystem.TVar, len(decl.TypeParameters))
	paramVars := make([]typesystem.TVar, 0, len(decl.TypeParameters))
	for _, p := range decl.TypeParameters {
		if _, dup := params[p.Value]; dup {
			return diagnostics.NewError(diagnostics.ErrT006, p.GetToken(),
				"duplicate type parameter %s in declaration of %s", p.Value, decl.Name.Value)
		}
		tv := a.FreshVar()
		params[p.Value] = tv
		paramVars = append(paramVars, tv)
	}

	for _, ctor := range decl.Constructors {
		fields := make([]typesystem.Type, len(ctor.Parameters))
		for i, p := range ctor.Parameters {
			t, err := a.buildType(p, params, decl.GetToken())
			if err != nil {
				return err
			}
			fields[i] = t
		}
		info := &symbols.ConstructorInfo{
			Name:       ctor.Name.Value,
			TypeName:   decl.Name.Value,
			TypeParams: paramVars,
			Fields:     fields,
		}
		if err := a.registry.Define(info); err != nil {
			return diagnostics.WrapError(diagnostics.ErrT006, decl.GetToken(), err)
		}
	}
	return nil
}

// buildType translates a syntactic type annotation into a semantic type.
// params maps the enclosing declaration's type parameters to their
// placeholder variables.
func (a *Analyzer) buildType(t ast.Type, params map[string]typesystem.TVar, tok token.Token) (typesystem.Type, error) {
	switch t := t.(type) {
	case *ast.NamedType:
		if tv, ok := params[t.Name.Value]; ok {
			if len(t.Args) != 0 {
				return nil, diagnostics.NewError(diagnostics.ErrT007, tok,
					"type parameter %s does not take arguments", t.Name.Value)
			}
			return tv, nil
		}
		if builtin, ok := builtinType(t.Name.Value); ok {
			if len(t.Args) != 0 {
				return nil, diagnostics.NewError(diagnostics.ErrT007, tok,
					"type %s does not take arguments", t.Name.Value)
			}
			return builtin, nil
		}
		if want, ok := a.registry.TypeArity(t.Name.Value); ok {
			if len(t.Args) != want {
				return nil, diagnostics.NewError(diagnostics.ErrT006, tok,
					"type %s expects %d type arguments, got %d", t.Name.Value, want, len(t.Args))
			}
			args := make([]typesystem.Type, len(t.Args))
			for i, arg := range t.Args {
				built, err := a.buildType(arg, params, tok)
				if err != nil {
					return nil, err
				}
				args[i] = built
			}
			return typesystem.TSum{Name: t.Name.Value, Args: args}, nil
		}
		return nil, diagnostics.NewError(diagnostics.ErrT007, tok, "unknown type %s", t.Name.Value)
	case *ast.TupleType:
		elems := make([]typesystem.Type, len(t.Types))
		for i, e := range t.Types {
			built, err := a.buildType(e, params, tok)
			if err != nil {
				return nil, err
			}
			elems[i] = built
		}
		return typesystem.TTuple{Elements: elems}, nil
	case *ast.RecordType:
		fields := make(map[string]typesystem.Type, len(t.Fields))
		for name, f := range t.Fields {
			built, err := a.buildType(f, params, tok)
			if err != nil {
				return nil, err
			}
			fields[name] = built
		}
		return typesystem.TRecord{Fields: fields}, nil
	case *ast.FunctionType:
		param, err := a.buildType(t.Parameter, params, tok)
		if err != nil {
			return nil, err
		}
		ret, err := a.buildType(t.ReturnType, params, tok)
		if err != nil {
			return nil, err
		}
		return typesystem.TFunc{Param: param, Return: ret}, nil
	default:
		return nil, diagnostics.NewError(diagnostics.ErrT007, tok, "unsupported type annotation %T", t)
	}
}

func builtinType(name string) (typesystem.Type, bool) {
	switch name {
	case config.IntTypeName:
		return typesystem.Int, true
	case config.BoolTypeName:
		return typesystem.Bool, true
	case config.CharTypeName:
		return typesystem.Char, true
	case config.RangeTypeName:
		return typesystem.Range, true
	}
	return nil, false
}
