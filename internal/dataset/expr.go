package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/ytget/countries/internal/model"
)

// ErrInvalidExpression is returned when a filter expression does not compile
// or does not yield a boolean
var ErrInvalidExpression = errors.New("invalid filter expression")

// Expression variables
const (
	VarName         = "name"
	VarOfficialName = "official_name"
	VarCapital      = "capital"
	VarRegion       = "region"
	VarContinent    = "continent"
	VarPopulation   = "population"
	VarArea         = "area"
)

// Expr is a compiled boolean expression over one record, e.g.
// `continent == "Europe" && population > 10000000`.
type Expr struct {
	source  string
	program cel.Program
}

func newExprEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable(VarName, cel.StringType),
		cel.Variable(VarOfficialName, cel.StringType),
		cel.Variable(VarCapital, cel.StringType),
		cel.Variable(VarRegion, cel.StringType),
		cel.Variable(VarContinent, cel.StringType),
		cel.Variable(VarPopulation, cel.IntType),
		cel.Variable(VarArea, cel.DoubleType),
	)
}

// CompileExpr parses and type-checks source
func CompileExpr(source string) (*Expr, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidExpression)
	}

	env, err := newExprEnv()
	if err != nil {
		return nil, fmt.Errorf("create CEL environment: %w", err)
	}

	ast, issues := env.Compile(source)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: result is %s, want bool", ErrInvalidExpression, ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return &Expr{source: source, program: prg}, nil
}

// String returns the expression source
func (e *Expr) String() string {
	return e.source
}

// Match evaluates the expression against rec
func (e *Expr) Match(rec model.Country) (bool, error) {
	pop, err := rec.PopulationValue()
	if err != nil {
		return false, err
	}
	area, err := rec.AreaValue()
	if err != nil {
		return false, err
	}

	out, _, err := e.program.Eval(map[string]any{
		VarName:         rec.NameCommon,
		VarOfficialName: rec.NameOfficial,
		VarCapital:      rec.Capital,
		VarRegion:       rec.Region,
		VarContinent:    rec.Continent,
		VarPopulation:   pop,
		VarArea:         area,
	})
	if err != nil {
		return false, fmt.Errorf("evaluate %q for %q: %w", e.source, rec.NameCommon, err)
	}

	ok, isBool := out.Value().(bool)
	if !isBool {
		return false, fmt.Errorf("%w: result is %T, want bool", ErrInvalidExpression, out.Value())
	}
	return ok, nil
}

// FilterExpr returns the records matching e in current order
func (s *Store) FilterExpr(e *Expr) ([]model.Country, error) {
	out := make([]model.Country, 0)
	for _, rec := range s.records {
		ok, err := e.Match(rec)
		if err != nil {
			return nil, fmt.Errorf("filter: %w", err)
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}
