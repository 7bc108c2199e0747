package rules

import (
	"fmt"
	"math"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/suderio/eskalero/internal/score"
)

// Registry manages the CEL environment used for manual score entry.
// Expressions may call the scoring rules directly, e.g.
// combo('P', false, 'A', 'K') or count('K', 3) + count('A', 1).
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the scoring functions.
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Function("face",
			cel.Overload("face_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					f, err := score.ParseFace(arg.Value().(string))
					if err != nil {
						return types.NewErr("%v", err)
					}
					return types.Int(f)
				}),
			),
		),
		cel.Function("count",
			cel.Overload("count_string_int",
				[]*cel.Type{cel.StringType, cel.IntType},
				cel.IntType,
				cel.BinaryBinding(func(row, n ref.Val) ref.Val {
					cat, err := score.ParseCategory(row.Value().(string))
					if err != nil {
						return types.NewErr("%v", err)
					}
					v, err := score.CountScore(cat, int(n.Value().(int64)))
					if err != nil {
						return types.NewErr("%v", err)
					}
					return types.Int(v)
				}),
			),
		),
		cel.Function("straight",
			cel.Overload("straight_bool_bool",
				[]*cel.Type{cel.BoolType, cel.BoolType},
				cel.IntType,
				cel.BinaryBinding(func(large, served ref.Val) ref.Val {
					return types.Int(score.StraightScore(bool(large.(types.Bool)), bool(served.(types.Bool))))
				}),
			),
		),
		cel.Function("combo",
			cel.Overload("combo_string_bool_string",
				[]*cel.Type{cel.StringType, cel.BoolType, cel.StringType},
				cel.IntType,
				cel.FunctionBinding(func(args ...ref.Val) ref.Val {
					return combo(args[0], args[1], args[2], nil)
				}),
			),
			cel.Overload("combo_string_bool_string_string",
				[]*cel.Type{cel.StringType, cel.BoolType, cel.StringType, cel.StringType},
				cel.IntType,
				cel.FunctionBinding(func(args ...ref.Val) ref.Val {
					return combo(args[0], args[1], args[2], args[3])
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

func combo(row, served, primary, secondary ref.Val) ref.Val {
	cat, err := score.ParseCategory(row.Value().(string))
	if err != nil {
		return types.NewErr("%v", err)
	}
	var faces score.Faces
	if faces.Primary, err = score.ParseFace(primary.Value().(string)); err != nil {
		return types.NewErr("%v", err)
	}
	if secondary != nil {
		if faces.Secondary, err = score.ParseFace(secondary.Value().(string)); err != nil {
			return types.NewErr("%v", err)
		}
	}
	v, err := score.Combination(cat, bool(served.(types.Bool)), faces)
	if err != nil {
		return types.NewErr("%v", err)
	}
	return types.Int(v)
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// EvalScore evaluates a closed expression and requires a non-negative
// integer result.
func (r *Registry) EvalScore(expression string) (int, error) {
	out, err := r.Eval(expression, map[string]any{})
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q: %w", expression, err)
	}
	n, ok := out.(int64)
	if !ok {
		return 0, fmt.Errorf("expression %q must yield an integer, got %T", expression, out)
	}
	if n < 0 {
		return 0, fmt.Errorf("expression %q yields a negative score (%d)", expression, n)
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("expression %q yields a score too large for this platform (%d)", expression, n)
	}
	return int(n), nil
}
