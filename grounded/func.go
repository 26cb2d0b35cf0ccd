package grounded

import (
	"fmt"
	"reflect"
	"time"

	"github.com/hupe1980/atomspace/atom"
	"github.com/hupe1980/atomspace/internal/util"
	"github.com/hupe1980/atomspace/logging"
	"github.com/hupe1980/atomspace/space"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Func wraps a plain Go function as a Grounded operator (spec §D.1),
// grounded on the teacher's tool.FunctionTool: a name/description pair, a
// schema derived by reflection, and a validated call path.
//
// fn's signature must be func(T1, T2, ...) R or func(T1, T2, ...) (R,
// error); paramNames must supply one exported Go identifier per parameter,
// used both for the generated schema and for error messages.
type Func struct {
	name        string
	description string
	paramNames  []string
	schema      map[string]any
	fn          reflect.Value
	argTypes    []reflect.Type
	logger      logging.Logger
}

// FuncOption configures a Func, following the functional-options idiom
// used throughout the kernel's supporting packages.
type FuncOption func(*Func)

// WithFuncLogger sets the logger Execute reports completion/failure
// through. Defaults to logging.NoOpLogger. Reports are made only when the
// logger is a *logging.KernelLogger (via LogGroundedCall); other Logger
// implementations receive nothing from Execute.
func WithFuncLogger(l logging.Logger) FuncOption {
	return func(f *Func) { f.logger = l }
}

// NewFunc constructs a Func. It panics if fn is not a function, returns no
// values, or paramNames doesn't match fn's arity — these are programmer
// errors caught at registration time, not at Execute time.
func NewFunc(name, description string, paramNames []string, fn any, opts ...FuncOption) *Func {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		panic("grounded: NewFunc requires a function value")
	}
	if t.NumIn() != len(paramNames) {
		panic(fmt.Sprintf("grounded: %s expects %d parameter names, got %d", name, t.NumIn(), len(paramNames)))
	}
	if t.NumOut() == 0 || t.NumOut() > 2 {
		panic("grounded: NewFunc requires a function returning a value, or a value and an error")
	}

	argTypes := make([]reflect.Type, t.NumIn())
	fields := make([]reflect.StructField, t.NumIn())
	for i := 0; i < t.NumIn(); i++ {
		argTypes[i] = t.In(i)
		fields[i] = reflect.StructField{
			Name: paramNames[i],
			Type: t.In(i),
		}
	}

	var schema map[string]any
	if len(fields) > 0 {
		schema = util.CreateSchema(reflect.New(reflect.StructOf(fields)).Elem().Interface())
	} else {
		schema = map[string]any{"type": "object", "properties": map[string]any{}}
	}

	f := &Func{
		name:        name,
		description: description,
		paramNames:  paramNames,
		schema:      schema,
		fn:          v,
		argTypes:    argTypes,
		logger:      logging.NoOpLogger{},
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Name is the operator's identifier, for diagnostics.
func (f *Func) Name() string { return f.name }

// Description is a short natural-language summary, for diagnostics.
func (f *Func) Description() string { return f.description }

// Parameters returns the reflection-derived schema describing the expected
// arguments.
func (f *Func) Parameters() map[string]any { return f.schema }

// Execute implements atom.Grounded. args' content is the whole Expression
// this Func headed — content[0] is this Func's own GroundedAtom, and the
// remaining entries are the operand atoms in declared order.
func (f *Func) Execute(args, result atom.ExecSpace) error {
	start := time.Now()
	err := f.execute(args, result)
	if kl, ok := f.logger.(*logging.KernelLogger); ok {
		kl.WithComponent("grounded").LogGroundedCall(f.name, time.Since(start), err == nil, err)
	}
	return err
}

func (f *Func) execute(args, result atom.ExecSpace) error {
	content := args.Content()
	if len(content) == 0 {
		return space.NewInvalidArgument(f.name, "missing operator atom in argument space")
	}
	operands := content[1:]
	if len(operands) != len(f.argTypes) {
		return space.NewInvalidArgument(f.name, fmt.Sprintf("expected %d arguments, got %d", len(f.argTypes), len(operands)))
	}

	in := make([]reflect.Value, len(operands))
	params := make(map[string]any, len(operands))
	for i, operand := range operands {
		rv, ok := AsValue(operand)
		if !ok {
			return space.NewInvalidArgument(f.name, fmt.Sprintf("argument %d (%s) must be a grounded value", i, f.paramNames[i]))
		}
		if !rv.Type().AssignableTo(f.argTypes[i]) {
			return space.NewInvalidArgument(f.name, fmt.Sprintf("argument %d (%s) has type %s, want %s", i, f.paramNames[i], rv.Type(), f.argTypes[i]))
		}
		in[i] = rv
		params[f.paramNames[i]] = rv.Interface()
	}

	if err := util.ValidateParameters(params, f.schema); err != nil {
		return space.NewInvalidArgument(f.name, err.Error())
	}

	out := f.fn.Call(in)
	if len(out) == 2 {
		if errVal := out[1]; !errVal.IsNil() {
			return errVal.Interface().(error)
		}
	}

	result.Add(atom.G(&Value[any]{Val: out[0].Interface()}))
	return nil
}

// Equals reports whether other is the same Func by name. Func instances
// are operators, not data, so identity by name is the practical notion of
// equality (matching the original's treatment of built-in operators as
// singletons).
func (f *Func) Equals(other atom.Atom) bool {
	ga, ok := other.(atom.GroundedAtom)
	if !ok {
		return false
	}
	of, ok := ga.Payload.(*Func)
	return ok && of.name == f.name
}

// Render renders as the operator's bare name.
func (f *Func) Render() string { return f.name }
