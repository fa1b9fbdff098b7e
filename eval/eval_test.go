/*
File    : pixelscript/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pixelscript/objects"
	"github.com/akashmaji946/pixelscript/pixel"
)

func mustRun(t *testing.T, e *Evaluator, src string) objects.Value {
	t.Helper()
	v, err := e.Run(src)
	require.NoError(t, err)
	return v
}

func newGridEvaluator(w, h int) (*Evaluator, *pixel.Grid) {
	g := pixel.NewGrid(w, h)
	return NewEvaluator(g), g
}

func TestProgSingleStatementMatchesBareExpression(t *testing.T) {
	e1, _ := newGridEvaluator(1, 1)
	e2, _ := newGridEvaluator(1, 1)

	v1 := mustRun(t, e1, "{ 1 + 1 }")
	v2 := mustRun(t, e2, "1 + 1")
	require.Equal(t, v2, v1)
}

func TestIfBranches(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	require.Equal(t, &objects.Integer{Value: 1}, mustRun(t, e, "if true 1 else 2"))

	e, _ = newGridEvaluator(1, 1)
	require.Equal(t, &objects.Integer{Value: 2}, mustRun(t, e, "if false 1 else 2"))

	e, _ = newGridEvaluator(1, 1)
	require.Equal(t, objects.False, mustRun(t, e, "if false 1"))
}

func TestIdentityLambda(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	require.Equal(t, &objects.Integer{Value: 7}, mustRun(t, e, "(lambda(x) x)(7)"))
}

func TestPixelRoundTrip(t *testing.T) {
	e, grid := newGridEvaluator(2, 2)
	mustRun(t, e, "pixels[0, 0] = rgb(10, 20, 30)")
	r, g, b, err := grid.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(10), r)
	require.Equal(t, byte(20), g)
	require.Equal(t, byte(30), b)

	mustRun(t, e, "loadColor(0, 0)")
	root := e.RootScope()
	rv, _ := root.Lookup("r")
	gv, _ := root.Lookup("g")
	bv, _ := root.Lookup("b")
	require.Equal(t, &objects.Integer{Value: 10}, rv)
	require.Equal(t, &objects.Integer{Value: 20}, gv)
	require.Equal(t, &objects.Integer{Value: 30}, bv)
}

func TestForLoopScopeShadowsAndDoesNotEscape(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	v := mustRun(t, e, "x = 1; for (x = 2; x < 3; x = x + 1) { x }; x")
	require.Equal(t, &objects.Integer{Value: 1}, v)
}

func TestBlockIsNotANewScope(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	v := mustRun(t, e, "x = 1; { x = 2 }; x")
	require.Equal(t, &objects.Integer{Value: 2}, v)
}

func TestOperatorPrecedence(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	require.Equal(t, &objects.Integer{Value: 7}, mustRun(t, e, "1 + 2 * 3"))

	e, _ = newGridEvaluator(1, 1)
	require.Equal(t, objects.True, mustRun(t, e, "1 == 1 && 2 == 2"))
}

func TestScenarioSinglePixelWrite(t *testing.T) {
	e, grid := newGridEvaluator(2, 2)
	mustRun(t, e, "pixels[0,0] = rgb(10, 20, 30)")

	r, g, b, err := grid.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, [3]byte{10, 20, 30}, [3]byte{r, g, b})

	r, g, b, err = grid.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, [3]byte{0, 0, 0}, [3]byte{r, g, b})
}

func TestScenarioGrayscaleViaLoadColor(t *testing.T) {
	e, grid := newGridEvaluator(2, 2)
	require.NoError(t, grid.Set(0, 0, 9, 6, 3))
	require.NoError(t, grid.Set(1, 0, 255, 0, 0))
	require.NoError(t, grid.Set(0, 1, 0, 255, 0))
	require.NoError(t, grid.Set(1, 1, 0, 0, 255))

	src := `for (y = 0; y < height; y = y + 1) {
		for (x = 0; x < width; x = x + 1) {
			loadColor(x, y);
			g = (r + g + b) / 3;
			pixels[x, y] = rgb(g, g, g)
		}
	}`
	mustRun(t, e, src)

	r, g, b, err := grid.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(6), r)
	require.Equal(t, r, g)
	require.Equal(t, r, b)
}

func TestScenarioFibonacciViaRecursiveClosure(t *testing.T) {
	e, grid := newGridEvaluator(1, 1)
	src := "f = lambda(n) if n < 2 n else f(n - 1) + f(n - 2); pixels[0,0] = rgb(f(7), 0, 0)"
	mustRun(t, e, src)
	r, _, _, err := grid.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(13), r)
}

func TestScenarioDivisionByZero(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	_, err := e.Run("1 / 0")
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, DivisionByZero, evalErr.Kind)
	require.Equal(t, 1, evalErr.Pos.Line)
}

func TestScenarioIndexErrorOutOfBounds(t *testing.T) {
	e, _ := newGridEvaluator(2, 2)
	_, err := e.Run("pixels[width, 0] = rgb(0, 0, 0)")
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, IndexError, evalErr.Kind)
}

func TestMakeRefAndLoadRefSeeOldValues(t *testing.T) {
	e, grid := newGridEvaluator(1, 1)
	require.NoError(t, grid.Set(0, 0, 1, 2, 3))

	mustRun(t, e, "makeRef()")
	mustRun(t, e, "pixels[0,0] = rgb(9, 9, 9)")
	mustRun(t, e, "loadRef(0, 0)")

	root := e.RootScope()
	rv, _ := root.Lookup("r")
	require.Equal(t, &objects.Integer{Value: 1}, rv)

	newR, _, _, err := grid.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, byte(9), newR)
}

func TestLoadRefWithoutMakeRefErrors(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	_, err := e.Run("loadRef(0, 0)")
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, TypeError, evalErr.Kind)
}

func TestSqrtIsFloat(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	v := mustRun(t, e, "sqrt(9)")
	require.Equal(t, &objects.Float{Value: 3}, v)
}

func TestUnboundNameIsNameError(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	_, err := e.Run("doesNotExist")
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, NameError, evalErr.Kind)
}

func TestAssignTargetMustBeVarOrPixelWrite(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	_, err := e.Run("1 = 2")
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, AssignTargetError, evalErr.Kind)
}

func TestUserLambdaArityMismatchPadsWithFalseRatherThanErroring(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	v := mustRun(t, e, "(lambda(a, b) b)(1)")
	require.Equal(t, objects.False, v)

	e, _ = newGridEvaluator(1, 1)
	v = mustRun(t, e, "(lambda(a) a)(1, 2, 3)")
	require.Equal(t, &objects.Integer{Value: 1}, v)
}

func TestBuiltinArityMismatchIsArityError(t *testing.T) {
	e, _ := newGridEvaluator(1, 1)
	_, err := e.Run("sqrt(1, 2)")
	require.Error(t, err)
	evalErr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, ArityError, evalErr.Kind)
}
