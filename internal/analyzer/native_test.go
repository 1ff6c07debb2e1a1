package analyzer

import (
	"testing"

	"github.com/sindarin-lang/sindarin/internal/diagnostics"
)

// TestNativeLambdaCaptureRejected is spec.md §8 scenario 6: a lambda
// assigned to a variable declared with a native-callback function type may
// not reference a name from its enclosing scope.
func TestNativeLambdaCaptureRejected(t *testing.T) {
	src := `
type Callback = native fn(d: *void): void

fn setup(): void => {
    var n: int = 0
    var h: Callback = fn(d: *void): void => n = n + 1
}
`
	_, sink, _ := checkSource(t, src)
	requireCode(t, sink, diagnostics.CodeNativeLambdaCapture)
}

// TestNativeLambdaOwnParamNotCapture confirms the negative case: a native
// lambda referencing only its own parameter is not flagged as a capture.
func TestNativeLambdaOwnParamNotCapture(t *testing.T) {
	src := `
type Callback = native fn(d: *void): void

fn setup(): void => {
    var h: Callback = fn(d: *void): void => {}
}
`
	_, sink, _ := checkSource(t, src)
	requireNoCheckErrors(t, sink)
}

// TestOrdinaryLambdaCaptureAllowed confirms captures are only restricted
// for native lambdas (§4.7.8); an ordinary (non-native) lambda may freely
// close over an enclosing variable.
func TestOrdinaryLambdaCaptureAllowed(t *testing.T) {
	src := `
type Adder = fn(x: int): int

fn setup(): void => {
    var n: int = 10
    var h: Adder = fn(x: int): int => x + n
}
`
	_, sink, _ := checkSource(t, src)
	requireNoCheckErrors(t, sink)
}
