package simplex_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/unconstrain/simplex"
)

// ExampleLink demonstrates the calibration of the stick-breaking map: the
// uniform point on the K=3 simplex sits at the origin of unconstrained
// space (up to the epsilon-guard bias), and the round-trip restores it.
func ExampleLink() {
	x := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	opts := simplex.DefaultOptions()

	y, _ := simplex.Link(x, opts)
	back, _ := simplex.Invlink(y, opts)

	maxAbs := 0.0
	for _, v := range y {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	sum := 0.0
	for _, v := range back {
		sum += v
	}

	fmt.Printf("uniform maps near origin: %t\n", maxAbs < 1e-12)
	fmt.Printf("round-trip sum: %.4f\n", sum)
	// Output:
	// uniform maps near origin: true
	// round-trip sum: 1.0000
}

// ExampleInvlink shows that arbitrary real input always lands on the
// simplex: entries are (essentially) nonnegative and sum to one.
func ExampleInvlink() {
	x, _ := simplex.Invlink([]float64{2, -1, 0}, simplex.DefaultOptions())

	sum := 0.0
	for _, v := range x {
		sum += v
	}
	fmt.Printf("x=[%.4f %.4f %.4f] sum=%.4f\n", x[0], x[1], x[2], sum)
	// Output:
	// x=[0.7870 0.0573 0.1557] sum=1.0000
}

// ExampleLogJacobian shows the change-of-variables term for a single break:
// for K=2 the correction is log(x₁(1−x₁)), here log(0.25) at the midpoint.
func ExampleLogJacobian() {
	j, _ := simplex.LogJacobian([]float64{0.5, 0.5})

	fmt.Printf("jacobian=%.4f\n", j)
	// Output:
	// jacobian=-1.3863
}
