// SPDX-License-Identifier: MIT

package checked_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/checked"
)

// ExampleMul shows the round-trip overflow check at int32 width.
func ExampleMul() {
	p, err := checked.Mul[int32](46340, 46340)
	fmt.Println(p, err)

	_, err = checked.Mul[int32](46341, 46341)
	fmt.Println(errors.Is(err, checked.ErrOverflow))
	fmt.Println(err)
	// Output:
	// 2147395600 <nil>
	// true
	// checked: mul overflow for a = 46341 b = 46341
}

// ExampleSub shows that subtracting the minimum value is exact when representable.
func ExampleSub() {
	d, err := checked.Sub[int8](-1, -128)
	fmt.Println(d, err)

	_, err = checked.Sub[int8](0, -128)
	fmt.Println(err)
	// Output:
	// 127 <nil>
	// checked: sub overflow for a = 0 b = -128
}
