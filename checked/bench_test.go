// SPDX-License-Identifier: MIT

package checked_test

import (
	"testing"

	"github.com/katalvlaran/strassen/checked"
)

var sinkInt64 int64

// BenchmarkAdd measures the non-overflowing fast path of Add.
func BenchmarkAdd(b *testing.B) {
	var acc int64
	for i := 0; i < b.N; i++ {
		v, err := checked.Add(acc, int64(i&1023))
		if err != nil {
			b.Fatalf("Add: %v", err)
		}
		acc = v & 0xffff
	}
	sinkInt64 = acc
}

// BenchmarkMul measures the round-trip check of Mul.
func BenchmarkMul(b *testing.B) {
	var acc int64
	for i := 0; i < b.N; i++ {
		v, err := checked.Mul(int64(i&1023)+1, 977)
		if err != nil {
			b.Fatalf("Mul: %v", err)
		}
		acc += v & 0xff
	}
	sinkInt64 = acc
}
