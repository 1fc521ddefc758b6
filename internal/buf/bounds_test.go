package buf

import (
	"math"
	"testing"
)

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(1<<20, 8); !ok || p != 8<<20 {
		t.Fatalf("MulOverflowSafe(1<<20,8)=%d,%v", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("zero operand should not overflow")
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow")
	}
}

func TestScaledLen(t *testing.T) {
	if n, err := ScaledLen(16, 4); err != nil || n != 64 {
		t.Fatalf("ScaledLen(16,4)=%d,%v want 64,nil", n, err)
	}
	if _, err := ScaledLen(-1, 4); err == nil {
		t.Fatalf("ScaledLen should reject negative count")
	}
	if _, err := ScaledLen(1, -4); err == nil {
		t.Fatalf("ScaledLen should reject negative element size")
	}
	if _, err := ScaledLen(math.MaxInt/4+1, 8); err == nil {
		t.Fatalf("ScaledLen should report overflow")
	}
}
