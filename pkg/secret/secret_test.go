package secret

import "testing"

func TestZeroizeClearsBuffer(t *testing.T) {
	s := New([]byte("correct horse battery staple"))
	s.Zeroize()
	if s.Len() != 0 {
		t.Fatalf("expected zeroized buffer to report len 0, got %d", s.Len())
	}
}

func TestZeroizeNilReceiver(t *testing.T) {
	var s *Buffer
	s.Zeroize()
	if s.Len() != 0 {
		t.Fatalf("nil receiver Len should be 0")
	}
}

func TestConstantTimeEqual(t *testing.T) {
	cases := []struct {
		a, b []byte
		want bool
	}{
		{[]byte("abc"), []byte("abc"), true},
		{[]byte("abc"), []byte("abd"), false},
		{[]byte("abc"), []byte("ab"), false},
		{[]byte{}, []byte{}, true},
	}
	for _, c := range cases {
		if got := ConstantTimeEqual(c.a, c.b); got != c.want {
			t.Fatalf("ConstantTimeEqual(%q,%q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestZeroClearsSliceInPlace(t *testing.T) {
	b := []byte{1, 2, 3}
	Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, v)
		}
	}
}
