package utils

import "testing"

func TestMin(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Expected 3. Got %v", got)
	}
	if got := Min(7, 3); got != 3 {
		t.Errorf("Expected 3. Got %v", got)
	}
	if got := Min(-1.5, 0.0); got != -1.5 {
		t.Errorf("Expected -1.5. Got %v", got)
	}
}

func TestMax(t *testing.T) {
	if got := Max(3, 7); got != 7 {
		t.Errorf("Expected 7. Got %v", got)
	}
	if got := Max(7, 3); got != 7 {
		t.Errorf("Expected 7. Got %v", got)
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(-4); got != 4 {
		t.Errorf("Expected 4. Got %v", got)
	}
	if got := Abs(4); got != 4 {
		t.Errorf("Expected 4. Got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Expected 10. Got %v", got)
	}
	if got := Clamp(-2, 0, 10); got != 0 {
		t.Errorf("Expected 0. Got %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Expected 5. Got %v", got)
	}
}
