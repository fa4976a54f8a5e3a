//go:build !mobile

package utils

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		name    string
		emulate string
		want    bool
	}{
		{"桌面端默认", "", false},
		{"模拟移动端", "1", true},
		{"其他取值", "yes", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APARTMENT_MOBILE_EMULATE", tt.emulate)
			if got := IsMobile(); got != tt.want {
				t.Errorf("IsMobile() = %v, want %v", got, tt.want)
			}
		})
	}
}
