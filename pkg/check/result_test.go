package check

import "testing"

func TestStatus(t *testing.T) {
	if StatusOK != "OK" {
		t.Errorf("StatusOK = %q, want %q", StatusOK, "OK")
	}
	if StatusFail != "FAIL" {
		t.Errorf("StatusFail = %q, want %q", StatusFail, "FAIL")
	}
}

func TestResultOK(t *testing.T) {
	result := Result{Status: StatusOK}
	if !result.OK() {
		t.Error("OK() = false, want true for StatusOK")
	}

	result.Status = StatusFail
	if result.OK() {
		t.Error("OK() = true, want false for StatusFail")
	}

	if (Result{}).OK() {
		t.Error("OK() = true, want false for zero Result")
	}
}

func TestResultDetail(t *testing.T) {
	tests := []struct {
		details []string
		want    string
	}{
		{nil, ""},
		{[]string{"status 200"}, "status 200"},
		{[]string{"status 200", "module: connections"}, "status 200, module: connections"},
	}

	for _, tt := range tests {
		r := Result{Details: tt.details}
		if got := r.Detail(); got != tt.want {
			t.Errorf("Detail() with %v = %q, want %q", tt.details, got, tt.want)
		}
	}
}
