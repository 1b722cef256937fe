package eslint

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    Severity
		wantErr bool
	}{
		{name: "numeric off", raw: float64(0), want: SeverityOff},
		{name: "numeric warn", raw: float64(1), want: SeverityWarn},
		{name: "numeric error", raw: float64(2), want: SeverityError},
		{name: "numeric out of range", raw: float64(5), wantErr: true},
		{name: "string off", raw: "off", want: SeverityOff},
		{name: "string off uppercase", raw: "OFF", want: SeverityOff},
		{name: "string warn", raw: "warn", want: SeverityWarn},
		{name: "string error", raw: "error", want: SeverityError},
		{name: "unknown string is enabled", raw: "always", want: SeverityWarn},
		{name: "array numeric first", raw: []any{float64(2), "never"}, want: SeverityError},
		{name: "array numeric off", raw: []any{float64(0), map[string]any{}}, want: SeverityOff},
		{name: "array string first", raw: []any{"warn", "single"}, want: SeverityWarn},
		{name: "empty array", raw: []any{}, wantErr: true},
		{name: "array with object first", raw: []any{map[string]any{}}, wantErr: true},
		{name: "bool", raw: true, wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSeverity(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeverity error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSeverityEnabled(t *testing.T) {
	if SeverityOff.Enabled() {
		t.Fatal("off must not be enabled")
	}
	if !SeverityWarn.Enabled() {
		t.Fatal("warn must be enabled")
	}
	if !SeverityError.Enabled() {
		t.Fatal("error must be enabled")
	}
}
