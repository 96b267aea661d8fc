package unit

import "testing"

func TestLabels(t *testing.T) {
	tests := []struct {
		name    string
		got     func() (string, error)
		want    string
		wantErr bool
	}{
		{name: "time", got: func() (string, error) { return TimeLabel("min") }, want: "min"},
		{name: "area", got: func() (string, error) { return AreaLabel("mm") }, want: "mm²"},
		{name: "velocity", got: func() (string, error) { return VelocityLabel("m", "s") }, want: "m/s"},
		{name: "discharge", got: func() (string, error) { return DischargeLabel("m", "s") }, want: "m³/s"},
		{name: "bad time", got: func() (string, error) { return TimeLabel("fortnight") }, wantErr: true},
		{name: "bad length", got: func() (string, error) { return AreaLabel("in") }, wantErr: true},
		{name: "velocity bad time", got: func() (string, error) { return VelocityLabel("m", "y") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
