package money

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Amount
		wantErr bool
	}{
		{name: "dot separator", in: "12.34", want: 1234},
		{name: "comma separator", in: "12,34", want: 1234},
		{name: "whole number", in: "300", want: 30000},
		{name: "surrounding whitespace", in: " 7.50 ", want: 750},
		{name: "third decimal rounds half up", in: "12.345", want: 1235},
		{name: "third decimal rounds down", in: "12.344", want: 1234},
		{name: "negative", in: "-4.20", want: -420},
		{name: "single decimal digit", in: "0.5", want: 50},
		{name: "empty", in: "", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "two separators", in: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromFloat(t *testing.T) {
	if got, err := FromFloat(12.34); err != nil || got != 1234 {
		t.Errorf("FromFloat(12.34) = %d, %v; want 1234, nil", got, err)
	}
	nan := 0.0
	if _, err := FromFloat(nan / nan); err == nil {
		t.Error("FromFloat(NaN) should error")
	}
	inf := 1.0
	if _, err := FromFloat(inf / nan * inf); err == nil {
		t.Error("FromFloat on non-finite input should error")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{1234, "12.34"},
		{30000, "300.00"},
		{1, "0.01"},
		{0, "0.00"},
		{-420, "-4.20"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		total Amount
		n     int
		want  []Amount
	}{
		{name: "exact division", total: 30000, n: 3, want: []Amount{10000, 10000, 10000}},
		{name: "remainder goes to first parts", total: 10000, n: 3, want: []Amount{3334, 3333, 3333}},
		{name: "single part", total: 777, n: 1, want: []Amount{777}},
		{name: "more parts than units", total: 2, n: 3, want: []Amount{1, 1, 0}},
		{name: "negative total", total: -10000, n: 3, want: []Amount{-3334, -3333, -3333}},
		{name: "zero total", total: 0, n: 2, want: []Amount{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.total, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Split() returned %d parts, want %d", len(got), len(tt.want))
			}
			var sum Amount
			for i, p := range got {
				if p != tt.want[i] {
					t.Errorf("part[%d] = %d, want %d", i, p, tt.want[i])
				}
				sum += p
			}
			if sum != tt.total {
				t.Errorf("parts sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestSplit_PanicsOnNonPositiveParts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Split(100, 0) should panic")
		}
	}()
	Split(100, 0)
}
