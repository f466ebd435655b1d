package version

import "testing"

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{name: "single component", version: "3", want: true},
		{name: "two components", version: "3.7", want: true},
		{name: "three components", version: "3.7.1", want: true},
		{name: "zeros", version: "0.0.0", want: true},
		{name: "multi digit", version: "10.42.100", want: true},
		{name: "empty string", version: "", want: false},
		{name: "letters", version: "3.7a", want: false},
		{name: "release name", version: "Osprey", want: false},
		{name: "pre-release tag", version: "3.7-rc1", want: false},
		{name: "negative component", version: "-1.0", want: false},
		{name: "consecutive dots", version: "3..7", want: false},
		{name: "trailing dot", version: "3.7.", want: false},
		{name: "leading dot", version: ".3.7", want: false},
		{name: "inner whitespace", version: "3. 7", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWellFormed(tt.version); got != tt.want {
				t.Errorf("IsWellFormed(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "3.7", b: "3.7", want: 0},
		{name: "trailing zero", a: "3.7.0", b: "3.7", want: 0},
		{name: "several trailing zeros", a: "3.7.0.0", b: "3.7", want: 0},
		{name: "all zeros", a: "0.0.0", b: "0.0", want: 0},
		{name: "all zeros single", a: "0", b: "0.0.0", want: 0},
		{name: "component order", a: "3.6", b: "3.7", want: -1},
		{name: "major order", a: "2.9", b: "3.0", want: -1},
		{name: "numeric not lexicographic", a: "1.9", b: "1.10", want: -1},
		{name: "shorter with zero tail on longer", a: "3.7", b: "3.7.1", want: -1},
		{name: "longer greater", a: "3.7.1", b: "3.7", want: 1},
		{name: "zero against positive", a: "0.0", b: "0.1", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// антисимметричность: Compare(a,b) == -Compare(b,a)
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompare_Reflexive(t *testing.T) {
	versions := []string{"0", "0.0.0", "1.0", "3.7", "3.7.1", "10.42"}

	for _, v := range versions {
		if got := Compare(v, v); got != 0 {
			t.Errorf("Compare(%q, %q) = %d, want 0", v, v, got)
		}
	}
}
