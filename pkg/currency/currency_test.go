package currency

import "testing"

func TestCatalogs(t *testing.T) {
	tests := []struct {
		kind     Kind
		wantLen  int
		wantTop  float64
		wantName string
	}{
		{MXN, 14, 1000, "Mexican peso"},
		{JPY, 10, 10000, "Japanese yen"},
		{CNY, 11, 100, "Chinese yuan"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			denoms := tt.kind.Denominations()
			if got := len(denoms); got != tt.wantLen {
				t.Errorf("len(Denominations()) = %d, want %d", got, tt.wantLen)
			}
			if got := denoms[0].Value; got != tt.wantTop {
				t.Errorf("largest denomination = %v, want %v", got, tt.wantTop)
			}
			for i := 1; i < len(denoms); i++ {
				if denoms[i].Value >= denoms[i-1].Value {
					t.Errorf("catalog not strictly descending at %d: %v >= %v",
						i, denoms[i].Value, denoms[i-1].Value)
				}
			}
			for _, d := range denoms {
				if d.Label == "" {
					t.Errorf("denomination %v has empty label", d.Value)
				}
			}
			if got := tt.kind.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestDenominationsCopy(t *testing.T) {
	a := MXN.Denominations()
	a[0].Label = "mutated"
	if got := MXN.Denominations()[0].Label; got != "Billete 1000 pesos" {
		t.Errorf("catalog mutated through returned slice: %q", got)
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		code   string
		want   Kind
		wantOK bool
	}{
		{"MXN", MXN, true},
		{"mxn", MXN, true},
		{" jpy ", JPY, true},
		{"CNY", CNY, true},
		{"USD", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := Find(tt.code)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Find(%q) = %q, %v; want %q, %v", tt.code, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAllIsStable(t *testing.T) {
	want := []Kind{MXN, JPY, CNY}
	if len(All) != len(want) {
		t.Fatalf("len(All) = %d, want %d", len(All), len(want))
	}
	for i, k := range want {
		if All[i] != k {
			t.Errorf("All[%d] = %q, want %q", i, All[i], k)
		}
	}
}
