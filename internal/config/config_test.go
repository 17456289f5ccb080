package config

import "testing"

func TestOptInt32(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int32
	}{
		{name: "unset uses default", raw: "", want: 4},
		{name: "valid value", raw: "25", want: 25},
		{name: "not a number", raw: "many", want: 4},
		{name: "negative rejected", raw: "-1", want: 4},
		{name: "int32 overflow rejected", raw: "4294967297", want: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DB_POOL_MAX_CONNS", tc.raw)
			if got := optInt32("DB_POOL_MAX_CONNS", 4); got != tc.want {
				t.Fatalf("optInt32(%q) = %d, want %d", tc.raw, got, tc.want)
			}
		})
	}
}

func TestOptDuration(t *testing.T) {
	t.Setenv("DB_CONNECT_TIMEOUT", "250ms")
	if got := optDuration("DB_CONNECT_TIMEOUT", 0); got.Milliseconds() != 250 {
		t.Fatalf("optDuration = %v, want 250ms", got)
	}

	t.Setenv("DB_CONNECT_TIMEOUT", "-3s")
	if got := optDuration("DB_CONNECT_TIMEOUT", 0); got != 0 {
		t.Fatalf("negative duration accepted: %v", got)
	}
}
