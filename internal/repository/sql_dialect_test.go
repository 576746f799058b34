package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	cases := map[string]string{
		"postgres":   "ILIKE",
		"PostgreSQL": "ILIKE",
		"sqlite":     "LIKE",
		"":           "LIKE",
	}
	for dialect, want := range cases {
		if got := likeOperatorByDialect(dialect); got != want {
			t.Fatalf("dialect %q want %s got %s", dialect, want, got)
		}
	}
}

func TestEscapeLike(t *testing.T) {
	if got := escapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("unexpected escaped value: %s", got)
	}
}
