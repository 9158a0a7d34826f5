package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Validationf("name is required"), http.StatusBadRequest},
		{fmt.Errorf("%w: not a member", ErrAuthorization), http.StatusForbidden},
		{fmt.Errorf("%w: ledger not found", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: nothing to export", ErrNoData), http.StatusNotFound},
		{fmt.Errorf("%w: duplicate member", ErrConflict), http.StatusConflict},
		{Wrap(ErrStorage, errors.New("connection refused")), http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := Wrap(ErrStorage, errors.New("boom"))
	if !errors.Is(err, ErrStorage) {
		t.Fatal("wrapped error must match its sentinel")
	}
	if Wrap(ErrStorage, nil) != nil {
		t.Fatal("wrapping nil must stay nil")
	}
}
