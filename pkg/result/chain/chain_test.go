package chain

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/result/pkg/result"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()

	out := Start(result.Success(5)).Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	out := FromValue(7).Result()
	if !out.IsSuccess() || out.Result() != 7 {
		t.Fatalf("expected success with 7, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestThen_UpperCase(t *testing.T) {
	t.Parallel()

	got := Then(FromValue("Hello"), func(s string) result.Result[string] {
		return result.Success(strings.ToUpper(s))
	}).GetOrElse("")

	if got != "HELLO" {
		t.Fatalf("expected 'HELLO', got %q", got)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	called := false
	out := Then(Start(result.Fail[int](cause)), func(v int) result.Result[int] {
		called = true
		return result.Success(v + 1)
	}).Result()

	if called {
		t.Fatalf("onSuccess must not run when the chain already failed")
	}
	if out.IsSuccess() || out.Err() != cause {
		t.Fatalf("expected failure 'boom', got: success=%v, err=%v", out.IsSuccess(), out.Err())
	}
}

func TestThenTry(t *testing.T) {
	t.Parallel()

	out := ThenTry(FromValue("41"), func(s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	if !out.IsSuccess() || out.Result() != 41 {
		t.Fatalf("expected success with 41, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}

	out2 := ThenTry(FromValue("bad"), func(s string) (int, error) {
		return strconv.Atoi(s)
	}).Result()
	if out2.IsSuccess() || out2.Err() == nil {
		t.Fatalf("expected captured parse error")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	out := Map(FromValue(5), func(v int) int { return v + 3 }).Result()
	if !out.IsSuccess() || out.Result() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	out := FromValue(4).Validate("odd", func(v int) bool { return v%2 == 0 }).Result()
	if !out.IsSuccess() || out.Result() != 4 {
		t.Fatalf("expected success with 4")
	}

	out2 := FromValue(3).Validate("odd", func(v int) bool { return v%2 == 0 }).Result()
	if out2.IsSuccess() || out2.Err().Error() != "odd" {
		t.Fatalf("expected 'odd' failure, got: %v", out2.Err())
	}
}

func TestTeeAndTeeFail(t *testing.T) {
	t.Parallel()

	seen := 0
	var observed error
	cause := errors.New("bad")

	out := FromValue(11).
		Tee(func(v int) { seen = v }).
		TeeFail(func(err error) { observed = err }).
		Result()
	if !out.IsSuccess() || seen != 11 || observed != nil {
		t.Fatalf("expected success side effect only; seen=%d, observed=%v", seen, observed)
	}

	seen = 0
	out2 := Start(result.Fail[int](cause)).
		Tee(func(v int) { seen = v }).
		TeeFail(func(err error) { observed = err }).
		Result()
	if out2.IsSuccess() || seen != 0 || observed != cause {
		t.Fatalf("expected failure side effect only; seen=%d, observed=%v", seen, observed)
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()

	got := Start(result.FailMsg[string]("offline")).
		Recover(func(err error) result.Result[string] {
			return result.Success("cached")
		}).
		GetOrElse("")

	if got != "cached" {
		t.Fatalf("expected 'cached', got %q", got)
	}
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()

	a := Start(result.FailMsg[int]("a"))
	b := FromValue(2)
	c := FromValue(3)

	out := a.Or(b, c).Result()
	if !out.IsSuccess() || out.Result() != 2 {
		t.Fatalf("expected first successful alternative, got: %v", out.Result())
	}

	// no alternative succeeded: keep the original failure
	cause := errors.New("primary")
	out2 := Start(result.Fail[int](cause)).Or(Start(result.FailMsg[int]("alt"))).Result()
	if out2.IsSuccess() || out2.Err() != cause {
		t.Fatalf("expected the original failure, got: %v", out2.Err())
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	s := Finally(FromValue(3),
		func(v int) string { return "val:" + strconv.Itoa(v) },
		func(err error) string { return "err" })
	if s != "val:3" {
		t.Fatalf("expected 'val:3', got %q", s)
	}

	f := Finally(Start(result.FailMsg[int]("x")),
		func(v int) string { return "val" },
		func(err error) string { return "err:" + err.Error() })
	if f != "err:x" {
		t.Fatalf("expected 'err:x', got %q", f)
	}
}

func TestRecoverWithErrorMessage_EndToEnd(t *testing.T) {
	t.Parallel()

	divide := func(a, b int) result.Result[int] {
		return result.Of(func() (int, error) {
			if b == 0 {
				return 0, errors.New("integer divide by zero")
			}
			return a / b, nil
		})
	}

	got := Finally(Start(divide(1, 0)),
		func(v int) string { return strconv.Itoa(v) },
		func(err error) string { return err.Error() })

	if got != "integer divide by zero" {
		t.Fatalf("expected the original failure message, got %q", got)
	}
}
