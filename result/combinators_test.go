package result

import "testing"

func TestMapOkTransformsOkAndPreservesOwnership(t *testing.T) {
	r := OkOwned[int, string](10, Pinned)
	got := MapOk(r, func(x int) int { return x * 2 })
	v, ok := got.Unwrap()
	if !ok || v != 20 {
		t.Fatalf("expected Ok(20), got Ok=%v v=%v", ok, v)
	}
	if got.Ownership() != Pinned {
		t.Fatalf("expected ownership preserved as Pinned, got %v", got.Ownership())
	}
}

func TestMapOkPassesErrThrough(t *testing.T) {
	r := Err[int, string]("boom")
	got := MapOk(r, func(x int) int { t.Fatal("must not be invoked on Err"); return x })
	if !got.IsErr() {
		t.Fatal("expected Err to pass through MapOk unchanged")
	}
	reason, _ := got.UnwrapErr()
	if reason != "boom" {
		t.Fatalf("expected reason %q, got %q", "boom", reason)
	}
}

func TestMapErrTransformsErrAndPassesOkThrough(t *testing.T) {
	okR := Ok[int, string](5)
	gotOk := MapErr(okR, func(e string) int { t.Fatal("must not be invoked on Ok"); return 0 })
	if !gotOk.IsOk() {
		t.Fatal("expected Ok to pass through MapErr unchanged")
	}

	errR := Err[int, string]("boom")
	gotErr := MapErr(errR, func(e string) int { return len(e) })
	reason, ok := gotErr.UnwrapErr()
	if !ok || reason != 4 {
		t.Fatalf("expected mapped reason 4, got ok=%v reason=%v", ok, reason)
	}
}

func TestAndThenShortCircuitsOnErr(t *testing.T) {
	r := Err[int, string]("boom")
	got := AndThen(r, func(x int) R[int, string] {
		t.Fatal("continuation must not run on Err")
		return Ok[int, string](x)
	})
	if !got.IsErr() {
		t.Fatal("expected Err to short-circuit AndThen")
	}
}

func TestOrElseRecoversErr(t *testing.T) {
	r := Err[int, string]("boom")
	got := OrElse(r, func(e string) R[int, string] { return Ok[int, string](len(e)) })
	v, ok := got.Unwrap()
	if !ok || v != 4 {
		t.Fatalf("expected recovered Ok(4), got ok=%v v=%v", ok, v)
	}
}

func TestIsOkAndIsErrAnd(t *testing.T) {
	ok := Ok[int, string](4)
	if !IsOkAnd(ok, func(x int) bool { return x%2 == 0 }) {
		t.Fatal("expected IsOkAnd true for even value")
	}
	if IsOkAnd(ok, func(x int) bool { return x%2 != 0 }) {
		t.Fatal("expected IsOkAnd false for odd predicate on even value")
	}

	errV := Err[int, string]("boom")
	if IsOkAnd(errV, func(x int) bool { return true }) {
		t.Fatal("IsOkAnd must be false for an Err")
	}
	if !IsErrAnd(errV, func(e string) bool { return e == "boom" }) {
		t.Fatal("expected IsErrAnd true")
	}
}

func TestUnwrapOrElse(t *testing.T) {
	errV := Err[int, string]("boom")
	got := UnwrapOrElse(errV, func(e string) int { return len(e) })
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}

	ok := Ok[int, string](9)
	got = UnwrapOrElse(ok, func(e string) int { t.Fatal("must not run on Ok"); return -1 })
	if got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
}
