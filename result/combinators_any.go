package result

// MapOkAny replaces an Ok payload with f(payload, ctx). A nil return from f
// is promoted to an Err carrying the literal diagnostic message
// "Mapping function returned NULL". An Err passes through unchanged.
func MapOkAny(a Any, f func(payload []byte, ctx any) []byte, ctx any) Any {
	if a.tag != anyTagOk {
		return a
	}
	out := f(a.payload, ctx)
	if out == nil {
		return ErrString("Mapping function returned NULL")
	}
	return Any{tag: anyTagOk, payload: out, payloadSize: len(out), typeID: a.typeID, ownership: a.ownership}
}

// MapErrAny is the symmetric mirror of MapOkAny for the Err case.
func MapErrAny(a Any, f func(payload []byte, ctx any) []byte, ctx any) Any {
	if a.tag != anyTagErr {
		return a
	}
	out := f(a.payload, ctx)
	if out == nil {
		return ErrString("Mapping function returned NULL")
	}
	return Any{tag: anyTagErr, payload: out, payloadSize: len(out), typeID: a.typeID, ownership: a.ownership}
}

// AndThenAny chains a fallible continuation over Any: if a is Ok, returns
// g(payload, ctx); otherwise passes the Err through unchanged, short
// circuiting the chain on the first Err.
func AndThenAny(a Any, g func(payload []byte, ctx any) Any, ctx any) Any {
	if a.tag != anyTagOk {
		return a
	}
	return g(a.payload, ctx)
}

// OrElseAny recovers an Err by invoking g(reason, ctx); an Ok passes through
// unchanged.
func OrElseAny(a Any, g func(reason []byte, ctx any) Any, ctx any) Any {
	if a.tag != anyTagErr {
		return a
	}
	return g(a.payload, ctx)
}

// IsOkAndAny reports whether a is Ok and pred accepts the payload. A nil
// pred is treated as unconditionally true.
func IsOkAndAny(a Any, pred func(payload []byte, ctx any) bool, ctx any) bool {
	if a.tag != anyTagOk {
		return false
	}
	return pred == nil || pred(a.payload, ctx)
}

// IsErrAndAny reports whether a is Err and pred accepts the reason. A nil
// pred is treated as unconditionally true.
func IsErrAndAny(a Any, pred func(payload []byte, ctx any) bool, ctx any) bool {
	if a.tag != anyTagErr {
		return false
	}
	return pred == nil || pred(a.payload, ctx)
}

// UnwrapOrAny returns the Ok payload, or def if a is Err.
func UnwrapOrAny(a Any, def []byte) []byte {
	if a.tag == anyTagOk {
		return a.payload
	}
	return def
}

// UnwrapOrElseAny returns the Ok payload, or g(reason, ctx) if a is Err.
func UnwrapOrElseAny(a Any, g func(reason []byte, ctx any) []byte, ctx any) []byte {
	if a.tag == anyTagOk {
		return a.payload
	}
	return g(a.payload, ctx)
}
