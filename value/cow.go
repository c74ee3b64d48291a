package value

// Cow is a render-time holder that is either a borrow into the data tree
// (a View the caller does not own) or a freshly constructed owned Value
// (what filters produce). Callers must not assume either variant — use
// View() to get at the data regardless of which one is live.
type Cow struct {
	borrowed View
	owned    *Value
}

// Borrowed wraps a borrowed View without copying it.
func Borrowed(v View) Cow { return Cow{borrowed: v} }

// Owned wraps a freshly constructed Value.
func Owned(v Value) Cow { return Cow{owned: &v} }

// View returns the underlying View regardless of which variant is live.
func (c Cow) View() View {
	if c.owned != nil {
		return *c.owned
	}
	return c.borrowed
}

// ToValue materializes an owned clone, cloning the borrowed side if
// necessary.
func (c Cow) ToValue() Value {
	return c.View().ToValue()
}

// IsOwned reports whether this Cow already holds an owned Value (no
// further cloning needed to call ToValue cheaply).
func (c Cow) IsOwned() bool { return c.owned != nil }
