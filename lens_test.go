package loom

import "testing"

type profile struct {
	Name Value[string]
	Age  Value[int]
}

func (p profile) Same(other profile) bool { return p == other }
func (p profile) Clone() profile          { return p }

type account struct {
	Owner  profile
	Detail *Value[string]
}

func (a account) Same(other account) bool {
	if a.Owner != other.Owner {
		return false
	}
	if (a.Detail == nil) != (other.Detail == nil) {
		return false
	}
	return a.Detail == nil || a.Detail.Same(*other.Detail)
}

func (a account) Clone() account {
	out := a
	if a.Detail != nil {
		d := *a.Detail
		out.Detail = &d
	}
	return out
}

func TestFieldLens(t *testing.T) {
	nameLens := Field(func(p *profile) *Value[string] { return &p.Name })
	p := profile{Name: Val("ada"), Age: Val(36)}

	var got string
	nameLens.With(&p, func(n *Value[string]) { got = n.V })
	if got != "ada" {
		t.Errorf("With read %q", got)
	}

	nameLens.WithMut(&p, func(n *Value[string]) { n.V = "grace" })
	if p.Name.V != "grace" {
		t.Errorf("WithMut did not commit, name = %q", p.Name.V)
	}
	if p.Age.V != 36 {
		t.Error("WithMut touched an unrelated field")
	}
}

func TestThenComposition(t *testing.T) {
	owner := Field(func(a *account) *profile { return &a.Owner })
	age := Field(func(p *profile) *Value[int] { return &p.Age })
	ownerAge := Then(owner, age)

	a := account{Owner: profile{Age: Val(10)}}
	ownerAge.WithMut(&a, func(v *Value[int]) { v.V = 11 })
	if a.Owner.Age.V != 11 {
		t.Errorf("composed write = %d", a.Owner.Age.V)
	}
}

func TestMapCommitsOnlyOnChange(t *testing.T) {
	puts := 0
	doubled := Map(
		func(p *profile) Value[int] { return Val(p.Age.V * 2) },
		func(p *profile, v Value[int]) { puts++; p.Age = Val(v.V / 2) },
	)

	p := profile{Age: Val(21)}

	// Read-modify-write that changes nothing never calls put.
	doubled.WithMut(&p, func(v *Value[int]) {})
	if puts != 0 {
		t.Errorf("no-op WithMut called put %d times", puts)
	}

	doubled.WithMut(&p, func(v *Value[int]) { v.V = 84 })
	if puts != 1 || p.Age.V != 42 {
		t.Errorf("puts = %d, age = %d", puts, p.Age.V)
	}
}

func TestIdentityLens(t *testing.T) {
	id := Identity[profile]()
	p := profile{Age: Val(1)}
	id.WithMut(&p, func(q *profile) { q.Age = Val(2) })
	if p.Age.V != 2 {
		t.Error("identity lens should expose the whole value")
	}
}

func TestVariantPrism(t *testing.T) {
	detail := Variant(func(a *account) *Value[string] { return a.Detail })

	a := account{}
	called := false
	if detail.WithOpt(&a, func(*Value[string]) { called = true }) {
		t.Error("WithOpt should report absent")
	}
	if called {
		t.Error("callback must not run when the part is absent")
	}

	a.Detail = ptr(Val("x"))
	ok := detail.WithMutOpt(&a, func(v *Value[string]) { v.V = "y" })
	if !ok || a.Detail.V != "y" {
		t.Errorf("present part: ok=%v val=%q", ok, a.Detail.V)
	}
}
