package loom

// Lens is a bidirectional accessor focusing a whole state value S down
// to a part A. A widget subtree written against A can be grafted into a
// tree whose state is S; mutations to the part are committed back into
// the whole.
//
// With grants shared access: the callback must not mutate the part (any
// mutation may or may not be committed). WithMut grants exclusive
// access and commits mutations.
//
// Lenses compose associatively with Then.
type Lens[S, A any] interface {
	With(data *S, f func(part *A))
	WithMut(data *S, f func(part *A))
}

// Prism is a partial lens: the part may not exist for every value of the
// whole. When the part is absent both operations report false without
// invoking the callback, and a write is a no-op.
type Prism[S, A any] interface {
	WithOpt(data *S, f func(part *A)) bool
	WithMutOpt(data *S, f func(part *A)) bool
}

// Field creates a lens from a pointer accessor, the common case of
// focusing one struct field:
//
//	nameLens := loom.Field(func(s *AppState) *string { return &s.Name })
func Field[S, A any](access func(*S) *A) Lens[S, A] {
	return fieldLens[S, A]{access: access}
}

type fieldLens[S, A any] struct {
	access func(*S) *A
}

func (l fieldLens[S, A]) With(data *S, f func(*A))    { f(l.access(data)) }
func (l fieldLens[S, A]) WithMut(data *S, f func(*A)) { f(l.access(data)) }

// Identity returns the lens that focuses the whole value.
func Identity[S any]() Lens[S, S] {
	return identityLens[S]{}
}

type identityLens[S any] struct{}

func (identityLens[S]) With(data *S, f func(*S))    { f(data) }
func (identityLens[S]) WithMut(data *S, f func(*S)) { f(data) }

// Map creates a lens over a derived value. get computes the part from
// the whole; put writes a replacement part back. The write path commits
// only when the part actually changed, so a read-modify-write round
// trip through the derived computation is a no-op on the whole.
func Map[S any, A Data[A]](get func(*S) A, put func(*S, A)) Lens[S, A] {
	return mapLens[S, A]{get: get, put: put}
}

type mapLens[S any, A Data[A]] struct {
	get func(*S) A
	put func(*S, A)
}

func (l mapLens[S, A]) With(data *S, f func(*A)) {
	part := l.get(data)
	f(&part)
}

func (l mapLens[S, A]) WithMut(data *S, f func(*A)) {
	part := l.get(data)
	old := part.Clone()
	f(&part)
	if !old.Same(part) {
		l.put(data, part)
	}
}

// Then composes two lenses: the result focuses S through A down to B.
// Composition is associative.
func Then[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return composedLens[S, A, B]{outer: outer, inner: inner}
}

type composedLens[S, A, B any] struct {
	outer Lens[S, A]
	inner Lens[A, B]
}

func (l composedLens[S, A, B]) With(data *S, f func(*B)) {
	l.outer.With(data, func(a *A) {
		l.inner.With(a, f)
	})
}

func (l composedLens[S, A, B]) WithMut(data *S, f func(*B)) {
	l.outer.WithMut(data, func(a *A) {
		l.inner.WithMut(a, f)
	})
}

// Variant creates a prism from an accessor that returns nil when the
// part is absent, the common case of focusing one branch of a sum-like
// value:
//
//	detail := loom.Variant(func(s *AppState) *Detail { return s.OpenDetail })
func Variant[S, A any](access func(*S) *A) Prism[S, A] {
	return variantPrism[S, A]{access: access}
}

type variantPrism[S, A any] struct {
	access func(*S) *A
}

func (p variantPrism[S, A]) WithOpt(data *S, f func(*A)) bool {
	part := p.access(data)
	if part == nil {
		return false
	}
	f(part)
	return true
}

func (p variantPrism[S, A]) WithMutOpt(data *S, f func(*A)) bool {
	part := p.access(data)
	if part == nil {
		return false
	}
	f(part)
	return true
}
