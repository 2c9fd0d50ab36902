package loom

// Env is the cascading, structurally-shared context passed down through
// every tree walk. It carries theme values and scoped configuration
// under typed keys.
//
// Env is a cheap value: overriding a key returns a derived Env that
// shares the parent chain. Children never observe a parent's Env
// changing, and parents never observe overrides made for a subtree.
type Env struct {
	node *envNode
}

type envNode struct {
	parent *envNode
	values map[string]any
	base   *envBase
}

type envBase struct {
	sealed bool
}

// NewEnv creates an empty environment ready for defaults.
func NewEnv() Env {
	return Env{node: &envNode{
		values: make(map[string]any),
		base:   &envBase{},
	}}
}

// seal marks the environment as running; further defaults are rejected.
func (e Env) seal() {
	if e.node != nil {
		e.node.base.seal()
	}
}

func (b *envBase) seal() { b.sealed = true }

// Key is a typed environment key. Create keys once, at package level,
// with unique names:
//
//	var TextColor = loom.NewKey[loom.Color]("myapp.text-color")
type Key[V any] struct {
	name string
}

// NewKey creates a typed key with the given name. The name is used for
// lookup and diagnostics and must be unique across the application.
func NewKey[V any](name string) Key[V] {
	return Key[V]{name: name}
}

// Name returns the key's name.
func (k Key[V]) Name() string { return k.name }

// Get returns the value for this key, walking the cascade from the most
// recent override to the base defaults. A missing key is a programming
// error; it is logged and the zero value returned so the frame can
// continue.
func (k Key[V]) Get(e Env) V {
	for n := e.node; n != nil; n = n.parent {
		if raw, ok := n.values[k.name]; ok {
			if v, ok := raw.(V); ok {
				return v
			}
			Logger().Warn("env key holds wrong type", "key", k.name)
			break
		}
	}
	Logger().Warn("env key missing", "key", k.name)
	var zero V
	return zero
}

// GetOr returns the value for this key, or def if the key is unset.
func (k Key[V]) GetOr(e Env, def V) V {
	for n := e.node; n != nil; n = n.parent {
		if raw, ok := n.values[k.name]; ok {
			if v, ok := raw.(V); ok {
				return v
			}
		}
	}
	return def
}

// With returns a derived environment in which this key is overridden for
// the duration of a subtree's dispatch. The receiver environment is not
// modified.
func (k Key[V]) With(e Env, v V) Env {
	base := &envBase{}
	if e.node != nil {
		base = e.node.base
	}
	return Env{node: &envNode{
		parent: e.node,
		values: map[string]any{k.name: v},
		base:   base,
	}}
}

// Default installs a default value for this key into the base
// environment. Adding defaults is only valid before the tree starts
// running; afterwards the call is logged and ignored.
func (k Key[V]) Default(e Env, v V) Env {
	if e.node == nil {
		e = NewEnv()
	}
	if e.node.base.sealed {
		Logger().Warn("env default added after tree started; ignored", "key", k.name)
		return e
	}
	// Walk to the base node so defaults land below every override.
	n := e.node
	for n.parent != nil {
		n = n.parent
	}
	n.values[k.name] = v
	return e
}
