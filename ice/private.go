package ice

import (
	"fmt"
)

// PrivateModule installs into its own child bag.
// Its bindings can use everything in the enclosing bag, but only the Keys it
// Exposes can be extracted from (or injected by) the enclosing bag.
type PrivateModule interface {
	InstallPrivate(b *PrivateBag)
}

// PrivateBag is the child bag a PrivateModule installs into
type PrivateBag struct {
	*MagicBag
	exposed []Key
}

// Expose publishes key to the enclosing bag. key must be bound in this bag.
func (p *PrivateBag) Expose(key Key) {
	checkTag(key.Tag)
	p.exposed = append(p.exposed, key)
}

// InstallPrivateModule installs m in a new child of b and binds m's exposed Keys in b.
// Nothing is bound in b if m fails to install, binds a Key that b or one of
// b's parents already binds, or exposes a Key it can't provide.
func (b *MagicBag) InstallPrivateModule(m PrivateModule) (err error) {
	defer recoverInto(&err, "installing private module %T", m)

	child := &PrivateBag{MagicBag: newMagicBag(b, b.stats)}
	m.InstallPrivate(child)

	// A private binding may not shadow one its enclosing bags already have
	for k := range child.bindings {
		if owner, _ := b.lookup(k); owner != nil {
			return fmt.Errorf("could not bind %v in the private module: it is already bound in an enclosing bag", k)
		}
	}
	seen := make(map[Key]bool, len(child.exposed))
	for _, k := range child.exposed {
		if _, ok := child.bindings[k]; !ok {
			return fmt.Errorf("could not expose %v: it must be explicitly bound in the private module", k)
		}
		if seen[k] {
			return fmt.Errorf("could not expose %v: it is already bound", k)
		}
		seen[k] = true
	}
	for _, k := range child.exposed {
		b.bindings[k] = &binding{key: k, exposedFrom: child.MagicBag}
	}
	return nil
}
