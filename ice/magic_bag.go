package ice

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

// Names of the counters every MagicBag keeps in its Stats registry.
const (
	ConstructedCounter = "ice.constructed"
	ExtractionsCounter = "ice.extractions"
)

// Tag distinguishes two bindings of the same type. It must be comparable.
type Tag interface{}

// Key is what a MagicBag knows how to create: a type, and optionally a Tag.
type Key struct {
	Type reflect.Type
	Tag  Tag
}

// KeyOf returns the Key for the type ptr points to, e.g. KeyOf((*Foo)(nil), nil)
func KeyOf(ptr interface{}, tag Tag) Key {
	t := reflect.TypeOf(ptr)
	if t == nil || t.Kind() != reflect.Ptr {
		panic(fmt.Errorf("KeyOf needs a pointer to the keyed type; was %v", t))
	}
	checkTag(tag)
	return Key{Type: t.Elem(), Tag: tag}
}

func (k Key) String() string {
	if k.Tag == nil {
		return fmt.Sprintf("%v", k.Type)
	}
	return fmt.Sprintf("%v@%v", k.Type, k.Tag)
}

type Provider interface{}

// Binding is a Provider along with how the bag should key and scope it.
// Tag tags the Key the Provider creates. ArgTags[i] tags the Provider's i-th
// argument; missing entries are untagged.
// A Singleton is constructed at most once per owning bag.
type Binding struct {
	Provider  Provider
	Tag       Tag
	ArgTags   []Tag
	Singleton bool
}

// binding is a checked Binding, or a Key exposed by a private child bag
type binding struct {
	Binding
	key         Key
	args        []Key
	exposedFrom *MagicBag
}

// MagicBag binds Providers to Keys which an Evaluation can use
type MagicBag struct {
	parent     *MagicBag
	bindings   map[Key]*binding
	singletons map[Key]Value
	stats      metrics.Registry
}

// Module can install many things at once.
// It could be just []Provider, but this lets Module code look a little nicer,
type Module interface {
	Install(b *MagicBag)
}

func NewMagicBag() *MagicBag {
	return newMagicBag(nil, metrics.NewRegistry())
}

func newMagicBag(parent *MagicBag, stats metrics.Registry) *MagicBag {
	return &MagicBag{
		parent:     parent,
		bindings:   make(map[Key]*binding),
		singletons: make(map[Key]Value),
		stats:      stats,
	}
}

// Bindings returns the Providers bound directly in this bag.
// Keys exposed by a private child map to nil, since their Provider stays private.
func (b *MagicBag) Bindings() map[Key]Provider {
	r := make(map[Key]Provider, len(b.bindings))
	for k, v := range b.bindings {
		r[k] = v.Provider
	}
	return r
}

// Stats holds the bag's counters. Private child bags share their parent's.
func (b *MagicBag) Stats() metrics.Registry {
	return b.stats
}

// Constructed counts values built by providers of this bag (or its private children).
func (b *MagicBag) Constructed() int64 {
	return metrics.GetOrRegisterCounter(ConstructedCounter, b.stats).Count()
}

// Extractions counts calls to Extract (and ExtractTagged) on this bag, failed ones included.
func (b *MagicBag) Extractions() int64 {
	return metrics.GetOrRegisterCounter(ExtractionsCounter, b.stats).Count()
}

// InstallModule installs m, turning a panic while installing into an error.
func (b *MagicBag) InstallModule(m Module) (err error) {
	defer recoverInto(&err, "installing module %T", m)
	m.Install(b)
	return nil
}

type Value reflect.Value

func (b *MagicBag) checkResult(t reflect.Type) reflect.Type {
	if t.NumOut() == 1 {
		return t.Out(0)
	}
	if t.NumOut() == 2 {
		errType := reflect.TypeOf(new(error)).Elem()
		if !t.Out(1).Implements(errType) {
			throw("f returns two results so the second must implement error; was %v %v", t, errType)
		}
		return t.Out(0)
	}
	throw("f must return either exactly 1 value or 2 values with the second an error; was %v with %v results", t, t.NumOut())
	return nil
}

func (b *MagicBag) Put(f interface{}) {
	b.PutBinding(Binding{Provider: f})
}

func (b *MagicBag) PutMany(fs ...interface{}) {
	for _, f := range fs {
		b.Put(f)
	}
}

// PutTagged binds f's result under tag. argTags tag f's arguments in order.
func (b *MagicBag) PutTagged(tag Tag, f interface{}, argTags ...Tag) {
	b.PutBinding(Binding{Provider: f, Tag: tag, ArgTags: argTags})
}

func (b *MagicBag) PutBinding(bd Binding) {
	v := reflect.ValueOf(bd.Provider)
	if !v.IsValid() {
		panic(errors.New("f must be a func; was nil"))
	}
	t := v.Type()
	if t.Kind() != reflect.Func {
		panic(fmt.Errorf("f must be a func; was %v", t))
	}
	if t.IsVariadic() {
		panic(fmt.Errorf("f must not be variadic; was %v", t))
	}
	if len(bd.ArgTags) > t.NumIn() {
		panic(fmt.Errorf("%v takes %d args but was given %d arg tags", t, t.NumIn(), len(bd.ArgTags)))
	}
	checkTag(bd.Tag)

	args := make([]Key, t.NumIn())
	for i := range args {
		var tag Tag
		if i < len(bd.ArgTags) {
			tag = bd.ArgTags[i]
			checkTag(tag)
		}
		args[i] = Key{Type: t.In(i), Tag: tag}
	}
	key := Key{Type: b.checkResult(t), Tag: bd.Tag}
	b.bindings[key] = &binding{Binding: bd, key: key, args: args}
}

// lookup finds who makes key, walking up to the parents of a private bag.
func (b *MagicBag) lookup(key Key) (*MagicBag, *binding) {
	for bag := b; bag != nil; bag = bag.parent {
		if bd, ok := bag.bindings[key]; ok {
			return bag, bd
		}
	}
	return nil, nil
}

func checkTag(tag Tag) {
	if tag != nil && !reflect.TypeOf(tag).Comparable() {
		panic(fmt.Errorf("tag must be comparable; was %T", tag))
	}
}

func recoverInto(err *error, format string, a ...interface{}) {
	if r := recover(); r != nil {
		e, ok := r.(error)
		if !ok {
			e = fmt.Errorf("%v", r)
		}
		*err = errors.Wrapf(e, format, a...)
	}
}
