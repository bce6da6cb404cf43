package ice

import (
	"fmt"
	"reflect"
	"runtime"
	"runtime/debug"

	"github.com/luci/go-render/render"
	"github.com/nu7hatch/gouuid"
	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"

	errs "github.com/twitter/robotlegs/common/errors"
)

// Extract extracts a value from the MagicBag and puts it into dest, returning any errors
// dest must be a pointer to a type this MagicBag knows how to construct.
func (bag *MagicBag) Extract(dest interface{}) error {
	return bag.ExtractTagged(nil, dest)
}

// ExtractTagged is Extract for the Key tagged with tag.
// Injection failures are returned as an *InjectionError.
func (bag *MagicBag) ExtractTagged(tag Tag, dest interface{}) (result error) {
	defer func() {
		if r := recover(); r != nil {
			if iceErr, ok := r.(*InjectionError); ok {
				result = iceErr
				return
			}
			result = fmt.Errorf("Error injecting: %v", r)
		}
	}()

	// dest must be a pointer to our target
	destVal := reflect.ValueOf(dest)
	if !destVal.IsValid() {
		return fmt.Errorf("dest must be a pointer; was nil")
	}
	destType := destVal.Type()
	if destType.Kind() != reflect.Ptr {
		return fmt.Errorf("dest must be a pointer; was %v", destType)
	}
	checkTag(tag)

	metrics.GetOrRegisterCounter(ExtractionsCounter, bag.stats).Inc(1)

	// our target is what dest points to
	targetVal := destVal.Elem()
	key := Key{Type: destType.Elem(), Tag: tag}
	eval := newEvaluation()
	targetVal.Set(reflect.Value(eval.construct(bag, key)))

	return nil
}

// An evaluation holds the mutable state for an ice evaluation
type evaluation struct {
	id     string
	values map[frame]Value
	stack  stack
}

func newEvaluation() *evaluation {
	id := "unknown"
	if u, err := uuid.NewV4(); err == nil {
		id = u.String()
	}
	return &evaluation{
		id:     id,
		values: make(map[frame]Value),
	}
}

// what we are evaluating to construct at this level, and in which bag
type frame struct {
	bag *MagicBag
	key Key
}

// a stack is just the in-order frames of our evaluation
type stack []frame

func (s stack) String() string {
	keys := make([]string, len(s))
	for i, f := range s {
		keys[i] = f.key.String()
	}
	return render.Render(keys)
}

func (s stack) LogStack() {
	log.Info("goice stacktrace (constructor chain):")
	for _, f := range s {
		log.Info(fmt.Sprintf("\t%s", f.key))
	}
	log.Info("end goice stacktrace")
}

// one level of our evaluation. Constructs a Value for key, as seen from bag
func (e *evaluation) construct(bag *MagicBag, key Key) Value {
	// Maintain our stack
	f := frame{bag, key}
	e.enter(f)
	defer e.exit()

	// Check for cycles (instead of just recurring infinitely and overflowing stack
	for _, g := range e.stack[0 : len(e.stack)-1] {
		if g == f {
			throw("cycle in object (dependency) graph: already constructing %v", key)
		}
	}

	// Find who makes this
	owner, b := bag.lookup(key)
	if b == nil {
		throw("target type %v is unbound (no constructor for %v found in bag)", key, key)
	}

	// An exposed Key is made by the private bag that exposed it
	if b.exposedFrom != nil {
		return e.construct(b.exposedFrom, key)
	}

	// Have we already constructed this?
	made := frame{owner, key}
	if v, ok := e.values[made]; ok {
		return v
	}
	if b.Singleton {
		if v, ok := owner.singletons[key]; ok {
			return v
		}
	}

	// providerType must be a function; we check this in Put so we assume it here
	providerVal := reflect.ValueOf(b.Provider)

	// construct arguments. (Here's the recursion, and our basecase is no args)
	// Arguments come from the owner, which can't see into its private children.
	args := make([]reflect.Value, len(b.args))
	for i, argKey := range b.args {
		args[i] = reflect.Value(e.construct(owner, argKey))
	}

	// Call the provider
	results := providerVal.Call(args)

	// If provider returned an error, throw the error
	if len(results) == 2 {
		var err error
		reflect.ValueOf(&err).Elem().Set(results[1])
		if err != nil {
			throw("provider %s threw error: %v", getFunctionName(b.Provider), err)
		}
	}
	v := Value(results[0])
	e.values[made] = v
	if b.Singleton {
		owner.singletons[key] = v
	}
	metrics.GetOrRegisterCounter(ConstructedCounter, owner.stats).Inc(1)
	log.WithFields(log.Fields{
		"evaluation": e.id,
		"key":        key.String(),
	}).Debugf("Constructed: %T", results[0].Interface())
	return v
}

func (e *evaluation) enter(f frame) {
	// Push a frame
	e.stack = append(e.stack, f)
}

func (e *evaluation) exit() {
	if r := recover(); r != nil {
		// construct panic'ed. OK. Let's take what happened, and wrap it.
		// First into an error, and then into an InjectionError.
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		iceErr, ok := err.(*InjectionError)
		if !ok {
			stackCopy := stack(nil)
			stackCopy = append(stackCopy, e.stack...)
			iceErr = &InjectionError{
				underlying: err,
				goiceStack: stackCopy,
				goStack:    string(debug.Stack()),
			}
			log.WithField("evaluation", e.id).Debugf("injection failed: %v", err)
		}
		panic(iceErr)
	}

	// Pop a frame
	e.stack = e.stack[:len(e.stack)-1]
}

type InjectionError struct {
	underlying error
	goiceStack stack
	goStack    string
}

// AsInjectionError finds the *InjectionError among err's causes.
func AsInjectionError(err error) (*InjectionError, bool) {
	found := errs.Find(err, func(e error) bool {
		_, ok := e.(*InjectionError)
		return ok
	})
	iceErr, ok := found.(*InjectionError)
	return iceErr, ok
}

// Cause returns the error that stopped the injection, for github.com/pkg/errors.Cause
func (e *InjectionError) Cause() error {
	return e.underlying
}

// Chain is the constructor chain at the point of failure, outermost first.
func (e *InjectionError) Chain() []Key {
	keys := make([]Key, len(e.goiceStack))
	for i, f := range e.goiceStack {
		keys[i] = f.key
	}
	return keys
}

// LogStack logs the constructor chain at the point of failure
func (e *InjectionError) LogStack() {
	e.goiceStack.LogStack()
}

func (e *InjectionError) String() string {
	return fmt.Sprintf("goice injection error:\n\t%v\n%v\n%v",
		e.underlying.Error(),
		e.goiceStack,
		e.goStack,
	)

}

func (e *InjectionError) Error() string {
	return e.String()
}

func throw(format string, a ...interface{}) {
	panic(fmt.Errorf(format, a...))
}

func getFunctionName(i interface{}) string {
	return runtime.FuncForPC(reflect.ValueOf(i).Pointer()).Name()
}
