/*
ice is a lightweight Dependency Injection Framework

ice's central metaphor is a "Magic Bag".

It's a Bag because you put things in and then take things out.

Imagine a bag where you put in building materials and an Ikea instruction manual,
and then you pull out a fully-formed desk. The bag did the assembly! Magic!

ice works not with Nordic flat pack furniture but with Go.
Our object graph is composed of Go values (the nodes) and Providers (the edges).

Lifecycle

1) Create an Empty Bag
2) Insert Provider Functions
  a) or a Module, which can insert many Provider at once
  b) or a PrivateModule, which binds into its own child bag and Exposes
     only some of its Keys to the enclosing bag
3) Extract Values

Terms

Key: what ice knows how to create. A Go type plus an optional Tag.

Tag: a comparable value that tells apart two bindings of the same type
(e.g. a left foot and a right foot). A nil Tag is the plain, untagged Key.

Provider: a function that creates a foo. It may either return foo or (foo, error).

Binding: a Provider plus the Tag of what it creates, the Tags of its
arguments and whether its value is a Singleton.

Magic Bag: binds Keys to Providers.

Extract: Use the bindings in a Magic Bag to create and wire together complex structs

Module: utility to install multiple Providers at once

PrivateModule: installs into a child bag. The child sees its parent's
bindings, the parent only sees what the child Exposes. A child may not bind
(or Expose) a Key its parent or any further ancestor already binds when it is
installed; a Key an ancestor binds later is shadowed by the child's own.

Notes

ice uses reflection heavily.

(MagicBag in ice is the equivalent of Guice's Injector or
Dagger 1's ObjectGraph)
*/
package ice
