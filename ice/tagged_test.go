package ice

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestTagged(t *testing.T) {
	env := NewMagicBag()
	env.PutTagged(left, func() *Foot { return &Foot{left} })
	env.PutTagged(right, func() *Foot { return &Foot{right} })
	env.PutTagged(left, NewLeg, left)
	env.PutTagged(right, NewLeg, right)
	env.PutBinding(Binding{
		Provider: func(l, r *Leg) Robot { return Robot{l, r} },
		ArgTags:  []Tag{left, right},
	})

	var robot Robot
	if err := env.Extract(&robot); err != nil {
		t.Fatal(err)
	}
	if robot.left.foot.side != left || robot.right.foot.side != right {
		t.Fatalf("expected left and right feet; was %s", spew.Sdump(robot))
	}

	var leg *Leg
	if err := env.ExtractTagged(right, &leg); err != nil {
		t.Fatal(err)
	}
	if leg.foot.side != right {
		t.Fatalf("expected right foot; was %v", leg.foot.side)
	}

	// untagged Key is a different Key
	if err := env.Extract(&leg); err == nil {
		t.Fatalf("expected untagged *Leg to be unbound; bindings %s", spew.Sdump(env.Bindings()))
	}
}

func TestKeyOf(t *testing.T) {
	k := KeyOf((**Leg)(nil), left)
	if k.Type.String() != "*ice.Leg" || k.Tag != left {
		t.Fatalf("unexpected key %v", k)
	}
	if k.String() != "*ice.Leg@left" {
		t.Fatalf("unexpected key string %v", k)
	}
	if s := KeyOf((*Storage)(nil), nil).String(); s != "ice.Storage" {
		t.Fatalf("unexpected untagged key string %v", s)
	}
}

func TestUncomparableTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a slice tag to panic")
		}
	}()
	NewMagicBag().PutTagged([]string{"left"}, MakeIntBox1)
}

func TestValuesSharedWithinExtraction(t *testing.T) {
	env := NewMagicBag()
	env.Put(func() *Foot { return &Foot{left} })
	env.PutTagged(left, NewLeg)
	env.PutTagged(right, NewLeg)
	env.PutBinding(Binding{
		Provider: func(l, r *Leg) Robot { return Robot{l, r} },
		ArgTags:  []Tag{left, right},
	})

	var robot Robot
	if err := env.Extract(&robot); err != nil {
		t.Fatal(err)
	}
	if robot.left.foot != robot.right.foot {
		t.Fatal("expected one Foot per extraction")
	}
	if env.Constructed() != 4 {
		t.Fatalf("expected 4 constructions; was %d", env.Constructed())
	}

	var other Robot
	if err := env.Extract(&other); err != nil {
		t.Fatal(err)
	}
	if other.left.foot == robot.left.foot {
		t.Fatal("expected a new Foot for a new extraction")
	}
}

func TestSingleton(t *testing.T) {
	env := NewMagicBag()
	env.PutBinding(Binding{
		Provider:  func() *Foot { return &Foot{left} },
		Singleton: true,
	})

	var f1, f2 *Foot
	if err := env.Extract(&f1); err != nil {
		t.Fatal(err)
	}
	if err := env.Extract(&f2); err != nil {
		t.Fatal(err)
	}
	if f1 != f2 {
		t.Fatal("expected the same singleton Foot")
	}
	if env.Constructed() != 1 {
		t.Fatalf("expected 1 construction; was %d", env.Constructed())
	}
}

func TestExtractionsCounted(t *testing.T) {
	env := NewMagicBag()
	env.Put(func() *Foot { return &Foot{left} })

	var foot *Foot
	for i := 0; i < 2; i++ {
		if err := env.Extract(&foot); err != nil {
			t.Fatal(err)
		}
	}
	var leg *Leg
	if err := env.Extract(&leg); err == nil {
		t.Fatal("expected *Leg to be unbound")
	}

	if env.Extractions() != 3 {
		t.Fatalf("expected 3 extractions, failed one included; was %d", env.Extractions())
	}
	if env.Constructed() != 2 {
		t.Fatalf("expected 2 constructions; was %d", env.Constructed())
	}
	for _, name := range []string{ExtractionsCounter, ConstructedCounter} {
		if env.Stats().Get(name) == nil {
			t.Fatalf("expected %v in the bag's stats", name)
		}
	}
}
