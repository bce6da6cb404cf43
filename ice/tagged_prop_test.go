package ice

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_TaggedKeysResolveTheirOwnProvider(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("Each tag extracts the value bound under it", prop.ForAll(
		func(tags []int) bool {
			env := NewMagicBag()
			for _, tag := range tags {
				i := tag
				env.PutTagged(i, func() intBox { return intBox{i} })
			}
			for _, tag := range tags {
				var b intBox
				if err := env.ExtractTagged(tag, &b); err != nil || b.i != tag {
					return false
				}
			}
			var b intBox
			return env.Extract(&b) != nil
		},
		gen.SliceOf(gen.IntRange(1, 1000)),
	))

	properties.TestingRun(t)
}
