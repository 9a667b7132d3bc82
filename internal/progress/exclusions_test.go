package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExcludeAllCombinations(t *testing.T) {
	for _, user := range []bool{false, true} {
		for _, above := range []bool{false, true} {
			for _, few := range []bool{false, true} {
				got := Exclude(user, above, few)
				want := user || above || few
				assert.Equal(t, want, got.Excluded)
				assert.Equal(t, !want, got.Included)
				assert.Equal(t, user, got.UserExcluded)
				assert.Equal(t, above, got.FirstRatingAbove32)
				assert.Equal(t, few, got.ZeroOrOneMeetings)
			}
		}
	}
}
