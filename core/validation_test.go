package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAssessment(t *testing.T) {
	valid := func() *Assessment {
		return &Assessment{
			Key:      "https://example.com/view/sample/",
			Name:     "Sample",
			TestType: TestTypeKnowledge,
			Duration: 20,
		}
	}

	t.Run("valid assessment", func(t *testing.T) {
		require.NoError(t, ValidateAssessment(valid()))
	})

	t.Run("unknown duration allowed", func(t *testing.T) {
		a := valid()
		a.Duration = DurationUnknown
		require.NoError(t, ValidateAssessment(a))
	})

	t.Run("nil assessment", func(t *testing.T) {
		err := ValidateAssessment(nil)
		assert.ErrorIs(t, err, ErrInvalidAssessment)
	})

	t.Run("empty key", func(t *testing.T) {
		a := valid()
		a.Key = ""
		err := ValidateAssessment(a)
		assert.ErrorIs(t, err, ErrEmptyKey)
	})

	t.Run("empty name", func(t *testing.T) {
		a := valid()
		a.Name = ""
		err := ValidateAssessment(a)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("negative duration", func(t *testing.T) {
		a := valid()
		a.Duration = -7
		err := ValidateAssessment(a)
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})

	t.Run("bad test type", func(t *testing.T) {
		a := valid()
		a.TestType = TestType("Z")
		err := ValidateAssessment(a)
		assert.ErrorIs(t, err, ErrInvalidTestType)
	})
}
