package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromKey("https://example.com/view/java-8")
		b := IDFromKey("https://example.com/view/java-8")
		assert.Equal(t, a, b)
	})

	t.Run("distinct keys produce distinct ids", func(t *testing.T) {
		a := IDFromKey("https://example.com/view/java-8")
		b := IDFromKey("https://example.com/view/python-basics")
		assert.NotEqual(t, a, b)
	})
}

func TestParseTestType(t *testing.T) {
	tests := []struct {
		in   string
		want TestType
	}{
		{"K", TestTypeKnowledge},
		{"Knowledge & Skills", TestTypeKnowledge},
		{"P", TestTypePersonality},
		{"Personality & Behavior", TestTypePersonality},
		{"C", TestTypeCognitive},
		{"S", TestTypeSimulation},
		{"", TestTypeUnknown},
		{"bogus", TestTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTestType(tt.in))
		})
	}
}

func TestAssessmentMUS_RoundTrip(t *testing.T) {
	a := Assessment{
		Key:             "https://example.com/view/java-8-basic/",
		Name:            "Java 8 Basic",
		Description:     "Entry level Java programming test",
		TestType:        TestTypeKnowledge,
		Duration:        30,
		AdaptiveSupport: true,
		RemoteSupport:   true,
	}

	buf := make([]byte, AssessmentMUS.Size(a))
	n := AssessmentMUS.Marshal(a, buf)
	require.Equal(t, len(buf), n)

	decoded, m, err := AssessmentMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.Equal(t, a, decoded)
}

func TestAssessmentMUS_UnknownDuration(t *testing.T) {
	a := Assessment{Key: "k", Name: "n", Duration: DurationUnknown}

	buf := make([]byte, AssessmentMUS.Size(a))
	AssessmentMUS.Marshal(a, buf)

	decoded, _, err := AssessmentMUS.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, DurationUnknown, decoded.Duration)
}

func TestAssessmentMUS_Truncated(t *testing.T) {
	a := Assessment{Key: "key", Name: "name"}
	buf := make([]byte, AssessmentMUS.Size(a))
	AssessmentMUS.Marshal(a, buf)

	_, _, err := AssessmentMUS.Unmarshal(buf[:2])
	assert.Error(t, err)
}
