package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerValue_UnmarshalString(t *testing.T) {
	var a AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`"warm and honest"`), &a))
	assert.False(t, a.IsList())
	assert.Equal(t, "warm and honest", a.Text)
}

func TestAnswerValue_UnmarshalList(t *testing.T) {
	var a AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`["one","two"]`), &a))
	assert.True(t, a.IsList())
	assert.Equal(t, []string{"one", "two"}, a.Choices)
}

func TestAnswerValue_UnmarshalEmptyList(t *testing.T) {
	var a AnswerValue
	require.NoError(t, json.Unmarshal([]byte(`[]`), &a))
	assert.True(t, a.IsList())
	assert.True(t, a.IsEmpty())
}

func TestAnswerValue_UnmarshalRejectsOtherShapes(t *testing.T) {
	var a AnswerValue
	err := json.Unmarshal([]byte(`{"nested":"object"}`), &a)
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	err = json.Unmarshal([]byte(`42`), &a)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestAnswerValue_MarshalRoundTrip(t *testing.T) {
	data, err := json.Marshal(TextAnswer("porch stories"))
	require.NoError(t, err)
	assert.JSONEq(t, `"porch stories"`, string(data))

	data, err = json.Marshal(ChoicesAnswer("a", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(data))
}

func TestAnswerValue_EmptyListKeepsKindAcrossRoundTrip(t *testing.T) {
	data, err := json.Marshal(ChoicesAnswer())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	var a AnswerValue
	require.NoError(t, json.Unmarshal(data, &a))
	assert.True(t, a.IsList())
	assert.True(t, a.IsEmpty())
}

func TestAnswerValue_Display(t *testing.T) {
	assert.Equal(t, "—", TextAnswer("").Display())
	assert.Equal(t, "—", TextAnswer("   ").Display())
	assert.Equal(t, "—", ChoicesAnswer().Display())
	assert.Equal(t, "a, b", ChoicesAnswer("a", "b").Display())
	assert.Equal(t, "just text", TextAnswer("just text").Display())
}

func TestSessionConfirmed(t *testing.T) {
	s := &Session{}
	assert.False(t, s.Confirmed())

	s.ProjectID = "20260830_101500"
	assert.False(t, s.Confirmed())

	s.Questions = &QuestionSet{}
	assert.True(t, s.Confirmed())
}
