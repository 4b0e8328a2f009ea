package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectResult_MarshalJSON(t *testing.T) {
	t.Run("Validity only", func(t *testing.T) {
		body, err := json.Marshal(SubjectResult{Mrn: "222", Valid: false})
		require.NoError(t, err)
		assert.Equal(t, `{"mrn":"222","valid":false}`, string(body))
	})

	t.Run("Demographics keep field order", func(t *testing.T) {
		result := SubjectResult{
			Mrn:   "111",
			Valid: true,
			Demographics: []DemographicsField{
				{Name: "mrn", Value: "111"},
				{Name: "lastName", Value: "B"},
				{Name: "firstName", Value: "A"},
				{Name: "race", Value: nil},
			},
		}
		body, err := json.Marshal(result)
		require.NoError(t, err)
		assert.Equal(t, `{"mrn":"111","valid":true,"lastName":"B","firstName":"A","race":null}`, string(body))
	})

	t.Run("Escapes keys and values", func(t *testing.T) {
		result := SubjectResult{
			Mrn:          `1"1`,
			Valid:        true,
			Demographics: []DemographicsField{{Name: `la"st`, Value: "O'Brien\n"}},
		}
		body, err := json.Marshal(result)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, `1"1`, decoded["mrn"])
		assert.Equal(t, "O'Brien\n", decoded[`la"st`])
	})
}

func TestLookupResponse(t *testing.T) {
	response := NewLookupResponse(3)
	response.Set("222", SubjectResult{Mrn: "222"})
	response.Set("111", SubjectResult{Mrn: "111", Valid: true})
	response.Set("222", SubjectResult{Mrn: "222", Valid: true})

	assert.Equal(t, []string{"222", "111"}, response.Keys())
	assert.Equal(t, 2, response.Len())
	assert.Equal(t, 2, response.ValidCount())

	result, ok := response.Get("222")
	require.True(t, ok)
	assert.True(t, result.Valid)

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Equal(t, `{"222":{"mrn":"222","valid":true},"111":{"mrn":"111","valid":true}}`, string(body))

	empty, err := json.Marshal(NewLookupResponse(0))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}
