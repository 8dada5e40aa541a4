package usecase

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_UnmarshalThreeStates(t *testing.T) {
	type payload struct {
		RecipeID Nullable[uuid.UUID] `json:"recipeId"`
	}

	recipeID := uuid.New()

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
	}{
		{name: "absent", body: `{}`, wantSet: false, wantValid: false},
		{name: "explicit null", body: `{"recipeId": null}`, wantSet: true, wantValid: false},
		{name: "value", body: `{"recipeId": "` + recipeID.String() + `"}`, wantSet: true, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantSet, p.RecipeID.Set)
			assert.Equal(t, tt.wantValid, p.RecipeID.Valid)
			if tt.wantValid {
				assert.Equal(t, recipeID, p.RecipeID.Value)
			}
		})
	}
}

func TestNullable_UnmarshalRejectsBadValue(t *testing.T) {
	var n Nullable[uuid.UUID]

	err := json.Unmarshal([]byte(`"not-a-uuid"`), &n)

	assert.Error(t, err)
}

func TestNullable_MarshalJSON(t *testing.T) {
	recipeID := uuid.New()

	data, err := json.Marshal(NewNullable(recipeID))
	require.NoError(t, err)
	assert.Equal(t, `"`+recipeID.String()+`"`, string(data))

	data, err = json.Marshal(NewNullableNull[uuid.UUID]())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
