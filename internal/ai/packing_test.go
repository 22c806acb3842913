package ai_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsaathi/tripsaathi/internal/ai"
)

func validPackingJSON(t *testing.T) string {
	t.Helper()
	list := ai.PackingList{}
	for _, name := range []string{
		"Clothing", "Footwear", "Toiletries", "Medicines & First Aid",
		"Electronics", "Documents & Money", "Kids Essentials", "Miscellaneous",
	} {
		list.Categories = append(list.Categories, ai.PackingCategory{
			Name:  name,
			Items: []string{"something for " + name},
		})
	}
	b, err := json.Marshal(list)
	require.NoError(t, err)
	return string(b)
}

func sampleRequest() ai.PackingRequest {
	return ai.PackingRequest{
		Destination: "Manali",
		Duration:    6,
		NumAdults:   2,
		NumKids:     2,
		KidAges:     []int{3, 8},
		Weather:     "cold, possible snow",
	}
}

func TestGenerate_EightCategories(t *testing.T) {
	var captured string
	gen := generatorFn(func(_ context.Context, prompt string) (string, error) {
		captured = prompt
		return "```json\n" + validPackingJSON(t) + "\n```", nil
	})

	list, err := ai.NewPackingGenerator(gen).Generate(context.Background(), sampleRequest())
	require.NoError(t, err)
	require.Len(t, list.Categories, 8)
	assert.Equal(t, "Clothing", list.Categories[0].Name)
	assert.Equal(t, "Miscellaneous", list.Categories[7].Name)

	// Prompt must carry the destination advice and the kid ages.
	assert.Contains(t, captured, "Manali")
	assert.Contains(t, captured, "Warm layers")
	assert.Contains(t, captured, "ages 3, 8")
	assert.Contains(t, captured, "cold, possible snow")
}

func TestGenerate_WrongCategoryCount(t *testing.T) {
	gen := generatorFn(func(_ context.Context, _ string) (string, error) {
		return `{"categories":[{"name":"Clothing","items":["t-shirts"]}]}`, nil
	})

	_, err := ai.NewPackingGenerator(gen).Generate(context.Background(), sampleRequest())
	require.ErrorIs(t, err, ai.ErrMalformedOutput)
}

func TestGenerate_EmptyCategory(t *testing.T) {
	list := validPackingJSON(t)
	var parsed ai.PackingList
	require.NoError(t, json.Unmarshal([]byte(list), &parsed))
	parsed.Categories[3].Items = nil
	b, err := json.Marshal(parsed)
	require.NoError(t, err)

	gen := generatorFn(func(_ context.Context, _ string) (string, error) {
		return string(b), nil
	})

	_, err = ai.NewPackingGenerator(gen).Generate(context.Background(), sampleRequest())
	require.ErrorIs(t, err, ai.ErrMalformedOutput)
}

func TestGenerate_NonJSONOutput(t *testing.T) {
	gen := generatorFn(func(_ context.Context, _ string) (string, error) {
		return "Here's what I'd pack for Manali...", nil
	})

	_, err := ai.NewPackingGenerator(gen).Generate(context.Background(), sampleRequest())
	require.ErrorIs(t, err, ai.ErrMalformedOutput)
}

func TestGenerate_UnknownDestinationUsesDefaultNotes(t *testing.T) {
	var captured string
	gen := generatorFn(func(_ context.Context, prompt string) (string, error) {
		captured = prompt
		return validPackingJSON(t), nil
	})

	req := sampleRequest()
	req.Destination = "Atlantis"
	_, err := ai.NewPackingGenerator(gen).Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, captured, "Pack for variable weather")
}
