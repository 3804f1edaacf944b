package matching

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorizerFitTransform(t *testing.T) {
	corpus := []string{
		"go backend services",
		"frontend javascript applications",
		"go distributed systems",
	}

	v := NewVectorizer(0)
	v.Fit(corpus)

	vec := v.Transform("go backend")
	require.Len(t, vec, len(v.vocab))

	// The vector is l2-normalized.
	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)

	// Terms outside the corpus vocabulary contribute nothing.
	assert.Equal(t, make([]float64, len(v.vocab)), v.Transform("rust embedded"))
}

func TestVectorizerMaxFeatures(t *testing.T) {
	corpus := []string{
		"alpha alpha alpha beta beta gamma",
		"alpha beta delta",
	}

	v := NewVectorizer(2)
	v.Fit(corpus)

	// Only the two highest-count terms survive.
	assert.Len(t, v.vocab, 2)
	assert.Contains(t, v.vocab, "alpha")
	assert.Contains(t, v.vocab, "beta")
}

func TestTokenizeDropsStopwords(t *testing.T) {
	terms := tokenize("the quick fox is in the yard")
	assert.Equal(t, []string{"quick", "fox", "yard"}, terms)
}

func TestTokenizeDropsSingleCharacters(t *testing.T) {
	terms := tokenize("a b go c")
	assert.Equal(t, []string{"go"}, terms)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}), 1e-9)
}

func TestRankJobs(t *testing.T) {
	jobs := []Job{
		{Title: "Go Backend Engineer", Description: "build go services with postgresql and kubernetes"},
		{Title: "Graphic Designer", Description: "design posters and illustrations in photoshop"},
		{Title: "Platform Engineer", Description: "kubernetes go infrastructure automation"},
	}
	cv := "experienced go engineer, kubernetes and postgresql services"

	matches := RankJobs(jobs, cv, 2)
	require.Len(t, matches, 2)
	assert.NotEqual(t, "Graphic Designer", matches[0].Title)
	assert.NotEqual(t, "Graphic Designer", matches[1].Title)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
}

func TestRankJobsEmpty(t *testing.T) {
	assert.Nil(t, RankJobs(nil, "anything", 5))
}

func TestRenderMatches(t *testing.T) {
	var buf bytes.Buffer
	RenderMatches(&buf, "resume.pdf", []Match{
		{Index: 2, Title: "Platform Engineer", Score: 0.731},
		{Index: 0, Title: "Go Backend Engineer", Score: 0.540},
	})

	out := buf.String()
	assert.Contains(t, out, "Top 2 matches for resume.pdf:")
	assert.Contains(t, out, `1. [2] "Platform Engineer" - score 0.731`)
	assert.Contains(t, out, `2. [0] "Go Backend Engineer" - score 0.540`)
}
