package matching

import (
	"math"
	"regexp"
	"sort"
)

// DefaultMaxFeatures caps the vocabulary at the most frequent terms.
const DefaultMaxFeatures = 200

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Vectorizer maps documents onto l2-normalized TF-IDF vectors over a
// vocabulary learned from a fitted corpus.
type Vectorizer struct {
	vocab       map[string]int
	idf         []float64
	maxFeatures int
}

// NewVectorizer creates an unfitted vectorizer. maxFeatures <= 0 means
// an unbounded vocabulary.
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Fit learns the vocabulary and inverse document frequencies from the
// corpus. When the vocabulary exceeds maxFeatures, the terms with the
// highest corpus-wide counts are kept, ties broken alphabetically.
func (v *Vectorizer) Fit(corpus []string) {
	totalCounts := map[string]int{}
	docFreq := map[string]int{}
	for _, doc := range corpus {
		seen := map[string]struct{}{}
		for _, term := range tokenize(doc) {
			totalCounts[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	terms := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCounts[terms[i]] != totalCounts[terms[j]] {
			return totalCounts[terms[i]] > totalCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if v.maxFeatures > 0 && len(terms) > v.maxFeatures {
		terms = terms[:v.maxFeatures]
	}
	// Vocabulary indices are alphabetical within the retained set.
	sort.Strings(terms)

	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF, never zero, so every vocabulary term
		// contributes.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform produces the document's l2-normalized TF-IDF vector. Terms
// outside the fitted vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, term := range tokenize(doc) {
		if i, ok := v.vocab[term]; ok {
			vec[i]++
		}
	}

	for i := range vec {
		vec[i] *= v.idf[i]
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Cosine returns the cosine similarity of two equal-length vectors.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// tokenize splits normalized text into terms of two or more characters
// with English stopwords removed.
func tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(NormalizeForMatching(doc), -1)
	terms := make([]string, 0, len(raw))
	for _, t := range raw {
		if _, stop := englishStopwords[t]; !stop {
			terms = append(terms, t)
		}
	}
	return terms
}
