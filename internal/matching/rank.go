package matching

import (
	"fmt"
	"io"
	"sort"
)

// Match pairs a posting with its similarity to the résumé.
type Match struct {
	Index int
	Title string
	Score float64
}

// RankJobs scores every posting against the résumé text and returns the
// top k by cosine similarity. The vectorizer is fitted on the union of
// all postings and the résumé so the vocabulary covers both sides.
func RankJobs(jobs []Job, cvText string, k int) []Match {
	if len(jobs) == 0 {
		return nil
	}

	cv := NormalizeForMatching(cvText)
	corpus := make([]string, 0, len(jobs)+1)
	for _, job := range jobs {
		corpus = append(corpus, job.Combined())
	}
	corpus = append(corpus, cv)

	vect := NewVectorizer(DefaultMaxFeatures)
	vect.Fit(corpus)
	cvVec := vect.Transform(cv)

	matches := make([]Match, len(jobs))
	for i, job := range jobs {
		matches[i] = Match{
			Index: i,
			Title: job.Title,
			Score: Cosine(vect.Transform(job.Combined()), cvVec),
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if k > 0 && len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// RenderMatches prints the shortlist in rank order.
func RenderMatches(out io.Writer, source string, matches []Match) {
	fmt.Fprintf(out, "Top %d matches for %s:\n\n", len(matches), source)
	for rank, m := range matches {
		fmt.Fprintf(out, "%d. [%d] %q - score %.3f\n", rank+1, m.Index, m.Title, m.Score)
	}
}
