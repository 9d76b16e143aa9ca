package matching

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"github.com/james-bowman/nlp/measures/pairwise"
	"gonum.org/v1/gonum/mat"

	"github.com/whytorch/travel-planner-api/internal/types"
)

// bestMatch scores the newcomer's preference text against every candidate
// using TF-IDF weighted cosine similarity and returns the highest scoring
// candidate. Returns a nil match when there are no candidates.
func bestMatch(newcomer types.TouristProfile, candidates []types.TouristProfile) (*types.TouristProfile, float64, error) {
	if len(candidates) == 0 {
		return nil, 0, nil
	}

	docs := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		docs = append(docs, c.FeatureText())
	}
	docs = append(docs, newcomer.FeatureText())

	pipeline := nlp.NewPipeline(nlp.NewCountVectoriser(), nlp.NewTfidfTransformer())
	tfidf, err := pipeline.FitTransform(docs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to vectorise tourist profiles: %w", err)
	}

	rows, cols := tfidf.Dims()
	query := mat.NewVecDense(rows, mat.Col(nil, cols-1, tfidf))

	bestIdx := -1
	bestScore := -1.0
	for j := 0; j < cols-1; j++ {
		candidate := mat.NewVecDense(rows, mat.Col(nil, j, tfidf))
		score := pairwise.CosineSimilarity(query, candidate)
		if score > bestScore {
			bestIdx = j
			bestScore = score
		}
	}

	match := candidates[bestIdx]
	return &match, bestScore, nil
}
