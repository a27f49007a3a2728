package dedup

import (
	"context"

	"github.com/droverhq/drover/pkg/embedding"
)

// BatchItem pairs one input candidate with its verdict. Index is the
// candidate's position in the input list.
type BatchItem struct {
	Index     int           `json:"index"`
	Candidate TaskCandidate `json:"candidate"`
	Result    *Result       `json:"result"`
}

// BatchStats summarizes a batch verdict.
type BatchStats struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Merged  int `json:"merged"`
}

// BatchResult partitions an ordered candidate list. Input order is
// preserved within each partition.
type BatchResult struct {
	ToCreate []BatchItem `json:"to_create"`
	ToSkip   []BatchItem `json:"to_skip"`
	ToMerge  []BatchItem `json:"to_merge"`
	Stats    BatchStats  `json:"stats"`
}

// acceptedCandidate is the comparison state kept for every candidate bound
// for creation, so later batch members can be checked against it.
type acceptedCandidate struct {
	taskID    string
	hash      string
	embedding []float32
}

// CheckBatch runs single-candidate dedup per element, in order. A candidate
// that duplicates a persisted row is skipped; one that duplicates an
// earlier candidate in the same batch merges into it, since the sibling
// row does not exist yet to be skipped against.
func (s *Service) CheckBatch(ctx context.Context, candidates []TaskCandidate) (*BatchResult, error) {
	out := &BatchResult{}
	var accepted []acceptedCandidate

	for i, candidate := range candidates {
		result, err := s.CheckTask(ctx, candidate)
		if err != nil {
			return nil, err
		}
		item := BatchItem{Index: i, Candidate: candidate, Result: result}

		if result.Action == ActionSkip {
			out.ToSkip = append(out.ToSkip, item)
			continue
		}

		if sibling := s.batchMatch(candidate, result, accepted); sibling != nil {
			result.Action = ActionMerge
			result.IsDuplicate = true
			result.MatchedTaskID = sibling.taskID
			s.publishDuplicate(ctx, candidate, result)
			out.ToMerge = append(out.ToMerge, item)
			continue
		}

		accepted = append(accepted, acceptedCandidate{
			taskID:    candidate.TaskID,
			hash:      result.ContentHash,
			embedding: result.Embedding,
		})
		out.ToCreate = append(out.ToCreate, item)
	}

	out.Stats = BatchStats{
		Total:   len(candidates),
		Created: len(out.ToCreate),
		Skipped: len(out.ToSkip),
		Merged:  len(out.ToMerge),
	}
	return out, nil
}

// batchMatch compares a creation-bound candidate against the batch members
// accepted before it. Mutates result.HighestSimilarity when a closer match
// is found.
func (s *Service) batchMatch(candidate TaskCandidate, result *Result, accepted []acceptedCandidate) *acceptedCandidate {
	kind := candidate.Kind
	if kind == "" {
		kind = KindTask
	}
	threshold, semantic := s.threshold(kind)

	var match *acceptedCandidate
	for i := range accepted {
		sibling := &accepted[i]
		if sibling.hash == result.ContentHash {
			result.HighestSimilarity = 1.0
			return sibling
		}
		if !semantic || len(result.Embedding) == 0 || len(sibling.embedding) == 0 {
			continue
		}
		if sim := embedding.CosineSimilarity(result.Embedding, sibling.embedding); sim >= threshold && sim > result.HighestSimilarity {
			result.HighestSimilarity = sim
			match = sibling
		}
	}
	return match
}
