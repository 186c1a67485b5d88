package contentindex

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/cinemood/core/internal/model"
)

const (
	DefaultTopN   = 5
	maxVocabTerms = 5000
)

// Index ranks a fixed in-memory movie corpus by textual similarity to a
// query. Documents are the concatenation of a movie's genre labels, keyword
// list and overview, vectorized as TF-IDF over unigrams and bigrams with
// English stop words removed. The corpus is static per process lifetime;
// Build is guarded so concurrent first builds construct it once, and only
// an explicit Rebuild replaces it.
type Index struct {
	buildOnce sync.Once

	mu      sync.RWMutex
	corpus  []model.MovieRecord
	vocab   map[string]int
	idf     []float64
	vectors []map[int]float64
}

func New() *Index {
	return &Index{}
}

// Build constructs the index over corpus. Subsequent calls are no-ops.
func (ix *Index) Build(corpus []model.MovieRecord) {
	ix.buildOnce.Do(func() {
		ix.rebuild(corpus)
	})
}

// Rebuild replaces the indexed corpus unconditionally.
func (ix *Index) Rebuild(corpus []model.MovieRecord) {
	ix.buildOnce.Do(func() {})
	ix.rebuild(corpus)
}

func (ix *Index) rebuild(corpus []model.MovieRecord) {
	docs := make([][]string, len(corpus))
	for i, m := range corpus {
		docs[i] = tokenize(featureText(m))
	}

	vocab := buildVocabulary(docs)

	// Smoothed IDF over the capped vocabulary.
	df := make([]int, len(vocab))
	for _, terms := range docs {
		seen := make(map[int]struct{}, len(terms))
		for _, term := range terms {
			if id, ok := vocab[term]; ok {
				seen[id] = struct{}{}
			}
		}
		for id := range seen {
			df[id]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for id, count := range df {
		idf[id] = math.Log((1+n)/(1+float64(count))) + 1
	}

	vectors := make([]map[int]float64, len(docs))
	for i, terms := range docs {
		vectors[i] = vectorize(terms, vocab, idf)
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.corpus = append([]model.MovieRecord(nil), corpus...)
	ix.vocab = vocab
	ix.idf = idf
	ix.vectors = vectors
}

// Query scores every corpus document by cosine similarity to text and
// returns the top n, descending, ties broken by corpus order. An empty or
// unbuilt corpus yields an empty result.
func (ix *Index) Query(text string, n int) []model.MovieRecord {
	if n <= 0 {
		n = DefaultTopN
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.corpus) == 0 {
		return nil
	}

	query := vectorize(tokenize(text), ix.vocab, ix.idf)
	if len(query) == 0 {
		return nil
	}

	type scored struct {
		pos   int
		score float64
	}
	hits := make([]scored, 0, len(ix.vectors))
	for pos, vec := range ix.vectors {
		if s := dot(query, vec); s > 0 {
			hits = append(hits, scored{pos: pos, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]model.MovieRecord, len(hits))
	for i, h := range hits {
		out[i] = ix.corpus[h.pos]
	}
	return out
}

// Size reports the number of indexed documents.
func (ix *Index) Size() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.corpus)
}

func featureText(m model.MovieRecord) string {
	parts := make([]string, 0, 3)
	if len(m.Genres) > 0 {
		parts = append(parts, strings.Join(m.Genres, " "))
	}
	if len(m.Keywords) > 0 {
		parts = append(parts, strings.Join(m.Keywords, " "))
	}
	if m.Overview != "" {
		parts = append(parts, m.Overview)
	}
	return strings.Join(parts, " ")
}

// tokenize lowercases, strips non-alphanumerics, drops stop words and
// emits unigrams plus adjacent bigrams.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	unigrams := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		unigrams = append(unigrams, f)
	}

	terms := make([]string, 0, 2*len(unigrams))
	terms = append(terms, unigrams...)
	for i := 0; i+1 < len(unigrams); i++ {
		terms = append(terms, unigrams[i]+" "+unigrams[i+1])
	}
	return terms
}

// buildVocabulary keeps the maxVocabTerms most frequent terms across the
// corpus, ties broken lexicographically for a deterministic vocabulary.
func buildVocabulary(docs [][]string) map[string]int {
	freq := make(map[string]int)
	for _, terms := range docs {
		for _, term := range terms {
			freq[term]++
		}
	}

	ordered := make([]string, 0, len(freq))
	for term := range freq {
		ordered = append(ordered, term)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if freq[ordered[i]] != freq[ordered[j]] {
			return freq[ordered[i]] > freq[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})
	if len(ordered) > maxVocabTerms {
		ordered = ordered[:maxVocabTerms]
	}

	vocab := make(map[string]int, len(ordered))
	for id, term := range ordered {
		vocab[term] = id
	}
	return vocab
}

// vectorize produces an L2-normalized sparse TF-IDF vector, so dot products
// between vectors are cosine similarities.
func vectorize(terms []string, vocab map[string]int, idf []float64) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range terms {
		if id, ok := vocab[term]; ok {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	var norm float64
	for id, tf := range counts {
		w := tf * idf[id]
		counts[id] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return nil
	}
	for id := range counts {
		counts[id] /= norm
	}
	return counts
}

func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for id, w := range a {
		sum += w * b[id]
	}
	return sum
}
