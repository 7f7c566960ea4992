package memory

import (
	"sync"
	"time"

	"github.com/omarshaarawi/ffreport/internal/models"
)

const MetadataTTL = 24 * time.Hour

// Repository holds what one process has already fetched: the league
// metadata and each week's box scores.
type Repository struct {
	metadata  *models.LeagueMetadata
	boxScores map[int][]models.BoxScore
	mu        sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{boxScores: make(map[int][]models.BoxScore)}
}

func (r *Repository) SaveMetadata(metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = metadata
}

func (r *Repository) GetMetadata() *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metadata
}

// FreshMetadata returns the stored metadata unless it is missing or older
// than MetadataTTL.
func (r *Repository) FreshMetadata(now time.Time) *models.LeagueMetadata {
	metadata := r.GetMetadata()
	if metadata == nil || now.Sub(metadata.LastUpdated) > MetadataTTL {
		return nil
	}
	return metadata
}

func (r *Repository) SaveBoxScores(week int, scores []models.BoxScore) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boxScores[week] = scores
}

func (r *Repository) GetBoxScores(week int) ([]models.BoxScore, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scores, ok := r.boxScores[week]
	return scores, ok
}
