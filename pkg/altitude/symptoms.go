package altitude

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/altitude-guard/pkg/common"
	"liyu1981.xyz/altitude-guard/pkg/models"
	"liyu1981.xyz/altitude-guard/pkg/store"
)

const (
	SymptomLogWindow = 72 * time.Hour

	amsRiskScore   = 3
	amsUrgentScore = 6
)

var criticalSymptoms = map[models.SymptomKind]bool{
	models.SymptomHeadache:          true,
	models.SymptomNausea:            true,
	models.SymptomVomiting:          true,
	models.SymptomConfusion:         true,
	models.SymptomShortnessOfBreath: true,
}

func SymptomWeight(kind models.SymptomKind) int {
	if criticalSymptoms[kind] {
		return 2
	}
	return 1
}

// SeverityScore sums severity*weight over reported symptoms. Zero and
// negative severities contribute nothing.
func SeverityScore(symptoms map[models.SymptomKind]int) int {
	score := 0
	for kind, severity := range symptoms {
		if severity > 0 {
			score += severity * SymptomWeight(kind)
		}
	}
	return score
}

type symptomStore struct {
	mu   sync.RWMutex
	repo *store.Repository[[]models.SymptomLog]
	logs []models.SymptomLog
}

func newSymptomStore(ctx context.Context, repo *store.Repository[[]models.SymptomLog]) *symptomStore {
	logs := repo.Load(ctx)
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp < logs[j].Timestamp })
	return &symptomStore{repo: repo, logs: logs}
}

func (s *symptomStore) Append(ctx context.Context, log models.SymptomLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := append(append([]models.SymptomLog{}, s.logs...), log)
	if err := s.repo.Save(ctx, logs); err != nil {
		return err
	}
	s.logs = logs
	return nil
}

func (s *symptomStore) Latest() (models.SymptomLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.logs) == 0 {
		return models.SymptomLog{}, false
	}
	return s.logs[len(s.logs)-1], true
}

func (s *symptomStore) Since(fromMillis int64) []models.SymptomLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.SymptomLog{}
	for _, l := range s.logs {
		if l.Timestamp >= fromMillis {
			out = append(out, l)
		}
	}
	return out
}

// LogSymptoms records one checklist at the current altitude (0 when unknown)
// and raises an AMS risk notification when the score warrants it.
func (e *Engine) LogSymptoms(ctx context.Context, symptoms map[models.SymptomKind]int, notes string) (models.SymptomLog, error) {
	logger := common.GetCategoryLogger(common.LoggerNameAltitudeCore, common.LoggerCategorySymptom)

	if err := models.ValidateSymptoms(symptoms); err != nil {
		return models.SymptomLog{}, err
	}

	entry := models.SymptomLog{
		ID:        uuid.NewString(),
		Timestamp: e.nowMillis(),
		Symptoms:  maps.Clone(symptoms),
		Notes:     notes,
	}
	if entry.Symptoms == nil {
		entry.Symptoms = map[models.SymptomKind]int{}
	}
	if latest, ok := e.History.Latest(); ok {
		entry.Altitude = latest.Altitude
		entry.Location = &models.Location{Latitude: latest.Latitude, Longitude: latest.Longitude}
	}

	if err := e.Symptoms.Append(ctx, entry); err != nil {
		return models.SymptomLog{}, fmt.Errorf("save symptom log: %w", err)
	}

	score := SeverityScore(entry.Symptoms)
	logger.Info("Symptoms logged", zap.String("id", entry.ID), zap.Int("score", score), zap.Float64("altitude", entry.Altitude))

	if score >= amsRiskScore && e.Settings().NotificationsEnabled {
		e.dispatch(ctx, titleAMSRisk, amsRiskBody(score, entry.Altitude), score >= amsUrgentScore)
	}

	return entry, nil
}

func amsRiskBody(score int, altitude float64) string {
	if score >= amsUrgentScore {
		return fmt.Sprintf("Severe symptoms (score %d) at %.0f m. Descend and seek medical help.", score, altitude)
	}
	return fmt.Sprintf("Symptoms of altitude sickness (score %d) at %.0f m. Stop ascending and rest.", score, altitude)
}

// GetSymptomLogs returns logs of the last hoursBack hours, oldest first.
// A non-positive hoursBack uses the 72 hour default.
func (e *Engine) GetSymptomLogs(hoursBack float64) []models.SymptomLog {
	window := SymptomLogWindow
	if hoursBack > 0 {
		window = time.Duration(hoursBack * float64(time.Hour))
	}
	return e.Symptoms.Since(e.Now().Add(-window).UnixMilli())
}
