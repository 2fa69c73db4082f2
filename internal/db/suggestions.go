package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/reviewpulse/reviewpulse/internal/models"
)

// ErrInvalidStatus rejects a status transition outside the recognized
// set; nothing is mutated.
var ErrInvalidStatus = errors.New("invalid suggestion status")

var validStatuses = map[string]bool{
	models.StatusPending:     true,
	models.StatusInProgress:  true,
	models.StatusImplemented: true,
	models.StatusDismissed:   true,
}

func ValidStatus(status string) bool { return validStatuses[status] }

// UpsertSuggestions stores a generation run's output, replacing rows
// that share an id. Returns how many rows were stored.
func UpsertSuggestions(ctx context.Context, suggestions []models.Suggestion) (int, error) {
	if len(suggestions) == 0 {
		return 0, nil
	}

	query := `
        INSERT INTO suggestions (id, title, description, category, priority,
            impact_score, effort_estimate, expected_outcome, action_items,
            status, generated_at, analysis_period)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (id) DO UPDATE
        SET title = EXCLUDED.title,
            description = EXCLUDED.description,
            priority = EXCLUDED.priority,
            impact_score = EXCLUDED.impact_score,
            generated_at = EXCLUDED.generated_at
    `

	saved := 0
	for _, suggestion := range suggestions {
		actionItems, err := json.Marshal(suggestion.ActionItems)
		if err != nil {
			slog.Warn("[DB] Failed to marshal action items",
				slog.String("suggestion_id", suggestion.ID),
				slog.String("error", err.Error()))
			continue
		}

		status := suggestion.Status
		if status == "" {
			status = models.StatusPending
		}

		_, err = DB.Exec(ctx, query,
			suggestion.ID, suggestion.Title, suggestion.Description,
			suggestion.Category, suggestion.Priority, suggestion.ImpactScore,
			suggestion.EffortEstimate, suggestion.ExpectedOutcome, actionItems,
			status, suggestion.GeneratedAt, suggestion.AnalysisPeriod,
		)
		if err != nil {
			slog.Error("[DB] Failed to store suggestion",
				slog.String("suggestion_id", suggestion.ID),
				slog.String("error", err.Error()))
			continue
		}
		saved++
	}

	return saved, nil
}

// ListSuggestions returns suggestions with optional status and category
// filters, ordered by priority rank then impact score.
func ListSuggestions(ctx context.Context, status, category string, limit int) ([]models.Suggestion, error) {
	query := `
        SELECT id, title, description, category, priority, impact_score,
               effort_estimate, expected_outcome, action_items, status,
               generated_at, analysis_period, COALESCE(notes, '')
        FROM suggestions
    `

	var conditions []string
	var params []interface{}

	if status != "" {
		params = append(params, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(params)))
	}
	if category != "" {
		params = append(params, category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(params)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	params = append(params, limit)
	query += fmt.Sprintf(`
        ORDER BY CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC,
                 impact_score DESC, generated_at DESC
        LIMIT $%d`, len(params))

	rows, err := DB.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("querying suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []models.Suggestion
	for rows.Next() {
		var suggestion models.Suggestion
		var actionItems []byte
		err := rows.Scan(&suggestion.ID, &suggestion.Title, &suggestion.Description,
			&suggestion.Category, &suggestion.Priority, &suggestion.ImpactScore,
			&suggestion.EffortEstimate, &suggestion.ExpectedOutcome, &actionItems,
			&suggestion.Status, &suggestion.GeneratedAt, &suggestion.AnalysisPeriod,
			&suggestion.Notes)
		if err != nil {
			return nil, fmt.Errorf("scanning suggestion row: %w", err)
		}
		if len(actionItems) > 0 {
			if err := json.Unmarshal(actionItems, &suggestion.ActionItems); err != nil {
				slog.Warn("[DB] Failed to decode action items",
					slog.String("suggestion_id", suggestion.ID),
					slog.String("error", err.Error()))
			}
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions, rows.Err()
}

// UpdateSuggestionStatus applies a status transition and appends an
// audit row recording it, with an optional note and origin identifier.
// Reports whether a suggestion row was actually updated.
func UpdateSuggestionStatus(ctx context.Context, id, status, note, origin string) (bool, error) {
	if !ValidStatus(status) {
		return false, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	tx, err := DB.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning status update: %w", err)
	}
	defer tx.Rollback(ctx)

	var query string
	switch status {
	case models.StatusImplemented:
		query = `UPDATE suggestions SET status = $1, implemented_at = NOW(), notes = $2 WHERE id = $3`
	case models.StatusDismissed:
		query = `UPDATE suggestions SET status = $1, dismissed_at = NOW(), notes = $2 WHERE id = $3`
	default:
		query = `UPDATE suggestions SET status = $1, notes = $2 WHERE id = $3`
	}

	tag, err := tx.Exec(ctx, query, status, note, id)
	if err != nil {
		return false, fmt.Errorf("updating suggestion status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO suggestion_feedback (suggestion_id, action, feedback, origin) VALUES ($1, $2, $3, $4)`,
		id, status, note, origin)
	if err != nil {
		return false, fmt.Errorf("recording suggestion feedback: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing status update: %w", err)
	}

	return true, nil
}

// PurgeSuggestions deletes terminal (implemented/dismissed) suggestions
// generated more than olderThanDays ago, along with their audit rows.
func PurgeSuggestions(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)

	tx, err := DB.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning purge: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        DELETE FROM suggestion_feedback
        WHERE suggestion_id IN (
            SELECT id FROM suggestions
            WHERE generated_at < $1 AND status IN ('dismissed', 'implemented')
        )`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging suggestion feedback: %w", err)
	}

	tag, err := tx.Exec(ctx, `
        DELETE FROM suggestions
        WHERE generated_at < $1 AND status IN ('dismissed', 'implemented')`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purging suggestions: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing purge: %w", err)
	}

	return tag.RowsAffected(), nil
}
