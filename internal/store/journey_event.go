package store

import (
	"context"
	"encoding/json"
	"fmt"
)

func (r *eventRepo) AppendRoomVisit(ctx context.Context, data RoomVisitData) error {
	err := r.insertEvent(ctx, tableRoomVisits,
		[]string{"session_id", "room", "previous_room", "via"},
		[]any{data.SessionID, data.Room, data.PreviousRoom, data.Via},
	)
	if err != nil {
		return fmt.Errorf("save room visit: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	answers, err := json.Marshal(data.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	scores, err := json.Marshal(data.Scores)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	err = r.insertEvent(ctx, tableQuizResults,
		[]string{"session_id", "answers", "primary_trait", "secondary_trait", "scores"},
		[]any{data.SessionID, string(answers), data.PrimaryTrait, data.SecondaryTrait, string(scores)},
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRoomVisits(ctx context.Context, opts QueryOpts) ([]RoomVisitEvent, error) {
	query, args := selectEvents(tableRoomVisits, opts, "session_id", "room", "previous_room", "via").Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query room visits: %w", err)
	}
	defer rows.Close()

	var out []RoomVisitEvent
	for rows.Next() {
		var e RoomVisitEvent
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &e.Room, &e.PreviousRoom, &e.Via); err != nil {
			return nil, fmt.Errorf("scan room visit: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultEvent, error) {
	query, args := selectEvents(tableQuizResults, opts,
		"session_id", "answers", "primary_trait", "secondary_trait", "scores").Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResultEvent
	for rows.Next() {
		var (
			e               QuizResultEvent
			answers, scores string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &e.Timestamp,
			&e.SessionID, &answers, &e.PrimaryTrait, &e.SecondaryTrait, &scores); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		if err := json.Unmarshal([]byte(answers), &e.Answers); err != nil {
			return nil, fmt.Errorf("decode answers of result %d: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(scores), &e.Scores); err != nil {
			return nil, fmt.Errorf("decode scores of result %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) TraitDistribution(ctx context.Context) ([]TraitCount, error) {
	var out []TraitCount
	err := r.countBy(ctx, tableQuizResults, "primary_trait", func(k string, n int) {
		out = append(out, TraitCount{Trait: k, Count: n})
	})
	return out, err
}

func (r *eventRepo) RoomVisitCounts(ctx context.Context) ([]RoomCount, error) {
	var out []RoomCount
	err := r.countBy(ctx, tableRoomVisits, "room", func(k string, n int) {
		out = append(out, RoomCount{Room: k, Count: n})
	})
	return out, err
}
