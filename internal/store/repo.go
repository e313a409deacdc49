package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	SessionID string    // exact match when set
}

// RoomVisitData is one room change during a visit.
type RoomVisitData struct {
	SessionID    string
	Room         string
	PreviousRoom string
	Via          string // jump, step
}

// RoomVisitEvent is a stored room change.
type RoomVisitEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	RoomVisitData
}

// QuizResultData is one completed quiz.
type QuizResultData struct {
	SessionID      string
	Answers        []int
	PrimaryTrait   string
	SecondaryTrait string
	Scores         map[string]int
}

// QuizResultEvent is a stored quiz result.
type QuizResultEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	QuizResultData
}

// TraitCount is how often a trait came out on top.
type TraitCount struct {
	Trait string `json:"trait"`
	Count int    `json:"count"`
}

// RoomCount is how often a room was entered.
type RoomCount struct {
	Room  string `json:"room"`
	Count int    `json:"count"`
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls sharing a purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMRecorder appends LLM audit events.
type LLMRecorder interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// JourneyRecorder appends visit events.
type JourneyRecorder interface {
	AppendRoomVisit(ctx context.Context, data RoomVisitData) error
	AppendQuizResult(ctx context.Context, data QuizResultData) error
}

// EventRepo provides append and query access to all events.
type EventRepo interface {
	LLMRecorder
	JourneyRecorder

	QueryRoomVisits(ctx context.Context, opts QueryOpts) ([]RoomVisitEvent, error)
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResultEvent, error)
	TraitDistribution(ctx context.Context) ([]TraitCount, error)
	RoomVisitCounts(ctx context.Context) ([]RoomCount, error)

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	// GetLLMEvent returns nil when no event has the given id.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}
