package store

import (
	"fmt"

	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	tableRoomVisits  = "room_visits"
	tableQuizResults = "quiz_results"
	tableLLMEvents   = "llm_request_events"
	tableSequence    = "global_sequence"
)

// eventColumns are the leading columns every event table shares: a row id,
// the global sequence number and a UTC timestamp.
func eventColumns() []*schema.Column {
	return []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
}

// column returns the named column. Unknown names panic at init.
func column(cols []*schema.Column, name string) *schema.Column {
	for _, c := range cols {
		if c.Name == name {
			return c
		}
	}
	panic(fmt.Sprintf("store: no column %q", name))
}

// eventTable builds an event table from the shared columns plus cols,
// with a <table>_<column> index on timestamp and on each indexed column.
func eventTable(name string, cols []*schema.Column, indexed ...string) *schema.Table {
	all := append(eventColumns(), cols...)
	t := &schema.Table{
		Name:       name,
		Columns:    all,
		PrimaryKey: []*schema.Column{column(all, "id")},
	}
	for _, c := range append([]string{"timestamp"}, indexed...) {
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    name + "_" + c,
			Columns: []*schema.Column{column(all, c)},
		})
	}
	return t
}

var (
	roomVisitsTable = eventTable(tableRoomVisits, []*schema.Column{
		{Name: "session_id", Type: field.TypeString},
		{Name: "room", Type: field.TypeString},
		{Name: "previous_room", Type: field.TypeString, Default: ""},
		{Name: "via", Type: field.TypeString},
	}, "room", "session_id")

	quizResultsTable = eventTable(tableQuizResults, []*schema.Column{
		{Name: "session_id", Type: field.TypeString},
		{Name: "answers", Type: field.TypeString},
		{Name: "primary_trait", Type: field.TypeString},
		{Name: "secondary_trait", Type: field.TypeString},
		{Name: "scores", Type: field.TypeString},
	}, "primary_trait")

	llmEventsTable = eventTable(tableLLMEvents, []*schema.Column{
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}, "purpose", "success")

	sequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	sequenceTable = &schema.Table{
		Name:       tableSequence,
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{column(sequenceColumns, "id")},
	}

	// tables lists every table the migrator manages.
	tables = []*schema.Table{
		roomVisitsTable,
		quizResultsTable,
		llmEventsTable,
		sequenceTable,
	}

	// eventTables are cleared by Reset.
	eventTables = []string{tableRoomVisits, tableQuizResults, tableLLMEvents}
)
