package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func consistentState() *DBState {
	state := NewDBState()
	state.LastItemID = 4
	state.Epics[1] = Epic{Name: "E1", Status: StatusOpen, Stories: []uint32{2, 3}}
	state.Epics[4] = Epic{Name: "E2", Status: StatusClosed, Stories: []uint32{}}
	state.Stories[2] = NewStory("S1", "")
	state.Stories[3] = NewStory("S2", "")
	return state
}

func TestVerify_Consistent(t *testing.T) {
	assert.Empty(t, consistentState().Verify())
	assert.Empty(t, NewDBState().Verify())
}

func TestVerify_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *DBState)
		want   []Problem
	}{
		{
			name: "dangling reference",
			mutate: func(s *DBState) {
				delete(s.Stories, 3)
			},
			want: []Problem{{KindEpic, 1, "references missing story 3"}},
		},
		{
			name: "orphaned story",
			mutate: func(s *DBState) {
				s.Epics[1] = Epic{Name: "E1", Status: StatusOpen, Stories: []uint32{2}}
			},
			want: []Problem{{KindStory, 3, "is not listed by any epic"}},
		},
		{
			name: "story listed twice",
			mutate: func(s *DBState) {
				s.Epics[4] = Epic{Name: "E2", Status: StatusClosed, Stories: []uint32{3}}
			},
			want: []Problem{{KindStory, 3, "is listed by 2 epics [1 4]"}},
		},
		{
			name: "duplicate in one list",
			mutate: func(s *DBState) {
				s.Epics[1] = Epic{Name: "E1", Status: StatusOpen, Stories: []uint32{2, 3, 2}}
			},
			want: []Problem{{KindEpic, 1, "lists story 2 more than once"}},
		},
		{
			name: "counter behind ids",
			mutate: func(s *DBState) {
				s.LastItemID = 3
			},
			want: []Problem{{KindEpic, 4, "id exceeds last_item_id 3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := consistentState()
			tt.mutate(state)
			assert.Equal(t, tt.want, state.Verify())
		})
	}
}

func TestValidate(t *testing.T) {
	state := consistentState()
	assert.NoError(t, state.Validate())

	state.Stories[2] = Story{Name: "S1", Status: Status("Blocked")}
	assert.Error(t, state.Validate())

	state = consistentState()
	state.Epics[1] = Epic{Name: "E1", Status: Status(""), Stories: []uint32{2, 3}}
	assert.Error(t, state.Validate())
}

func TestProblem_String(t *testing.T) {
	p := Problem{Kind: KindStory, ID: 9, Message: "is not listed by any epic"}
	assert.Equal(t, "story 9 is not listed by any epic", p.String())
}
