package subway

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSegmentsMultipleTransfers(t *testing.T) {
	route := &Route{
		Path: []string{"a", "b", "c", "d", "e"},
		ArrivalLine: map[string]string{
			"b": "1",
			"c": "1",
			"d": "2",
			"e": "3",
		},
		Distance: 10,
	}

	want := []Segment{
		{Line: "1", From: "a", To: "c"},
		{Line: "2", From: "c", To: "d"},
		{Line: "3", From: "d", To: "e"},
	}
	if diff := cmp.Diff(want, route.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, []string{"c", "d"}, route.Transfers())
}

func TestSegmentsSingleLine(t *testing.T) {
	route := &Route{
		Path:        []string{"a", "b", "c"},
		ArrivalLine: map[string]string{"b": "1", "c": "1"},
		Distance:    2,
	}

	want := []Segment{{Line: "1", From: "a", To: "c"}}
	if diff := cmp.Diff(want, route.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, route.Transfers())
}

func TestSegmentsDegeneratePaths(t *testing.T) {
	require.Empty(t, (&Route{}).Segments())
	require.Empty(t, (&Route{Path: []string{"a"}}).Segments())
}
