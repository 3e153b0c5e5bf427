package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func states(ss []TimelineStep) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, s.Status+":"+s.State)
	}
	return out
}

func TestTimeline(t *testing.T) {
	r := Request{Kind: KindBorrow, Status: StatusPending, CreatedAt: t0}
	assert.Equal(t, []string{
		"pending:current", "approved:upcoming", "active:upcoming", "returned:upcoming",
	}, states(Timeline(&r)))

	require.NoError(t, r.Transition(StatusApproved, day(1), "", ""))
	require.NoError(t, r.Transition(StatusActive, day(2), "", ""))
	steps := Timeline(&r)
	assert.Equal(t, []string{
		"pending:done", "approved:done", "active:current", "returned:upcoming",
	}, states(steps))
	require.NotNil(t, steps[1].At)
	assert.Equal(t, day(1), *steps[1].At)
	assert.Nil(t, steps[3].At)

	require.NoError(t, r.Transition(StatusReturned, day(3), "", ""))
	assert.Equal(t, []string{
		"pending:done", "approved:done", "active:done", "returned:done",
	}, states(Timeline(&r)))
}

func TestTimelineRejected(t *testing.T) {
	r := Request{Kind: KindBorrow, Status: StatusPending, CreatedAt: t0}
	require.NoError(t, r.Transition(StatusRejected, day(1), "", ""))

	assert.Equal(t, []string{"pending:done", "rejected:failed"}, states(Timeline(&r)))
}

func TestTimelineReturnKind(t *testing.T) {
	r := Request{Kind: KindReturn, Status: StatusApproved, CreatedAt: t0}

	assert.Equal(t, []string{
		"pending:done", "approved:current", "returned:upcoming",
	}, states(Timeline(&r)))
}
