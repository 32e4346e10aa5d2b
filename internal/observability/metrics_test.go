package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupAndRemoval(t *testing.T) {
	beforeSignup := testutil.ToFloat64(signupCounter.WithLabelValues(OutcomeConflict))
	beforeRemoval := testutil.ToFloat64(removalCounter.WithLabelValues(OutcomeNotSignedUp))

	RecordSignup(OutcomeConflict)
	RecordSignup(OutcomeConflict)
	RecordRemoval(OutcomeNotSignedUp)

	require.Equal(t, beforeSignup+2, testutil.ToFloat64(signupCounter.WithLabelValues(OutcomeConflict)))
	require.Equal(t, beforeRemoval+1, testutil.ToFloat64(removalCounter.WithLabelValues(OutcomeNotSignedUp)))
}

func TestRecordPublishFailure(t *testing.T) {
	before := testutil.ToFloat64(eventPublishFailures)
	RecordPublishFailure()
	require.Equal(t, before+1, testutil.ToFloat64(eventPublishFailures))
}

func TestObserveHTTP(t *testing.T) {
	ObserveHTTP("GET", "/activities", 200, 15*time.Millisecond)
	require.GreaterOrEqual(t, testutil.CollectAndCount(httpDuration), 1)
}
