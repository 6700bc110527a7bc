package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQueryCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("observe_test"))

	ObserveQuery("observe_test", 5*time.Millisecond, nil)
	assert.Equal(t, before, testutil.ToFloat64(DBQueryErrors.WithLabelValues("observe_test")))

	ObserveQuery("observe_test", 5*time.Millisecond, errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("observe_test")))
}
