package metrics

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	r := New()

	hooks := r.Hooks()
	hooks.OnStepEnter(context.Background(), &domain.StepEvent{Step: "file_select"})
	hooks.OnStepEnter(context.Background(), &domain.StepEvent{Step: "file_select"})
	r.LabelSet()
	r.Navigated("next")
	r.SaveFinished(10*time.Millisecond, nil)
	r.SaveFinished(time.Millisecond, errors.New("disk full"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.stepVisits.WithLabelValues("file_select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.labelsSet))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.navigations.WithLabelValues("next")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.saves.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.saves.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.saveDuration))
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.StepVisited("x")
		r.LabelSet()
		r.Navigated("prev")
		r.SaveFinished(time.Second, nil)
		r.Hooks().OnStepEnter(context.Background(), &domain.StepEvent{Step: "x"})
	})
	assert.Nil(t, r.Registry())
}

func TestHandler(t *testing.T) {
	r := New()
	r.LabelSet()
	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "labelwiz_labels_set_total 1")

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", strings.TrimSpace(string(body)))
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New().serve(ctx, ln, nil) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
