package digest

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
)

type fakeSource struct {
	calls chan struct{}
}

func (f *fakeSource) Summary() domain.Summary {
	select {
	case f.calls <- struct{}{}:
	default:
	}
	return domain.Summary{Completed: 1, Total: 3, Percentage: 33}
}

func TestNew_EmptySchedule(t *testing.T) {
	_, err := New("", &fakeSource{}, nil)
	assert.ErrorIs(t, err, ErrNoSchedule)
}

func TestNew_BadSchedule(t *testing.T) {
	_, err := New("every tuesday", &fakeSource{}, nil)
	assert.Error(t, err)
}

func TestRun_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d, err := New("@hourly", &fakeSource{calls: make(chan struct{}, 1)}, logger)
	require.NoError(t, err)

	d.Run()

	out := buf.String()
	assert.Contains(t, out, "msg=progress")
	assert.Contains(t, out, "completed=1")
	assert.Contains(t, out, "total=3")
	assert.Contains(t, out, "percentage=33")
	assert.Contains(t, out, "component=digest")
}

func TestStartStop_Fires(t *testing.T) {
	src := &fakeSource{calls: make(chan struct{}, 1)}
	d, err := New("@every 1s", src, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)

	d.Start()

	select {
	case <-src.calls:
	case <-time.After(3 * time.Second):
		t.Fatal("digest did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.Stop(ctx))
}
