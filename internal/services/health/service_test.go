package health

import (
	"context"
	"errors"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestStatusWithoutDatabase(t *testing.T) {
	st := NewService("memory", "local", nil).Status(context.Background())
	if !st.OK || st.Database != "" || st.Storage != "memory" {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestStatusReportsDatabase(t *testing.T) {
	up := NewService("postgres", "s3", pingFunc(func(context.Context) error { return nil }))
	if st := up.Status(context.Background()); !st.OK || st.Database != "up" {
		t.Fatalf("unexpected status: %+v", st)
	}

	down := NewService("postgres", "s3", pingFunc(func(context.Context) error { return errors.New("refused") }))
	if st := down.Status(context.Background()); st.OK || st.Database != "down" {
		t.Fatalf("unexpected status: %+v", st)
	}
}
