package utils

import (
	"context"
	"testing"
	"time"
)

func TestQueryContextDeadlines(t *testing.T) {
	ctx, cancel := DefaultQueryContext(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("expected a deadline")
	}
	if remaining := time.Until(deadline); remaining > DefaultQueryTimeout {
		t.Fatalf("deadline %v exceeds default timeout", remaining)
	}

	slowCtx, cancelSlow := SlowQueryContext(nil)
	defer cancelSlow()
	slowDeadline, ok := slowCtx.Deadline()
	if !ok {
		t.Fatal("expected a deadline from nil parent")
	}
	if !slowDeadline.After(deadline) {
		t.Fatal("slow timeout should outlast the default timeout")
	}
}
