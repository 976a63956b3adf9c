package contact

import "context"

// Result is the outcome of a Task.
type Result struct {
	Receipt Receipt
	Err     error
}

// Task is one submission running in the background.
type Task struct {
	done chan Result
}

// Start runs submit on its own goroutine. Exactly one Result is delivered
// on Done; cancelling ctx makes a well-behaved submitter return early with
// ctx.Err().
func Start(ctx context.Context, submit func(context.Context) (Receipt, error)) *Task {
	t := &Task{done: make(chan Result, 1)}
	go func() {
		receipt, err := submit(ctx)
		t.done <- Result{Receipt: receipt, Err: err}
	}()
	return t
}

func (t *Task) Done() <-chan Result {
	return t.done
}
