package pool

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

func TestRunAll(Te *testing.T) {
	P := New(4)
	if P.Workers() != 4 {
		Te.Errorf("expected 4 workers, got %d", P.Workers())
	}
	var ran int64
	tasks := make([]Task, 100)
	for i := range tasks {
		tasks[i] = func() error {
			atomic.AddInt64(&ran, 1)
			return nil
		}
	}
	if err := P.RunAll(tasks); err != nil {
		Te.Error(err)
	}
	if ran != 100 {
		Te.Errorf("expected 100 tasks to run, got %d", ran)
	}
	//a pool is reusable
	if err := P.RunAll(tasks); err != nil {
		Te.Error(err)
	}
	if ran != 200 {
		Te.Errorf("expected 200 runs after the second batch, got %d", ran)
	}
}

func TestFirstError(Te *testing.T) {
	P := New(3)
	bad := errors.New("task 13 went wrong")
	var ran int64
	tasks := make([]Task, 50)
	for i := range tasks {
		i := i
		tasks[i] = func() error {
			atomic.AddInt64(&ran, 1)
			if i == 13 {
				return bad
			}
			return nil
		}
	}
	err := P.RunAll(tasks)
	if err == nil {
		Te.Fatal("expected the failing task's error")
	}
	//no cancellation: all tasks run even when one fails
	if ran != 50 {
		Te.Errorf("expected all 50 tasks to run, got %d", ran)
	}
	fmt.Println("expected error:", err)
}

func TestSmallBatch(Te *testing.T) {
	//more workers than tasks
	P := New(16)
	var ran int64
	tasks := []Task{
		func() error { atomic.AddInt64(&ran, 1); return nil },
		func() error { atomic.AddInt64(&ran, 1); return nil },
	}
	if err := P.RunAll(tasks); err != nil {
		Te.Error(err)
	}
	if ran != 2 {
		Te.Errorf("expected 2 runs, got %d", ran)
	}
	if err := P.RunAll(nil); err != nil {
		Te.Error("an empty batch should be a no-op")
	}
	if New(0).Workers() < 1 {
		Te.Error("a non-positive size should fall back to the CPU count")
	}
}
