package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PassTask represents one full-image pass for the worker pool
type PassTask struct {
	PassNumber int   // 0-based pass index, used for deterministic merge order
	Seed       int64 // Seed of the pass's private random stream
}

// PassResult contains the framebuffer produced by one pass
type PassResult struct {
	PassNumber int
	Buffer     *Framebuffer
	Duration   time.Duration
}

// WorkerPool manages parallel pass rendering
type WorkerPool struct {
	taskQueue   chan PassTask
	resultQueue chan PassResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual pass rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan PassTask
	resultQueue chan PassResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks sizes the queues so submitting never blocks.
func NewWorkerPool(raytracer *Raytracer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if maxTasks < 1 {
		maxTasks = 1
	}

	wp := &WorkerPool{
		taskQueue:   make(chan PassTask, maxTasks),
		resultQueue: make(chan PassResult, maxTasks),
		numWorkers:  numWorkers,
	}

	// The raytracer is read-only during rendering and shared by all workers
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a pass task to the worker pool
func (wp *WorkerPool) SubmitTask(task PassTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed pass result
func (wp *WorkerPool) GetResult() (PassResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		start := time.Now()

		// Each pass owns its random stream; nothing is shared between goroutines
		sampler := core.NewSeededSampler(task.Seed)
		buffer := w.raytracer.RenderPass(sampler)

		w.resultQueue <- PassResult{
			PassNumber: task.PassNumber,
			Buffer:     buffer,
			Duration:   time.Since(start),
		}
	}
}
