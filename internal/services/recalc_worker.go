package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fitmate/internal/models"
	"fitmate/internal/repository"
	"fitmate/internal/scoring"
)

const recalcBatchSize = 100

// RecalcWorker runs batch recalculation jobs over all stored assessments,
// typically after a standards update. Each job re-runs the scoring engine
// on every assessment; the calculation is idempotent, so a crashed or
// repeated job only re-writes the same derived fields.
type RecalcWorker struct {
	jobRepo        repository.RecalcJobRepository
	assessmentRepo repository.AssessmentRepository
	standards      scoring.StandardsSource

	jobQueue    chan string
	workerCount int
	stopChan    chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.RWMutex
}

func NewRecalcWorker(
	jobRepo repository.RecalcJobRepository,
	assessmentRepo repository.AssessmentRepository,
	standards scoring.StandardsSource,
	workerCount int,
) *RecalcWorker {
	if workerCount <= 0 {
		workerCount = 2
	}
	return &RecalcWorker{
		jobRepo:        jobRepo,
		assessmentRepo: assessmentRepo,
		standards:      standards,
		jobQueue:       make(chan string, 10),
		workerCount:    workerCount,
		stopChan:       make(chan struct{}),
	}
}

func (w *RecalcWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.worker(i)
	}
}

func (w *RecalcWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()
}

// EnqueueJob hands a persisted job to the worker pool. Returns an error
// when the queue is full rather than blocking the request handler.
func (w *RecalcWorker) EnqueueJob(jobID string) error {
	w.mu.RLock()
	running := w.running
	w.mu.RUnlock()
	if !running {
		return fmt.Errorf("recalc worker is not running")
	}

	select {
	case w.jobQueue <- jobID:
		return nil
	default:
		return fmt.Errorf("recalc queue is full")
	}
}

func (w *RecalcWorker) worker(id int) {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopChan:
			return
		case jobID := <-w.jobQueue:
			log.Printf("Recalc worker %d picked up job %s", id, jobID)
			w.processJob(jobID)
		}
	}
}

func (w *RecalcWorker) processJob(jobID string) {
	job, err := w.jobRepo.GetJobByID(jobID)
	if err != nil {
		log.Printf("Recalc job %s not found: %v", jobID, err)
		return
	}

	total, err := w.assessmentRepo.Count()
	if err != nil {
		w.failJob(job, fmt.Errorf("failed to count assessments: %w", err))
		return
	}

	job.Status = models.JobStatusRunning
	job.Total = int(total)
	if err := w.jobRepo.UpdateJob(job); err != nil {
		log.Printf("Failed to mark job %s running: %v", jobID, err)
	}

	// One memoized standards view per batch keeps every assessment in the
	// run scored against the same thresholds.
	engine := scoring.NewEngine(scoring.NewCachedSource(w.standards))

	processed, failed := 0, 0
	for offset := 0; ; offset += recalcBatchSize {
		select {
		case <-w.stopChan:
			w.failJob(job, fmt.Errorf("worker stopped mid-run"))
			return
		default:
		}

		batch, err := w.assessmentRepo.FindBatch(offset, recalcBatchSize)
		if err != nil {
			w.failJob(job, fmt.Errorf("failed to load assessment batch: %w", err))
			return
		}
		if len(batch) == 0 {
			break
		}

		for i := range batch {
			assessment := &batch[i]
			if err := engine.CalculateScores(assessment); err != nil {
				log.Printf("Recalc of assessment %d failed: %v", assessment.ID, err)
				failed++
				continue
			}
			if err := w.assessmentRepo.Update(assessment); err != nil {
				log.Printf("Failed to store recalculated assessment %d: %v", assessment.ID, err)
				failed++
				continue
			}
			processed++
		}

		job.Processed = processed
		job.Failed = failed
		if err := w.jobRepo.UpdateJob(job); err != nil {
			log.Printf("Failed to update job %s progress: %v", jobID, err)
		}
	}

	now := time.Now()
	job.Status = models.JobStatusCompleted
	job.Processed = processed
	job.Failed = failed
	job.CompletedAt = &now
	if err := w.jobRepo.UpdateJob(job); err != nil {
		log.Printf("Failed to complete job %s: %v", jobID, err)
		return
	}
	log.Printf("Recalc job %s completed: %d processed, %d failed", jobID, processed, failed)
}

func (w *RecalcWorker) failJob(job *models.RecalcJob, cause error) {
	now := time.Now()
	msg := cause.Error()
	job.Status = models.JobStatusFailed
	job.ErrorMessage = &msg
	job.CompletedAt = &now
	if err := w.jobRepo.UpdateJob(job); err != nil {
		log.Printf("Failed to mark job %s failed: %v", job.ID, err)
	}
}
