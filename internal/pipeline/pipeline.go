// Package pipeline drives inference outputs from the blob store through
// classification and mapping into the report store. Each object is handled
// independently so one malformed record cannot block the rest of a batch.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hospitech/fcproc/internal/blobstore"
	"github.com/hospitech/fcproc/internal/events"
	"github.com/hospitech/fcproc/internal/fcform"
	"github.com/hospitech/fcproc/internal/model"
	"github.com/hospitech/fcproc/internal/store"
)

// outputSuffix marks the async inference result objects; anything else in
// the bucket (manifests, failure markers) is ignored.
const outputSuffix = ".out"

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// BatchError reports the objects that failed after a whole batch was
// attempted.
type BatchError struct {
	Keys []string
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("failed to process %d record(s): %s", len(e.Keys), strings.Join(e.Keys, ", "))
}

// Processor turns raw inference outputs into stored reports.
type Processor struct {
	Blobs   blobstore.Store
	Reports store.ReportStore
	Jobs    store.JobStore
	Log     zerolog.Logger
}

func New(blobs blobstore.Store, reports store.ReportStore, jobs store.JobStore, log zerolog.Logger) *Processor {
	return &Processor{Blobs: blobs, Reports: reports, Jobs: jobs, Log: log}
}

// ProcessObject runs a single output object through fetch, classify, map,
// and store. A record whose report is already stored is treated as a
// duplicate delivery and succeeds without writing.
func (p *Processor) ProcessObject(ctx context.Context, bucket, key string) error {
	jobID := fcform.JobIDFromKey(key)
	log := p.Log.With().
		Str("job_id", jobID).
		Str("bucket", bucket).
		Str("key", key).
		Logger()

	// Phase 1: fetch
	log.Info().Msg("reading inference output")
	raw, err := p.Blobs.Get(ctx, bucket, key)
	if err != nil {
		return &PipelineError{Phase: "fetch", Err: err}
	}

	// Phase 2: decode
	var rec model.InferenceOutput
	if err := json.Unmarshal(raw, &rec); err != nil {
		return &PipelineError{Phase: "decode", Err: err}
	}

	// FA lookup failures degrade to a report without an FA number; the
	// record itself still goes through.
	fa, err := p.Jobs.FANumber(ctx, jobID)
	if err != nil {
		log.Warn().Err(err).Msg("fa number lookup failed")
		fa = nil
	} else if fa != nil {
		log.Info().Str("fa_number", *fa).Msg("resolved fa number")
	}

	// Phase 3: classify and map
	tmpl := fcform.SelectTemplate(&rec)
	log.Info().
		Int("template_id", tmpl.ID).
		Str("template_name", tmpl.Name).
		Msg("template determined")

	report := fcform.BuildReport(&rec, tmpl, key, fa)

	// Phase 4: store
	if err := p.Reports.PutIfAbsent(ctx, report); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			log.Info().Msg("duplicate event, report already stored, skipping")
			return nil
		}
		return &PipelineError{Phase: "store", Err: err}
	}

	log.Info().Msg("report stored")
	return nil
}

// ProcessBatch processes every output object in a batch, isolating
// failures per record. The summary counts all records attempted; the
// returned error is nil only when every record succeeded.
func (p *Processor) ProcessBatch(ctx context.Context, refs []events.ObjectRef) (*model.ProcessSummary, error) {
	start := time.Now()
	batchID := uuid.NewString()
	log := p.Log.With().Str("batch_id", batchID).Logger()

	summary := &model.ProcessSummary{BatchID: batchID}
	var failed []string

	for _, ref := range refs {
		if !strings.HasSuffix(ref.Key, outputSuffix) {
			log.Info().Str("key", ref.Key).Msg("skipping non-output object")
			summary.Skipped++
			continue
		}

		if err := p.ProcessObject(ctx, ref.Bucket, ref.Key); err != nil {
			log.Error().Err(err).
				Str("bucket", ref.Bucket).
				Str("key", ref.Key).
				Msg("record failed")
			failed = append(failed, ref.Key)
			continue
		}
		summary.Processed++
	}

	summary.Failed = len(failed)
	summary.FailedKeys = failed
	summary.Duration = time.Since(start)

	log.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Str("duration", summary.Duration.String()).
		Msg("batch complete")

	if len(failed) > 0 {
		return summary, &BatchError{Keys: failed}
	}
	return summary, nil
}
