// Package pipeline sequences one scrape invocation:
// fetch → locate → normalize → persist.
// Stages run linearly and the first failure is terminal; outcomes map to
// the status/body result shape the event trigger expects.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/docscrape/core"
	"github.com/gaurav-prasanna/docscrape/store"
)

// Result bodies, per stage. Stage identity is the only internal detail
// the invocation result exposes.
const (
	bodyMissingURL   = "URL is required"
	bodyFetchFailed  = "An error occurred while fetching page content"
	bodyLocateFailed = "An error occurred while locating primary section content"
	bodyRenderFailed = "An error occurred while processing primary section content"
	bodyStoreFailed  = "An error occurred while saving markdown data"
	bodyHashFailed   = "An error occurred while generating and saving hash"
	bodySuccess      = "Scraping completed"
)

// Pipeline wires the scrape stages together for single-URL invocations.
// Instances are safe for concurrent use: invocations share no mutable
// state beyond the overwrite-safe keyed writes in the two stores.
type Pipeline struct {
	fetcher    core.Fetcher
	locator    core.Locator
	normalizer core.Normalizer
	blobs      core.BlobStore
	hashes     core.HashStore
	baseURL    string
	log        *zap.Logger
}

// New creates a Pipeline. baseURL is the docs prefix stripped when
// deriving object keys.
func New(
	fetcher core.Fetcher,
	locator core.Locator,
	normalizer core.Normalizer,
	blobs core.BlobStore,
	hashes core.HashStore,
	baseURL string,
	log *zap.Logger,
) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		locator:    locator,
		normalizer: normalizer,
		blobs:      blobs,
		hashes:     hashes,
		baseURL:    baseURL,
		log:        log,
	}
}

// Run processes one event and maps the outcome to an invocation result.
// A missing URL is rejected before any stage runs.
func (p *Pipeline) Run(ctx context.Context, event core.Event) core.Result {
	if event.URL == "" {
		return core.Result{StatusCode: http.StatusBadRequest, Body: bodyMissingURL}
	}

	p.log.Info("scraping url", zap.String("url", event.URL))

	err := p.scrape(ctx, event.URL)
	if err == nil {
		p.log.Info("scraping completed", zap.String("url", event.URL))
		return core.Result{StatusCode: http.StatusOK, Body: bodySuccess}
	}

	var stageErr *core.StageError
	if !errors.As(err, &stageErr) {
		// Every path in scrape tags its error; treat anything else as
		// a normalize-stage failure rather than leaking detail.
		p.log.Error("scrape failed", zap.String("url", event.URL), zap.Error(err))
		return core.Result{StatusCode: http.StatusInternalServerError, Body: bodyRenderFailed}
	}

	p.log.Error("scrape failed",
		zap.String("url", event.URL),
		zap.String("stage", string(stageErr.Stage)),
		zap.Error(stageErr.Err),
	)
	return core.Result{StatusCode: http.StatusInternalServerError, Body: bodyFor(stageErr.Stage)}
}

// scrape runs the stages in order, short-circuiting on the first error.
func (p *Pipeline) scrape(ctx context.Context, url string) error {
	fetched, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return core.NewStageError(core.StageFetch, err)
	}

	section, err := p.locator.Locate(fetched.HTML)
	if err != nil {
		return core.NewStageError(core.StageLocate, err)
	}
	p.log.Debug("primary section located", zap.String("url", url))

	markdown, err := p.normalizer.Normalize(section)
	if err != nil {
		return core.NewStageError(core.StageNormalize, err)
	}

	// The hash covers the exact persisted bytes; it exists to detect
	// changes in the stored artifact, not the source HTML.
	data := []byte(markdown)
	digest := sha256.Sum256(data)
	hexDigest := hex.EncodeToString(digest[:])

	key := store.KeyFromURL(p.baseURL, url)
	if err := p.blobs.Put(ctx, key, data); err != nil {
		return core.NewStageError(core.StageStore, err)
	}
	p.log.Info("markdown stored", zap.String("url", url), zap.String("key", key))

	if err := p.hashes.Record(ctx, url, hexDigest); err != nil {
		// The artifact write is already committed and the stores offer
		// no cross-store transaction, so report the partial state
		// instead of attempting a rollback.
		p.log.Warn("hash record failed after markdown was stored",
			zap.String("url", url),
			zap.String("key", key),
		)
		return core.NewStageError(core.StageHash, err)
	}
	p.log.Info("hash recorded", zap.String("url", url), zap.String("hash", hexDigest))

	return nil
}

// bodyFor maps a stage to its user-visible failure body.
func bodyFor(stage core.Stage) string {
	switch stage {
	case core.StageFetch:
		return bodyFetchFailed
	case core.StageLocate:
		return bodyLocateFailed
	case core.StageNormalize:
		return bodyRenderFailed
	case core.StageStore:
		return bodyStoreFailed
	case core.StageHash:
		return bodyHashFailed
	default:
		return bodyRenderFailed
	}
}
