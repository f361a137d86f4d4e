package driver

import (
	"context"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"gnaw/internal/layout"
)

// FileResult содержит результат декодирования одного файла
type FileResult struct {
	Path    string
	Record  *Record
	Err     error
	Elapsed time.Duration
}

// DecodeFiles декодирует все файлы параллельно, порядок результатов
// детерминирован и совпадает с порядком paths.
func DecodeFiles(ctx context.Context, paths []string, lay *layout.Layout, jobs int, sink ProgressSink) ([]FileResult, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, path := range paths {
		emit(sink, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			emit(sink, Event{File: path, Stage: StageRead, Status: StatusWorking})

			data, err := os.ReadFile(path)
			if err != nil {
				results[i] = FileResult{Path: path, Err: err, Elapsed: time.Since(start)}
				emit(sink, Event{File: path, Stage: StageRead, Status: StatusError, Err: err, Elapsed: results[i].Elapsed})
				return nil
			}

			emit(sink, Event{File: path, Stage: StageDecode, Status: StatusWorking})
			rec, err := DecodeBytes(data, lay)
			elapsed := time.Since(start)
			results[i] = FileResult{Path: path, Record: rec, Err: err, Elapsed: elapsed}
			if err != nil {
				emit(sink, Event{File: path, Stage: StageDecode, Status: StatusError, Err: err, Elapsed: elapsed})
				return nil
			}
			emit(sink, Event{File: path, Stage: StageDecode, Status: StatusDone, Elapsed: elapsed})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
