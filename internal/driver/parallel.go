package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// DirRequest configures a directory-wide scanning pass.
type DirRequest struct {
	Dir            string
	MaxDiagnostics int
	Jobs           int          // <= 0 means GOMAXPROCS
	Progress       ProgressSink // optional
}

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // Путь к файлу
	FileID source.FileID // ID файла в FileSet
	Tokens []token.Token // Токены файла
	Bag    *diag.Bag     // Диагностики
	Loaded bool          // false, если файл не удалось прочитать
}

// ListSourceFiles возвращает отсортированный список всех *.lox файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lox") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все *.lox файлы в директории параллельно.
// Таблица ключевых слов неизменяема и свободно делится между
// конкурентными сканерами; каждый сканер владеет своим курсором.
func TokenizeDir(ctx context.Context, req DirRequest) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(req.Dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(req.Dir), nil, nil
	}

	sink := req.Progress
	if sink == nil {
		sink = nopSink{}
	}
	for _, path := range files {
		sink.OnEvent(ScanEvent{Path: path, Status: StatusQueued})
	}

	// FileSet не потокобезопасен — все файлы загружаем заранее
	fileSet := source.NewFileSetWithBase(req.Dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			started := time.Now()
			sink.OnEvent(ScanEvent{Path: path, Status: StatusScanning})

			bag := diag.NewBag(req.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, 0, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = TokenizeDirResult{
					Path: path,
					Bag:  bag,
				}
				sink.OnEvent(ScanEvent{Path: path, Status: StatusError, Elapsed: time.Since(started)})
				return nil
			}

			fileID := fileIDs[path]
			res := scanLoadedFile(fileSet, fileID, bag)
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: res,
				Bag:    bag,
				Loaded: true,
			}

			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			sink.OnEvent(ScanEvent{
				Path:    path,
				Status:  status,
				Tokens:  len(res),
				Elapsed: time.Since(started),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}
