package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/identicon/pkg/cache"
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/render"
	"github.com/matzehuels/identicon/pkg/store"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Input: "banana"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Format != render.FormatPNG {
		t.Errorf("Format = %q, want png", opts.Format)
	}
	if opts.Size != 250 {
		t.Errorf("Size = %d, want 250", opts.Size)
	}
	if opts.Logger != nil {
		t.Error("defaults should not install a logger; nil means the runner's own")
	}

	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call: %v", err)
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad format", Options{Format: "bmp"}, errors.ErrCodeInvalidFormat},
		{"negative size", Options{Size: -10}, errors.ErrCodeInvalidSize},
		{"huge size", Options{Size: MaxSize + 1}, errors.ErrCodeInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestOptionsEmptyInputIsValid(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("empty input should be valid: %v", err)
	}
}

func TestGenerate(t *testing.T) {
	r := NewRunner(nil, nil, nil, quietLogger())

	result, err := r.Generate(context.Background(), Options{Input: "banana"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !bytes.HasPrefix(result.Data, []byte("\x89PNG")) {
		t.Error("default artifact should be PNG bytes")
	}
	if result.Path != "" {
		t.Errorf("Generate should not persist, got path %q", result.Path)
	}
	if result.Stats.CellCount != len(result.Image.Grid) {
		t.Errorf("CellCount = %d, want %d", result.Stats.CellCount, len(result.Image.Grid))
	}
	if result.CacheInfo.RenderHit {
		t.Error("first render should not hit the cache")
	}
}

func TestGenerateLoggerOverride(t *testing.T) {
	var runnerBuf, runBuf bytes.Buffer
	r := NewRunner(nil, nil, nil, log.NewWithOptions(&runnerBuf, log.Options{}))

	_, err := r.Generate(context.Background(), Options{
		Input:  "banana",
		Logger: log.NewWithOptions(&runBuf, log.Options{}),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !bytes.Contains(runBuf.Bytes(), []byte("rendered artifact")) {
		t.Error("stage logs should go to the per-run logger")
	}
	if runnerBuf.Len() != 0 {
		t.Errorf("runner logger should stay quiet when a run logger is set, got %q", runnerBuf.String())
	}

	// Without an override the runner's own logger is used.
	if _, err := r.Generate(context.Background(), Options{Input: "banana"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Contains(runnerBuf.Bytes(), []byte("derived descriptor")) {
		t.Error("stage logs should fall back to the runner's logger")
	}
}

func TestGenerateRenderCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil, quietLogger())
	ctx := context.Background()
	opts := Options{Input: "banana"}

	first, err := r.Generate(ctx, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := r.Generate(ctx, opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(first.Data, second.Data) {
		t.Error("cached artifact should match the rendered one")
	}

	// Refresh bypasses the cache.
	third, err := r.Generate(ctx, Options{Input: "banana", Refresh: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the cache")
	}
	if !bytes.Equal(first.Data, third.Data) {
		t.Error("re-rendered artifact should be byte-identical")
	}
}

func TestExecutePersists(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(nil, nil, st, quietLogger())

	result, err := r.Execute(context.Background(), Options{Input: "banana"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := filepath.Join(dir, "banana.png")
	if result.Path != want {
		t.Errorf("Path = %q, want %q", result.Path, want)
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Equal(data, result.Data) {
		t.Error("persisted bytes should match the rendered artifact")
	}
}

func TestExecuteIdempotent(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(nil, nil, st, quietLogger())
	ctx := context.Background()

	a, err := r.Execute(ctx, Options{Input: "banana"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b, err := r.Execute(ctx, Options{Input: "banana"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !bytes.Equal(a.Data, b.Data) {
		t.Error("running the pipeline twice should produce byte-identical artifacts")
	}
}

func TestExecutePersistFailure(t *testing.T) {
	// A missing output directory makes persistence fail; the error must
	// carry the IO code and the run must produce no partial result.
	st := &FileStoreAt{dir: filepath.Join(t.TempDir(), "missing")}
	r := NewRunner(nil, nil, st, quietLogger())

	result, err := r.Execute(context.Background(), Options{Input: "banana"})
	if err == nil {
		t.Fatal("Execute should fail when the store cannot write")
	}
	if !errors.Is(err, errors.ErrCodeIOFailure) {
		t.Errorf("error = %v, want IO_FAILURE", err)
	}
	if result != nil {
		t.Error("failed run should not return a result")
	}
}

// FileStoreAt writes into an existing directory without creating it,
// letting tests point the store at unwritable locations.
type FileStoreAt struct {
	dir string
}

func (s *FileStoreAt) Save(ctx context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIOFailure, err, "write %s", path)
	}
	return path, nil
}

func (s *FileStoreAt) Close() error { return nil }

func TestSVGFormat(t *testing.T) {
	r := NewRunner(nil, nil, nil, quietLogger())

	result, err := r.Generate(context.Background(), Options{Input: "banana", Format: "svg"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(result.Data, []byte("<svg")) {
		t.Error("svg format should produce SVG bytes")
	}
}

func TestCacheKeySeparatesOptions(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil, quietLogger())
	ctx := context.Background()

	if _, err := r.Generate(ctx, Options{Input: "banana", Format: "png"}); err != nil {
		t.Fatal(err)
	}

	// Same input, different format: must not reuse the PNG entry.
	result, err := r.Generate(ctx, Options{Input: "banana", Format: "svg"})
	if err != nil {
		t.Fatal(err)
	}
	if result.CacheInfo.RenderHit {
		t.Error("different render options should not share cache entries")
	}
}
