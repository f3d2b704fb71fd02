package dataset

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/sw965/cifar10/blas32/tensor/3d"
	"github.com/sw965/omw/parallel"
)

// Options はデータセットの読み込み設定です。
type Options struct {
	// Pathsが空ならDefaultPaths(".")を使う
	Paths Paths

	// 訓練ファイル1つあたりの上限 (0: 上限なし)
	TrainingLimit int

	// テストファイルの上限 (0: 上限なし)
	TestLimit int

	// 2以上ならファイルを並列に読み込む。
	// このときnewImageは複数のgoroutineから同時に呼ばれるので、並行に呼んでも安全でなければならない。
	Parallelism int

	Logger *slog.Logger

	// ファイルごとに読み込んだレコード数を受け取る。ファイルの順番で呼ばれる。
	OnFile func(path string, n int)
}

type job struct {
	path  string
	limit int
	test  bool
}

func (o Options) jobs() []job {
	paths := o.Paths
	if len(paths.Training) == 0 && paths.Test == "" {
		paths = DefaultPaths(".")
	}
	jobs := make([]job, 0, len(paths.Training)+1)
	for _, path := range paths.Training {
		jobs = append(jobs, job{path: path, limit: o.TrainingLimit})
	}
	if paths.Test != "" {
		jobs = append(jobs, job{path: paths.Test, limit: o.TestLimit, test: true})
	}
	return jobs
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o Options) onFile(path string, n int) {
	if o.OnFile != nil {
		o.OnFile(path, n)
	}
}

// LoadWith は訓練ファイルを順番に、その後テストファイルを読み込みます。
// 開けなかったファイルはログに残して0件として扱い、それ以外のエラーで中断します。
func LoadWith[I Filler, L Number](opts Options, newImage func() I) (Dataset[I, L], error) {
	if opts.Parallelism > 1 {
		return loadParallel[I, L](opts, newImage)
	}

	logger := opts.logger()
	var ds Dataset[I, L]
	for _, j := range opts.jobs() {
		images, labels := &ds.TrainingImages, &ds.TrainingLabels
		if j.test {
			images, labels = &ds.TestImages, &ds.TestLabels
		}
		n, err := loadJob(images, labels, j, newImage, logger)
		if err != nil {
			return Dataset[I, L]{}, err
		}
		opts.onFile(j.path, n)
	}
	return ds, nil
}

// ファイルごとに別々のコンテナへ読み込み、最後にファイルの順番で連結する
func loadParallel[I Filler, L Number](opts Options, newImage func() I) (Dataset[I, L], error) {
	type part struct {
		images []I
		labels []L
		n      int
	}

	logger := opts.logger()
	jobs := opts.jobs()
	parts := make([]part, len(jobs))

	err := parallel.For(len(jobs), opts.Parallelism, func(workerId, idx int) error {
		p := &parts[idx]
		n, err := loadJob(&p.images, &p.labels, jobs[idx], newImage, logger)
		p.n = n
		return err
	})
	if err != nil {
		return Dataset[I, L]{}, err
	}

	var ds Dataset[I, L]
	for i, j := range jobs {
		p := parts[i]
		if j.test {
			ds.TestImages = append(slices.Grow(ds.TestImages, p.n), p.images...)
			ds.TestLabels = append(slices.Grow(ds.TestLabels, p.n), p.labels...)
		} else {
			ds.TrainingImages = append(slices.Grow(ds.TrainingImages, p.n), p.images...)
			ds.TrainingLabels = append(slices.Grow(ds.TrainingLabels, p.n), p.labels...)
		}
		opts.onFile(j.path, p.n)
	}
	return ds, nil
}

func loadJob[I Filler, L Number](images *[]I, labels *[]L, j job, newImage func() I, logger *slog.Logger) (int, error) {
	n, err := LoadFile(images, labels, j.path, j.limit, newImage)
	if errors.Is(err, ErrOpen) {
		logger.Warn("cifar10 file skipped", "path", j.path, "err", err)
		return 0, nil
	}
	return n, err
}

// LoadFlat は画像を3072要素の平坦なスライスとして読み込みます。
func LoadFlat[P, L Number](opts Options) (Dataset[Flat[P], L], error) {
	return LoadWith[Flat[P], L](opts, NewFlat[P])
}

// Load3D は画像を3x32x32のテンソルとして読み込みます。
func Load3D[L Number](opts Options) (Dataset[tensor3d.General, L], error) {
	return LoadWith[tensor3d.General, L](opts, tensor3d.NewImage)
}

// Load は画素・ラベルともにuint8の平坦な画像として読み込みます。
func Load(opts Options) (Dataset[Flat[uint8], uint8], error) {
	return LoadFlat[uint8, uint8](opts)
}
