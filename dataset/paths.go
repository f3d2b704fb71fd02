package dataset

import (
	"fmt"
	"path/filepath"
)

const (
	batchesDir    = "cifar-10/cifar-10-batches-bin"
	trainingParts = 5
	testFile      = "test_batch.bin"
)

// Paths は読み込むファイルの一覧です。Trainingはこの順番で読み込まれます。
type Paths struct {
	Training []string
	Test     string
}

// DefaultPaths はroot/cifar-10/cifar-10-batches-bin 以下の標準的なファイル名を返します。
func DefaultPaths(root string) Paths {
	dir := filepath.Join(root, batchesDir)
	training := make([]string, trainingParts)
	for i := range training {
		training[i] = filepath.Join(dir, fmt.Sprintf("data_batch_%d.bin", i+1))
	}
	return Paths{
		Training: training,
		Test:     filepath.Join(dir, testFile),
	}
}
