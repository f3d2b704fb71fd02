package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sw965/cifar10/record"
)

// ErrOpen はファイルを開けなかったことを表します。
// このエラーの場合、呼び出し側のコンテナは変更されません。
var ErrOpen = errors.New("dataset: open file")

// LoadFile はpathのCIFAR-10バイナリを読み込み、imagesとlabelsの末尾に追加します。
// limitが0なら上限なし、それ以外は読み込むレコード数の上限です。
// 追加したレコード数を返します。
func LoadFile[IS ~[]I, LS ~[]L, I Filler, L Number](images *IS, labels *LS, path string, limit int, newImage func() I) (int, error) {
	buf, err := readAll(path)
	if err != nil {
		return 0, err
	}

	want := record.PerFile
	if limit > 0 && limit < want {
		want = limit
	}
	n, err := record.Take(buf, want)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	imgStart, lblStart := len(*images), len(*labels)
	*images = slices.Grow(*images, n)
	*labels = slices.Grow(*labels, n)

	// 途中まで追加した分を取り消す
	rollback := func() {
		clear((*images)[imgStart:])
		clear((*labels)[lblStart:])
		*images = (*images)[:imgStart]
		*labels = (*labels)[:lblStart]
	}

	for i := 0; i < n; i++ {
		label, pixels, err := record.Decode(buf, i)
		if err != nil {
			rollback()
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		img := newImage()
		if err := img.Fill(pixels); err != nil {
			rollback()
			return 0, fmt.Errorf("%s: record %d: %w", path, i, err)
		}
		*labels = append(*labels, L(label))
		*images = append(*images, img)
	}
	return n, nil
}

// ファイル全体を一度に読み込む
func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}
