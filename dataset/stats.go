package dataset

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/sw965/cifar10/blas32/tensor/3d"
	"gonum.org/v1/gonum/blas/blas32"
)

// ChannelStats はチャンネルごとの画素の平均と標準偏差を返します。
// 画素は非負である前提です (Asumで和を取るため)。
func ChannelStats(images []tensor3d.General) ([]float32, []float32, error) {
	if len(images) == 0 {
		return nil, nil, fmt.Errorf("dataset: channel stats of empty images")
	}

	first := images[0]
	chs := first.Channels
	sums := make([]float64, chs)
	sqSums := make([]float64, chs)

	for i, img := range images {
		if img.Channels != chs || img.Rows != first.Rows || img.Cols != first.Cols || img.ToVector().N != len(img.Data) {
			return nil, nil, fmt.Errorf("dataset: image shape mismatch at index %d", i)
		}
		for ch := 0; ch < chs; ch++ {
			v := img.Channel(ch)
			sums[ch] += float64(blas32.Asum(v))
			sqSums[ch] += float64(blas32.Dot(v, v))
		}
	}

	n := float64(len(images) * first.Rows * first.Cols)
	mean := make([]float32, chs)
	std := make([]float32, chs)
	for ch := 0; ch < chs; ch++ {
		m := sums[ch] / n
		variance := sqSums[ch]/n - m*m
		mean[ch] = float32(m)
		std[ch] = math32.Sqrt(float32(max(variance, 0)))
	}
	return mean, std, nil
}

// LabelCounts はクラスごとの件数を返します。範囲外のラベルは数えません。
func LabelCounts[L Number](labels []L, classes int) []int {
	counts := make([]int, classes)
	for _, l := range labels {
		c := int(l)
		if c >= 0 && c < classes {
			counts[c]++
		}
	}
	return counts
}
