package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sw965/cifar10/blas32/tensor/3d"
	"github.com/sw965/cifar10/dataset"
)

func TestChannelStats(t *testing.T) {
	a := tensor3d.NewZeros(2, 2, 2)
	b := tensor3d.NewZeros(2, 2, 2)
	// チャンネル0: 全て2, チャンネル1: 0と4が半分ずつ
	for i := 0; i < 4; i++ {
		a.Data[i], b.Data[i] = 2, 2
	}
	copy(a.Data[4:], []float32{0, 4, 0, 4})
	copy(b.Data[4:], []float32{4, 0, 4, 0})

	mean, std, err := dataset.ChannelStats([]tensor3d.General{a, b})
	require.NoError(t, err)
	require.Len(t, mean, 2)
	assert.InDelta(t, 2.0, mean[0], 1e-6)
	assert.InDelta(t, 0.0, std[0], 1e-3)
	assert.InDelta(t, 2.0, mean[1], 1e-6)
	assert.InDelta(t, 2.0, std[1], 1e-6)
}

func TestChannelStatsErrors(t *testing.T) {
	_, _, err := dataset.ChannelStats(nil)
	assert.Error(t, err)

	_, _, err = dataset.ChannelStats([]tensor3d.General{tensor3d.NewImage(), tensor3d.NewZeros(1, 32, 32)})
	assert.Error(t, err)

	// 形は同じだがDataが足りない
	short := tensor3d.NewImage()
	short.Data = short.Data[:100]
	_, _, err = dataset.ChannelStats([]tensor3d.General{tensor3d.NewImage(), short})
	assert.Error(t, err)
}

func TestLabelCounts(t *testing.T) {
	counts := dataset.LabelCounts([]uint8{0, 1, 1, 9, 12}, 10)
	assert.Equal(t, []int{1, 2, 0, 0, 0, 0, 0, 0, 0, 1}, counts)
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "airplane", dataset.ClassName(uint8(0)))
	assert.Equal(t, "truck", dataset.ClassName(9))
	assert.Equal(t, "", dataset.ClassName(10))
	assert.Equal(t, "", dataset.ClassName(-1))
}
