package dataset

// Dataset は訓練用とテスト用の画像・ラベルを保持します。
// 同じ添字の画像とラベルは同じレコードに対応します。
type Dataset[I Filler, L Number] struct {
	TrainingImages []I
	TrainingLabels []L
	TestImages     []I
	TestLabels     []L
}

func (d *Dataset[I, L]) TrainingLen() int {
	return len(d.TrainingImages)
}

func (d *Dataset[I, L]) TestLen() int {
	return len(d.TestImages)
}

// ResizeTraining は訓練データをnewSize件に切り詰めます。
// 現在の件数がnewSize以下なら何もしません。
func (d *Dataset[I, L]) ResizeTraining(newSize int) {
	d.TrainingImages, d.TrainingLabels = truncate(d.TrainingImages, d.TrainingLabels, newSize)
}

// ResizeTest はテストデータをnewSize件に切り詰めます。
// 現在の件数がnewSize以下なら何もしません。
func (d *Dataset[I, L]) ResizeTest(newSize int) {
	d.TestImages, d.TestLabels = truncate(d.TestImages, d.TestLabels, newSize)
}

func truncate[I, L any](images []I, labels []L, n int) ([]I, []L) {
	n = max(n, 0)
	if len(images) <= n {
		return images, labels
	}
	clear(images[n:])
	clear(labels[n:])
	return images[:n], labels[:n]
}
