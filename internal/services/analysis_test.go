package services_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/esophai/internal/inference"
	"github.com/sbilibin2017/esophai/internal/models"
	"github.com/sbilibin2017/esophai/internal/services"
	"github.com/sbilibin2017/esophai/internal/storage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.Black)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newStore(t *testing.T) *storage.UploadStore {
	t.Helper()
	store, err := storage.NewUploadStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func storedFiles(t *testing.T, store *storage.UploadStore) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	return entries
}

func TestAnalysisService_Analyze_Persisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := services.NewMockClassifier(ctrl)
	writer := services.NewMockAnalysisWriter(ctrl)
	tx := services.NewMockTransactor(ctrl)
	publisher := services.NewMockEventPublisher(ctrl)
	store := newStore(t)

	svc := services.NewAnalysisService(classifier, store, writer, tx, publisher, inference.DefaultMaxPixels)

	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tensor inference.Tensor) (float64, error) {
			assert.Len(t, tensor.Data, inference.InputSize*inference.InputSize*inference.InputChannels)
			return 0.91234, nil
		}).Times(1)
	passthroughTx(tx)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, a models.NewAnalysis) error {
			assert.Equal(t, int64(7), a.UserID)
			assert.Equal(t, "scan.PNG", a.OriginalFilename)
			assert.Equal(t, inference.LabelCancer, a.Prediction)
			assert.Equal(t, 91.23, a.Confidence)
			assert.Regexp(t, `^temp[0-9a-f]{32}\.png$`, a.ImagePath)
			return nil
		})
	publisher.EXPECT().PublishAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e models.AnalysisEvent) error {
			assert.Equal(t, int64(7), e.UserID)
			assert.NotEmpty(t, e.EventID)
			return nil
		})

	result, err := svc.Analyze(context.Background(), 7, "scan.PNG", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	assert.Equal(t, inference.LabelCancer, result.Label)
	assert.Equal(t, 91.23, result.Confidence)
	assert.Equal(t, 0.91234, result.Probability)

	entries := storedFiles(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, result.ImageFileName, entries[0].Name())
}

func TestAnalysisService_Analyze_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := services.NewMockClassifier(ctrl)
	svc := services.NewAnalysisService(classifier, newStore(t), nil, nil, nil, inference.DefaultMaxPixels)

	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.5, nil)

	result, err := svc.Analyze(context.Background(), 0, "scan.jpg.png", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, inference.LabelNonCancer, result.Label)
	assert.Equal(t, 50.0, result.Confidence)
}

func TestAnalysisService_Analyze_InvalidFileType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no calls are expected on any collaborator
	classifier := services.NewMockClassifier(ctrl)
	writer := services.NewMockAnalysisWriter(ctrl)
	store := newStore(t)
	svc := services.NewAnalysisService(classifier, store, writer, services.NewMockTransactor(ctrl), nil, inference.DefaultMaxPixels)

	for _, name := range []string{"notes.txt", "noext", "image.png.exe", ""} {
		_, err := svc.Analyze(context.Background(), 1, name, strings.NewReader("data"))
		assert.ErrorIs(t, err, services.ErrInvalidFileType, name)
	}

	assert.Empty(t, storedFiles(t, store))
}

func TestAnalysisService_Analyze_InvalidImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newStore(t)
	svc := services.NewAnalysisService(services.NewMockClassifier(ctrl), store, nil, nil, nil, inference.DefaultMaxPixels)

	_, err := svc.Analyze(context.Background(), 0, "fake.png", strings.NewReader("not an image"))
	assert.ErrorIs(t, err, services.ErrInvalidImage)
	assert.Empty(t, storedFiles(t, store))
}

func TestAnalysisService_Analyze_TooManyPixels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newStore(t)
	svc := services.NewAnalysisService(services.NewMockClassifier(ctrl), store, nil, nil, nil, 10)

	_, err := svc.Analyze(context.Background(), 0, "big.png", bytes.NewReader(pngBytes(t)))
	assert.ErrorIs(t, err, services.ErrInvalidImage)
	assert.Empty(t, storedFiles(t, store))
}

func TestAnalysisService_Analyze_PredictError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := services.NewMockClassifier(ctrl)
	store := newStore(t)
	svc := services.NewAnalysisService(classifier, store, nil, nil, nil, inference.DefaultMaxPixels)

	predictErr := errors.New("forward failed")
	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.0, predictErr)

	_, err := svc.Analyze(context.Background(), 0, "scan.png", bytes.NewReader(pngBytes(t)))
	assert.ErrorIs(t, err, predictErr)
	assert.Empty(t, storedFiles(t, store))
}

func TestAnalysisService_Analyze_BadProbability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := services.NewMockClassifier(ctrl)
	store := newStore(t)
	svc := services.NewAnalysisService(classifier, store, nil, nil, nil, inference.DefaultMaxPixels)

	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(1.7, nil)

	_, err := svc.Analyze(context.Background(), 0, "scan.png", bytes.NewReader(pngBytes(t)))
	assert.ErrorIs(t, err, inference.ErrInvalidProbability)
	assert.Empty(t, storedFiles(t, store))
}

func TestAnalysisService_Analyze_SaveFailsRemovesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := services.NewMockClassifier(ctrl)
	writer := services.NewMockAnalysisWriter(ctrl)
	tx := services.NewMockTransactor(ctrl)
	publisher := services.NewMockEventPublisher(ctrl)
	store := newStore(t)
	svc := services.NewAnalysisService(classifier, store, writer, tx, publisher, inference.DefaultMaxPixels)

	saveErr := errors.New("constraint failed")
	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.1, nil)
	passthroughTx(tx)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)
	// publisher must not be called

	_, err := svc.Analyze(context.Background(), 3, "scan.gif", bytes.NewReader(pngBytes(t)))
	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, storedFiles(t, store))
}

func TestAnalysisService_Analyze_PublishErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := services.NewMockClassifier(ctrl)
	writer := services.NewMockAnalysisWriter(ctrl)
	tx := services.NewMockTransactor(ctrl)
	publisher := services.NewMockEventPublisher(ctrl)
	svc := services.NewAnalysisService(classifier, newStore(t), writer, tx, publisher, inference.DefaultMaxPixels)

	classifier.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(0.8, nil)
	passthroughTx(tx)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	publisher.EXPECT().PublishAnalysis(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	result, err := svc.Analyze(context.Background(), 3, "scan.jpeg", bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)
	assert.Equal(t, inference.LabelCancer, result.Label)
}

func TestAnalysisService_Analyze_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockUploadStore(ctrl)
	svc := services.NewAnalysisService(services.NewMockClassifier(ctrl), store, nil, nil, nil, inference.DefaultMaxPixels)

	storeErr := errors.New("disk full")
	store.EXPECT().Save("png", gomock.Any()).Return("", storeErr)

	_, err := svc.Analyze(context.Background(), 0, "scan.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, storeErr)
}
