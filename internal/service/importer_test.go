package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"runmaster/internal/config"
	"runmaster/internal/store"
)

func newTestImporter(t *testing.T) (*Importer, *store.Store) {
	t.Helper()
	s := store.NewTestStore(t)
	im := NewImporter(s, config.DefaultConfig().Import, zap.NewNop())
	return im, s
}

func TestImportCSV(t *testing.T) {
	im, s := newTestImporter(t)

	csvData := `date,category,name,distance,duration,notes
2026-08-10,road,Long run,half-marathon,1:58:30,steady
2026-08-12,track,Repeats,5000m,16:45,
2026-08-14,road,Easy run,8.5,45:00,felt tired
`
	report, err := im.importFrom(strings.NewReader(csvData), "test.csv")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Imported)
	assert.Zero(t, report.Skipped)
	assert.NotEmpty(t, report.BatchID)

	workouts, err := s.ListWorkouts(10, 0)
	require.NoError(t, err)
	require.Len(t, workouts, 3)

	// Newest first: the custom road distance is kilometers.
	assert.Equal(t, "Easy run", workouts[0].Name)
	assert.Equal(t, 8500.0, workouts[0].DistanceMeters)
	assert.Equal(t, 2700.0, workouts[0].DurationSeconds)

	assert.Equal(t, "Long run", workouts[2].Name)
	assert.Equal(t, 21097.5, workouts[2].DistanceMeters)
	assert.Equal(t, 7110.0, workouts[2].DurationSeconds)

	// Every imported workout carries the batch id.
	for _, w := range workouts {
		require.NotNil(t, w.ImportBatch)
		assert.Equal(t, report.BatchID, *w.ImportBatch)
	}
}

func TestImportCSVSkipsBadRows(t *testing.T) {
	im, s := newTestImporter(t)

	csvData := `date,category,name,distance,duration
2026-08-10,road,Good run,5km,25:00
not-a-date,road,Bad date,5km,25:00
2026-08-11,swimming,Bad category,5km,25:00
2026-08-12,road,Bad distance,banana,25:00
2026-08-13,road,Bad duration,5km,25:99
2026-08-14,road,Fraction on road,5km,25:00.50
2026-08-15,road,Short row,5km
2026-08-16,road,Another good run,10km,52:10
`
	report, err := im.importFrom(strings.NewReader(csvData), "test.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, 6, report.Skipped)
	require.Len(t, report.RowErrors, 6)

	// Line numbers count the header.
	assert.Equal(t, 3, report.RowErrors[0].Line)
	assert.Equal(t, 8, report.RowErrors[5].Line)

	workouts, err := s.ListWorkouts(10, 0)
	require.NoError(t, err)
	require.Len(t, workouts, 2, "bad rows must be skipped, never stored as zero workouts")
	for _, w := range workouts {
		assert.NotZero(t, w.DistanceMeters)
		assert.NotZero(t, w.DurationSeconds)
	}
}

func TestImportCSVTrackFractionalSeconds(t *testing.T) {
	im, s := newTestImporter(t)

	csvData := "2026-08-10,track,Time trial,1500m,4:12.35\n"
	report, err := im.importFrom(strings.NewReader(csvData), "test.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)

	workouts, err := s.ListWorkouts(1, 0)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.InDelta(t, 252.35, workouts[0].DurationSeconds, 1e-9)
}

func TestImportCSVRecordsBatch(t *testing.T) {
	im, _ := newTestImporter(t)

	report, err := im.importFrom(strings.NewReader("2026-08-10,road,Run,5km,25:00\n"), "batch.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	// RecordImportBatch ran without error; a duplicate batch id would have
	// violated the primary key on a second run of the same reader.
	report2, err := im.importFrom(strings.NewReader("2026-08-10,road,Run,5km,25:00\n"), "batch.csv")
	require.NoError(t, err)
	assert.NotEqual(t, report.BatchID, report2.BatchID)
}
