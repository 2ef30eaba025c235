package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netflix-analysis/models"
)

func TestDataLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netflix_titles.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	df, err := NewDataLoader(testLogger()).Load(path)
	require.NoError(t, err)

	rows, cols := df.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, 12, cols)
	assert.Equal(t, "Alpha", df.Col(models.ColTitle).Elem(0).String())
}

func TestDataLoader_Load_MissingFile(t *testing.T) {
	_, err := NewDataLoader(testLogger()).Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDataLoader_Read_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing required columns",
			csv:     "title,type\nAlpha,Movie\n",
			wantErr: ErrMissingColumns,
			wantMsg: "listed_in",
		},
		{
			name: "ragged rows",
			csv:  header + "s1,Movie,Alpha\n",
		},
		{
			name: "empty input",
			csv:  "",
		},
		{
			name:    "header only, missing required columns",
			csv:     "title,type\n",
			wantErr: ErrMissingColumns,
			wantMsg: "date_added",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataLoader(testLogger()).Read(strings.NewReader(tt.csv))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDataLoader_Read_HeaderOnly(t *testing.T) {
	df, err := NewDataLoader(testLogger()).Read(strings.NewReader(header))
	require.NoError(t, err)

	rows, cols := df.Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 12, cols)
	assert.Equal(t, strings.Split(strings.TrimSpace(header), ","), df.Names())

	clean, stats := NewDataCleaner(testLogger()).Clean(df)
	require.NoError(t, clean.Err)
	assert.Equal(t, 0, stats.RowsAfter)

	report := NewInsightService(testLogger(), InsightOptions{}).Generate(clean)
	assert.Zero(t, report.TotalTitles)
	assert.Empty(t, report.TypeCounts)
	assert.Empty(t, report.TitlesByYear)
}

func TestDataLoader_Read_NullMarkers(t *testing.T) {
	csv := header +
		"s1,Movie,Alpha,NA,A,N/A,\"January 1, 2020\",2019,NULL,90 min,Dramas,x\n"
	df := readTable(t, csv)

	assert.True(t, df.Col(models.ColDirector).Elem(0).IsNA())
	assert.True(t, df.Col(models.ColCountry).Elem(0).IsNA())
	assert.True(t, df.Col(models.ColRating).Elem(0).IsNA())
	assert.False(t, df.Col(models.ColCast).Elem(0).IsNA())
}

func TestSummarize(t *testing.T) {
	df := readTable(t, sampleCSV)

	summary := Summarize(df, 3)

	assert.Equal(t, 6, summary.Rows)
	assert.Equal(t, 12, summary.Cols)
	assert.Equal(t, df.Names(), summary.Columns)
	assert.Equal(t, 3, summary.Head.Nrow())

	nulls := make(map[string]int)
	for _, n := range summary.Nulls {
		nulls[n.Column] = n.Nulls
	}
	assert.Equal(t, 2, nulls[models.ColDirector])
	assert.Equal(t, 1, nulls[models.ColCast])
	assert.Equal(t, 1, nulls[models.ColCountry])
	assert.Equal(t, 1, nulls[models.ColDateAdded])
	assert.Equal(t, 1, nulls[models.ColRating])
	assert.Equal(t, 1, nulls[models.ColDuration])
	assert.Equal(t, 0, nulls[models.ColTitle])
}

func TestSummarize_HeadLargerThanTable(t *testing.T) {
	summary := Summarize(readTable(t, sampleCSV), 50)
	assert.Equal(t, 6, summary.Head.Nrow())
}
