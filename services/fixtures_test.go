package services

import (
	"io"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/require"

	"netflix-analysis/utils"
)

const header = "show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description\n"

// sampleCSV covers each branch of the cleaning policy:
// s1 fills director/country, s2 has no date_added, s3 has an unparseable
// date, s4 has no duration, s5 has a padded date and no rating.
const sampleCSV = header +
	`s1,Movie,Alpha,,A,,"January 1, 2020",2019,PG,90 min,Dramas,first` + "\n" +
	`s2,Movie,Beta,Jane Roe,B,India,,2018,TV-MA,100 min,Comedies,dropped` + "\n" +
	`s3,TV Show,Gamma,,C,Japan,not-a-date,2017,TV-14,2 Seasons,Anime Series,kept` + "\n" +
	`s4,Movie,Delta,Jane Roe,D,India,"March 3, 2019",2015,R,,Dramas,dropped` + "\n" +
	`s5,TV Show,Epsilon,John Doe,,United States," August 4, 2017",2016,,1 Season,Docuseries,padded` + "\n" +
	`s6,Movie,Zeta,Jane Roe,F,India,"December 31, 2017",2010,PG,95 min,Dramas,last` + "\n"

func testLogger() *utils.Logger {
	return utils.NewLoggerTo(io.Discard, "debug")
}

func readTable(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df, err := NewDataLoader(testLogger()).Read(strings.NewReader(csv))
	require.NoError(t, err)
	return df
}

func cleanTable(t *testing.T, csv string) dataframe.DataFrame {
	t.Helper()
	df, _ := NewDataCleaner(testLogger()).Clean(readTable(t, csv))
	require.NoError(t, df.Err)
	return df
}
