package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// csvHeader - Column names of the results file
var csvHeader = []string{
	"Tipo", "Dataset", "TamanhoDados", "TamanhoTabela", "FuncaoHash", "TempoInsercao", "TempoBusca",
	"Inseridos", "Encontrados", "Colisoes", "FatorCarga", "MaiorSequencia",
}

// WriteCSV - Writes results as CSV with a header row, times in milliseconds
func WriteCSV(w io.Writer, results []Result) (err error) {
	cw := csv.NewWriter(w)

	err = cw.Write(csvHeader)
	if err != nil {
		return
	}

	for _, r := range results {
		err = cw.Write([]string{
			r.Technique,
			r.Dataset,
			strconv.Itoa(r.DatasetSize),
			strconv.FormatInt(r.TableSize, 10),
			r.Hash,
			strconv.FormatFloat(r.InsertMs, 'f', 4, 64),
			strconv.FormatFloat(r.SearchMs, 'f', 4, 64),
			strconv.Itoa(r.Inserted),
			strconv.Itoa(r.Found),
			strconv.FormatInt(r.Collisions, 10),
			strconv.FormatFloat(r.LoadFactor, 'f', 4, 64),
			strconv.FormatInt(r.Longest, 10),
		})
		if err != nil {
			return
		}
	}

	cw.Flush()
	err = cw.Error()

	return
}

// PrintReport - Writes results as an aligned table
func PrintReport(w io.Writer, results []Result) (err error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	_, err = fmt.Fprintln(tw, "Technique\tHash\tKeys\tTable\tInsert ms\tSearch ms\tInserted\tFound\tCollisions\tLoad\tLongest\t")
	if err != nil {
		return
	}

	for _, r := range results {
		inserted := strconv.Itoa(r.Inserted)
		if r.Stopped {
			inserted += "*"
		}

		_, err = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f\t%.3f\t%s\t%d\t%d\t%.2f\t%d\t\n",
			r.Technique, r.Hash, r.DatasetSize, r.TableSize, r.InsertMs, r.SearchMs,
			inserted, r.Found, r.Collisions, r.LoadFactor, r.Longest)
		if err != nil {
			return
		}
	}

	err = tw.Flush()

	return
}
