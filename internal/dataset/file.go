package dataset

import (
	"bufio"
	"fmt"
	"github.com/Gabriel-Freitas-S/analise-hash/crt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"github.com/golang/snappy"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// maxPrealloc - Upper bound of keys preallocated from the count line of a dataset file
const maxPrealloc = 1 << 16

// LoadResult - Outcome of loading a dataset file
//   - Keys is the keys read, in file order
//   - Expected is the count given on the first line of the file
//   - Skipped is the line numbers (1-based) of lines that could not be parsed as a key
type LoadResult struct {
	Keys     []int64
	Expected int
	Skipped  []int
}

// Save - Writes keys to fileName, first line being the number of keys followed by one key per line.
// Missing parent directories are created. A file name ending in conf.SnappyExtension gets snappy framed contents.
func Save(keys []int64, fileName string) (err error) {
	if len(keys) == 0 {
		err = crt.NewInvalidConfiguration("no keys to save to %s", fileName)
		return
	}

	if dir := filepath.Dir(fileName); dir != "." {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			err = fmt.Errorf("unable to create directory for dataset file: %w", err)
			return
		}
	}

	f, err := os.Create(fileName)
	if err != nil {
		err = fmt.Errorf("unable to create dataset file: %w", err)
		return
	}
	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("unable to close dataset file: %w", cErr)
		}
	}()

	var w io.Writer = f
	if isSnappy(fileName) {
		sw := snappy.NewBufferedWriter(f)
		defer func() {
			if cErr := sw.Close(); cErr != nil && err == nil {
				err = fmt.Errorf("unable to flush compressed dataset file: %w", cErr)
			}
		}()
		w = sw
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(keys)))
	bw.WriteByte('\n')
	for _, key := range keys {
		bw.WriteString(strconv.FormatInt(key, 10))
		bw.WriteByte('\n')
	}

	err = bw.Flush()
	if err != nil {
		err = fmt.Errorf("error while writing dataset file: %w", err)
	}

	return
}

// Load - Reads a dataset file written by Save, or by hand in the same format.
// Blank lines are ignored, lines that do not parse as a key are skipped and reported, reading stops once the
// expected number of keys has been read.
// It returns:
//   - result holds the keys and what had to be skipped
//   - err is of type crt.InvalidConfiguration if the first line is not a positive count, of type crt.NoRecordFound if no key could be read, or a standard error
func Load(fileName string) (result LoadResult, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("unable to open dataset file: %w", err)
		return
	}
	defer f.Close()

	scanner := newLineScanner(f, fileName)

	if !scanner.Scan() {
		err = crt.NewInvalidConfiguration("dataset file %s is empty", fileName)
		return
	}

	result.Expected, err = strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || result.Expected <= 0 {
		err = crt.NewInvalidConfiguration("first line of %s must be a count higher than 0 (zero)", fileName)
		return
	}

	result.Keys = make([]int64, 0, min(result.Expected, maxPrealloc))
	lineNo := 1
	for len(result.Keys) < result.Expected && scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		key, pErr := strconv.ParseInt(line, 10, 64)
		if pErr != nil {
			result.Skipped = append(result.Skipped, lineNo)
			continue
		}
		result.Keys = append(result.Keys, key)
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading dataset file: %w", err)
		return
	}

	if len(result.Keys) == 0 {
		err = crt.NewNoRecordFound("no valid key found in %s", fileName)
		return
	}

	return
}

// Validate - Checks that every non blank line after the first parses as a key and that their number matches the
// count on the first line.
func Validate(fileName string) (err error) {
	f, err := os.Open(fileName)
	if err != nil {
		err = fmt.Errorf("unable to open dataset file: %w", err)
		return
	}
	defer f.Close()

	scanner := newLineScanner(f, fileName)

	if !scanner.Scan() {
		err = crt.NewInvalidConfiguration("dataset file %s is empty", fileName)
		return
	}

	expected, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		err = crt.NewInvalidConfiguration("first line of %s is not a count", fileName)
		return
	}

	var count, lineNo int
	lineNo = 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, pErr := strconv.ParseInt(line, 10, 64); pErr != nil {
			err = crt.NewInvalidConfiguration("invalid key %q on line %d of %s", line, lineNo, fileName)
			return
		}
		count++
	}

	err = scanner.Err()
	if err != nil {
		err = fmt.Errorf("error while reading dataset file: %w", err)
		return
	}

	if count != expected {
		err = crt.NewInvalidConfiguration("%s declares %d keys but holds %d", fileName, expected, count)
		return
	}

	return
}

// List - Returns the dataset files in dir, sorted by name
func List(dir string) (fileNames []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		err = fmt.Errorf("unable to read dataset directory: %w", err)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !(strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".txt"+conf.SnappyExtension)) {
			continue
		}
		fileNames = append(fileNames, filepath.Join(dir, name))
	}
	sort.Strings(fileNames)

	return
}

// newLineScanner - Returns a line scanner over r, reading through snappy framing if fileName says so
func newLineScanner(r io.Reader, fileName string) *bufio.Scanner {
	if isSnappy(fileName) {
		r = snappy.NewReader(r)
	}

	return bufio.NewScanner(r)
}

// isSnappy - Returns true if fileName denotes a snappy framed dataset file
func isSnappy(fileName string) bool {
	return strings.HasSuffix(fileName, conf.SnappyExtension)
}
