package dataset

import (
	"context"
	"fmt"
	"github.com/Gabriel-Freitas-S/analise-hash/internal/conf"
	"golang.org/x/sync/errgroup"
	"path/filepath"
)

// WorkFile - A dataset file to produce
//   - Name is the file name within the target directory
//   - Quantity is the number of keys
//   - Unique tells if duplicates are to be avoided
type WorkFile struct {
	Name     string
	Quantity int
	Unique   bool
}

// DefaultWorkFiles - Returns one unique key dataset per conf.DefaultDatasetSizes entry plus the search dataset
func DefaultWorkFiles() (workFiles []WorkFile) {
	for _, size := range conf.DefaultDatasetSizes {
		workFiles = append(workFiles, WorkFile{
			Name:     fmt.Sprintf(conf.DatasetNameFormat, size),
			Quantity: size,
			Unique:   true,
		})
	}
	workFiles = append(workFiles, WorkFile{
		Name:     conf.SearchDatasetName,
		Quantity: conf.SearchDatasetSize,
		Unique:   true,
	})

	return
}

// GenerateWorkFiles - Writes the default work files to dir
func GenerateWorkFiles(ctx context.Context, dir string, seed int64) (fileNames []string, err error) {
	return Generate(ctx, dir, seed, DefaultWorkFiles())
}

// Generate - Writes every work file to dir, concurrently. Each file gets its own Generator seeded with seed plus
// the position of the file in workFiles, so the result does not depend on scheduling.
// It returns:
//   - fileNames is the paths of the written files in workFiles order
//   - err is the first error met, remaining files are then abandoned
func Generate(ctx context.Context, dir string, seed int64, workFiles []WorkFile) (fileNames []string, err error) {
	fileNames = make([]string, len(workFiles))
	g, ctx := errgroup.WithContext(ctx)

	for i, workFile := range workFiles {
		i, workFile := i, workFile
		fileNames[i] = filepath.Join(dir, workFile.Name)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			generator := NewDefaultGenerator(seed + int64(i))

			var keys []int64
			var err error
			if workFile.Unique {
				keys, err = generator.Unique(workFile.Quantity)
			} else {
				keys, err = generator.WithRepetition(workFile.Quantity)
			}
			if err != nil {
				return fmt.Errorf("unable to generate %s: %w", workFile.Name, err)
			}

			return Save(keys, fileNames[i])
		})
	}

	err = g.Wait()
	if err != nil {
		fileNames = nil
	}

	return
}
