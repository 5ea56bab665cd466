package conf

// MultiplicationConstant - The constant A used by the multiplication method, the fractional part of the golden ratio
const MultiplicationConstant float64 = 0.6180339887

// MaxLoadFactor - Highest ratio of occupied cells to capacity an open addressing table accepts inserts at
const MaxLoadFactor float64 = 0.7

// MaxOccupancyFactor - Highest ratio of occupied plus tombstoned cells to capacity an open addressing table accepts
// inserts at. Tombstones lengthen probe sequences even when the load factor looks healthy.
const MaxOccupancyFactor float64 = 0.5

// MinKeyValue - Lowest value produced by the dataset generator unless configured otherwise
const MinKeyValue int64 = 1

// MaxKeyValue - Highest value produced by the dataset generator unless configured otherwise
const MaxKeyValue int64 = 1000000

// UniqueGenerationLimit - Above this quantity the generator produces keys with repetition, since tracking
// uniqueness gets too slow
const UniqueGenerationLimit = 10000

// SearchDatasetSize - Number of keys in the search dataset
const SearchDatasetSize = 1000

// SearchDatasetName - File name of the search dataset within the data directory
const SearchDatasetName = "busca_1000.txt"

// DatasetNameFormat - File name format for insertion datasets, the verb is the quantity
const DatasetNameFormat = "numeros_aleatorios_%d.txt"

// SnappyExtension - Dataset files ending with this extension are snappy framed
const SnappyExtension = ".sz"

// DefaultTableSizes - Bucket counts the separate chaining tables are benchmarked with
var DefaultTableSizes = []int64{29, 97, 251, 499, 911}

// DefaultDatasetSizes - Quantities of keys in the generated insertion datasets
var DefaultDatasetSizes = []int{100, 500, 1000, 5000, 10000, 50000}
