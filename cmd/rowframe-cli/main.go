package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/paveg/rowframe"
	"github.com/paveg/rowframe/internal/errors"
	"github.com/paveg/rowframe/internal/version"
)

func customUsage() {
	fmt.Fprintf(os.Stderr, "rowframe CLI (version %s)\n\n", version.Version)
	fmt.Fprintf(os.Stderr, "Usage: rowframe-cli [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fmt.Fprintf(os.Stderr, "  --demo\n\t\tRun the Series and DataFrame walkthrough\n")
	fmt.Fprintf(os.Stderr, "  --input FILE\n\t\tRead a .csv, .json, .jsonl or .parquet file\n")
	fmt.Fprintf(os.Stderr, "  --head N\n\t\tRows to print from --input (default: 5)\n")
	fmt.Fprintf(os.Stderr, "  --describe COLUMN\n\t\tPrint summary statistics for a column of --input\n")
	fmt.Fprintf(os.Stderr, "  --output FILE\n\t\tWrite --input to another format, chosen by extension\n")
	fmt.Fprintf(os.Stderr, "  --config FILE\n\t\tLoad a JSON, YAML or .env configuration\n")
	fmt.Fprintf(os.Stderr, "  --verbose\n\t\tLog debug output to stderr\n")
	fmt.Fprintf(os.Stderr, "  -v, --version\n\t\tPrint version information and exit\n")
	fmt.Fprintf(os.Stderr, "  -h, --help\n\t\tShow this help message and exit\n")
}

func main() {
	versionFlag := flag.Bool("v", false, "Print version and exit")
	flag.BoolVar(versionFlag, "version", false, "Print version and exit") // alias
	demoFlag := flag.Bool("demo", false, "Run the walkthrough")
	inputFlag := flag.String("input", "", "File to read")
	headFlag := flag.Int("head", 5, "Rows to print")
	describeFlag := flag.String("describe", "", "Column to summarize")
	outputFlag := flag.String("output", "", "File to write")
	configFlag := flag.String("config", "", "Configuration file")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")

	//nolint:reassign // Standard Go pattern for customizing flag usage message
	flag.Usage = customUsage

	flag.Parse()

	if *versionFlag {
		fmt.Print(version.Info().String())
		return
	}

	if err := configure(*configFlag, *verboseFlag); err != nil {
		log.Fatalf("configuration: %v", err)
	}

	switch {
	case *demoFlag:
		runDemo()
	case *inputFlag != "":
		if err := runInspect(*inputFlag, *headFlag, *describeFlag, *outputFlag); err != nil {
			log.Fatal(err)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func configure(path string, verbose bool) error {
	if path != "" {
		if err := rowframe.LoadConfig(path); err != nil {
			return err
		}
	}
	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		cfg := rowframe.GetConfig()
		cfg.VerboseLogging = true
		return rowframe.SetConfig(cfg)
	}
	return nil
}

func runDemo() {
	fmt.Println("rowframe walkthrough")
	fmt.Println("====================")

	numbers := rowframe.SeriesOf("myNumbers", 1, 2, 3, 4, 5)
	fmt.Println(numbers)
	if mean, ok := numbers.Mean(); ok {
		fmt.Println("mean:", mean)
	}
	if median, ok := numbers.Median(); ok {
		fmt.Println("median:", median)
	}
	fmt.Println("sum:", numbers.Sum())

	mixed := rowframe.SeriesOf("mixed", 1, rowframe.Undefined(), false, nil, rowframe.NaN(), 10, "")
	fmt.Println("fillNullish:", mixed.FillNullish(rowframe.Number(0)).ToArray())
	fmt.Println("fillFalsey: ", mixed.FillFalsey(rowframe.Number(0)).ToArray())
	fmt.Println()

	df := rowframe.NewDataFrame(
		rowframe.RowOf("name", "Alice", "age", 30, "active", true),
		rowframe.RowOf("name", "Bob", "age", 25, "active", false),
	)
	rows, cols := df.Shape()
	fmt.Printf("shape: [%d, %d]\n", rows, cols)
	fmt.Println("columns:", df.Columns())
	if mean, ok := df.Col("age").Mean(); ok {
		fmt.Println("mean age:", mean)
	}

	df.PushRow(rowframe.RowOf("name", "John", "age", 35, "active", true))
	fmt.Println("tail:", df.Tail(1))

	withInitials := df.AddColumn("initials", rowframe.Generator(func(r rowframe.Row, _ int) rowframe.Value {
		name, _ := r.Value("name").Str()
		return rowframe.Text(name[:1])
	}))
	fmt.Println(withInitials)
	fmt.Println()

	left := rowframe.NewDataFrame(
		rowframe.RowOf("id", 1, "name", "Alice"),
		rowframe.RowOf("id", 2, "name", "Bob"),
	)
	right := rowframe.NewDataFrame(
		rowframe.RowOf("userId", 1, "age", 25),
		rowframe.RowOf("userId", 3, "age", 30),
	)
	on := rowframe.JoinOn{ThisKey: "id", OtherKey: "userId"}
	fmt.Println("leftJoin: ", left.LeftJoin(right, on).ToArray())
	fmt.Println("rightJoin:", left.RightJoin(right, on).ToArray())
}

func runInspect(input string, head int, describe, output string) error {
	df, err := readFile(input)
	if err != nil {
		return err
	}

	rows, cols := df.Shape()
	fmt.Printf("%s: %d rows, %d columns\n", input, rows, cols)
	for _, r := range df.Head(head) {
		fmt.Println(r)
	}

	if describe != "" {
		if !slices.Contains(df.Columns(), describe) {
			return errors.NewColumnNotFoundError("describe", describe).
				WithHint("available columns: " + strings.Join(df.Columns(), ", "))
		}
		summary, ok := df.Col(describe).Describe()
		if !ok {
			return fmt.Errorf("column %q has no finite numbers", describe)
		}
		fmt.Printf("\n%s: count=%d mean=%g std=%g min=%g q25=%g median=%g q75=%g max=%g\n",
			describe, summary.Count, summary.Mean, summary.Std, summary.Min,
			summary.Q25, summary.Median, summary.Q75, summary.Max)
	}

	if output != "" {
		if err := writeFile(output, df); err != nil {
			return err
		}
		fmt.Printf("\nwrote %d rows to %s\n", df.Len(), output)
	}
	return nil
}

func readFile(path string) (*rowframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return rowframe.ReadCSV(f)
	case ".json":
		return rowframe.ReadJSON(f)
	case ".jsonl", ".ndjson":
		return rowframe.ReadJSONLines(f)
	case ".parquet":
		return rowframe.ReadParquet(f)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", path)
	}
}

func writeFile(path string, df *rowframe.DataFrame) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return rowframe.WriteCSV(f, df)
	case ".json":
		return rowframe.WriteJSON(f, df)
	case ".jsonl", ".ndjson":
		return rowframe.WriteJSONLines(f, df)
	case ".parquet":
		return rowframe.WriteParquet(f, df)
	default:
		return fmt.Errorf("unsupported output format: %s", path)
	}
}
