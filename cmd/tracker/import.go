package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SemTiOne/personal-finance-tracker/internal/cli"
	"github.com/SemTiOne/personal-finance-tracker/internal/importer"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV or OFX file",
		Long: `Import transactions from a file. CSV files need date, description and
amount columns (a category column is optional); OFX/QFX bank statements
are also supported. Rows that fail to parse are skipped and reported;
the rest of the batch still imports.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runImportFile,
	}

	cmd.Flags().String("format", "", "file format: csv or ofx (default: by extension)")
	cmd.Flags().Bool("no-header", false, "treat the first CSV row as data (columns: date, description, amount, category)")
	cmd.Flags().Bool("dry-run", false, "parse and categorize without saving")
	cmd.Flags().Bool("sample", false, "write a sample CSV to the given path instead of importing")
	cmd.Flags().String("date-column", "", "CSV date column name (default: Date)")
	cmd.Flags().String("description-column", "", "CSV description column name (default: Description)")
	cmd.Flags().String("amount-column", "", "CSV amount column name (default: Amount)")
	cmd.Flags().String("category-column", "", "CSV category column name (default: Category)")

	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImportFile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 0 {
		return fmt.Errorf("file path required")
	}
	path := args[0]

	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		if err := importer.WriteSampleCSV(path); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Sample CSV written to %s", path)))
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ofx", ".qfx":
			format = "ofx"
		default:
			format = "csv"
		}
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	noHeader, _ := cmd.Flags().GetBool("no-header")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	categorizer := newCategorizer()

	var result *importer.Result
	switch format {
	case "csv":
		dateCol, _ := cmd.Flags().GetString("date-column")
		descCol, _ := cmd.Flags().GetString("description-column")
		amountCol, _ := cmd.Flags().GetString("amount-column")
		categoryCol, _ := cmd.Flags().GetString("category-column")

		csvImporter := importer.NewCSVImporter(store, categorizer)
		result, err = csvImporter.Import(ctx, f, importer.Options{
			DateColumn:        dateCol,
			DescriptionColumn: descCol,
			AmountColumn:      amountCol,
			CategoryColumn:    categoryCol,
			HasHeader:         !noHeader,
			DryRun:            dryRun,
			Progress:          true,
		})
	case "ofx":
		ofxImporter := importer.NewOFXImporter(store, categorizer)
		result, err = ofxImporter.Import(ctx, f, dryRun)
	default:
		return fmt.Errorf("unsupported format %q (csv or ofx)", format)
	}
	if err != nil {
		return err
	}

	verb := "Imported"
	if dryRun {
		verb = "Would import"
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %d transactions", verb, result.Imported)))

	if len(result.Skipped) > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("Skipped %d rows:", len(result.Skipped))))
		for _, skipped := range result.Skipped {
			fmt.Printf("  line %d: %s (%s)\n",
				skipped.Line, strings.Join(skipped.Row, ","), skipped.Reason)
		}
	}

	return nil
}
