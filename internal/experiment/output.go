package experiment

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodaroute/bodaroute/internal/cloudwriter"
	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// ResultsWriter persists a batch of experiment rows.
type ResultsWriter interface {
	WriteResults(results []RunStats) error
	Close() error
}

// NewResultsWriter selects the output backend from config: csv or
// parquet under output_path/output_folder, with parquet optionally
// uploaded to cloud storage instead of the local disk.
func NewResultsWriter(config *models.Config, runID string) (ResultsWriter, error) {
	dir := filepath.Join(config.OutputPath, config.OutputFolder)

	switch config.OutputFormat {
	case "csv":
		return NewCSVResultsWriter(filepath.Join(dir, fmt.Sprintf("timing_results_%s.csv", runID)))
	case "parquet":
		objectName := fmt.Sprintf("timing_results_%s.parquet", runID)
		if config.OutputDestination != "local" {
			factory, err := newCloudFactory(config)
			if err != nil {
				return nil, err
			}
			cw, err := factory.NewWriter(config.CloudStorage.BucketName, filepath.Join(config.OutputFolder, objectName))
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
			}
			return NewParquetResultsWriter(newCloudParquetFile(cw))
		}
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
		fw, err := local.NewLocalFileWriter(filepath.Join(dir, objectName))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
		return NewParquetResultsWriter(fw)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
	}
}

func newCloudFactory(config *models.Config) (cloudwriter.CloudWriterFactory, error) {
	switch config.CloudStorage.Provider {
	case "s3":
		return cloudwriter.NewS3WriterFactory(config.CloudStorage.Region)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", config.CloudStorage.Provider)
	}
}

// CSVResultsWriter writes one header row plus one row per RunStats,
// mirroring the layout downstream analysis notebooks expect.
type CSVResultsWriter struct {
	file   *os.File
	writer *csv.Writer
}

var csvHeader = []string{
	"run_id", "case_label", "algorithm", "origin", "destination", "runs", "found_route",
	"time_mean_us", "time_std_us", "time_median_us", "time_min_us", "time_max_us",
	"nodes_explored_mean", "nodes_explored_std", "cost_mean", "cost_std", "path_length",
}

func NewCSVResultsWriter(path string) (*CSVResultsWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, err
	}
	return &CSVResultsWriter{file: file, writer: w}, nil
}

func (c *CSVResultsWriter) WriteResults(results []RunStats) error {
	for _, r := range results {
		row := []string{
			r.RunID,
			r.CaseLabel,
			r.Algorithm,
			r.Origin,
			r.Destination,
			strconv.FormatInt(r.Runs, 10),
			strconv.FormatBool(r.FoundRoute),
			formatFloat(r.TimeMeanMicros),
			formatFloat(r.TimeStdMicros),
			formatFloat(r.TimeMedianMicros),
			formatFloat(r.TimeMinMicros),
			formatFloat(r.TimeMaxMicros),
			formatFloat(r.NodesExploredMean),
			formatFloat(r.NodesExploredStd),
			formatFloat(r.CostMean),
			formatFloat(r.CostStd),
			strconv.FormatInt(r.PathLength, 10),
		}
		if err := c.writer.Write(row); err != nil {
			return err
		}
	}
	c.writer.Flush()
	return c.writer.Error()
}

func (c *CSVResultsWriter) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		c.file.Close()
		return err
	}
	return c.file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// ParquetResultsWriter writes RunStats rows as parquet, either to a
// local file or through a cloud writer.
type ParquetResultsWriter struct {
	fw source.ParquetFile
	pw *writer.ParquetWriter
}

func NewParquetResultsWriter(fw source.ParquetFile) (*ParquetResultsWriter, error) {
	sc, err := ResultsSchema()
	if err != nil {
		return nil, err
	}
	pw, err := writer.NewParquetWriter(fw, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	pw.SchemaHandler = sc
	return &ParquetResultsWriter{fw: fw, pw: pw}, nil
}

func (p *ParquetResultsWriter) WriteResults(results []RunStats) error {
	for _, r := range results {
		if err := p.pw.Write(r); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}
	return nil
}

func (p *ParquetResultsWriter) Close() error {
	if err := p.pw.WriteStop(); err != nil {
		p.fw.Close()
		return err
	}
	return p.fw.Close()
}
