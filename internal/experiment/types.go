package experiment

import (
	"fmt"

	"github.com/xitongsys/parquet-go/schema"
)

// Case is one origin/destination pair evaluated by the comparator.
type Case struct {
	Label       string
	Origin      string
	Destination string
}

// RunStats is one row of experimental output: a single algorithm
// variant, on a single case, aggregated over every repetition.
type RunStats struct {
	RunID             string  `json:"runId" parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	CaseLabel         string  `json:"caseLabel" parquet:"name=caseLabel,type=BYTE_ARRAY,convertedtype=UTF8"`
	Algorithm         string  `json:"algorithm" parquet:"name=algorithm,type=BYTE_ARRAY,convertedtype=UTF8"`
	Origin            string  `json:"origin" parquet:"name=origin,type=BYTE_ARRAY,convertedtype=UTF8"`
	Destination       string  `json:"destination" parquet:"name=destination,type=BYTE_ARRAY,convertedtype=UTF8"`
	Runs              int64   `json:"runs" parquet:"name=runs,type=INT64"`
	FoundRoute        bool    `json:"foundRoute" parquet:"name=foundRoute,type=BOOLEAN"`
	TimeMeanMicros    float64 `json:"timeMeanMicros" parquet:"name=timeMeanMicros,type=DOUBLE"`
	TimeStdMicros     float64 `json:"timeStdMicros" parquet:"name=timeStdMicros,type=DOUBLE"`
	TimeMedianMicros  float64 `json:"timeMedianMicros" parquet:"name=timeMedianMicros,type=DOUBLE"`
	TimeMinMicros     float64 `json:"timeMinMicros" parquet:"name=timeMinMicros,type=DOUBLE"`
	TimeMaxMicros     float64 `json:"timeMaxMicros" parquet:"name=timeMaxMicros,type=DOUBLE"`
	NodesExploredMean float64 `json:"nodesExploredMean" parquet:"name=nodesExploredMean,type=DOUBLE"`
	NodesExploredStd  float64 `json:"nodesExploredStd" parquet:"name=nodesExploredStd,type=DOUBLE"`
	CostMean          float64 `json:"costMean" parquet:"name=costMean,type=DOUBLE"`
	CostStd           float64 `json:"costStd" parquet:"name=costStd,type=DOUBLE"`
	PathLength        int64   `json:"pathLength" parquet:"name=pathLength,type=INT64"`
}

// ResultsSchema builds the parquet schema handler for RunStats rows.
func ResultsSchema() (*schema.SchemaHandler, error) {
	sh, err := schema.NewSchemaHandlerFromStruct(new(RunStats))
	if err != nil {
		return nil, fmt.Errorf("error creating results schema: %w", err)
	}
	return sh, nil
}
