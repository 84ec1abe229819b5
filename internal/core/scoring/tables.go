package scoring

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The level descriptions, industry references and per-cluster templates are
// static configuration, not behavior. They live in an embedded YAML file so
// the scoring code stays pure and the copy can change without touching logic.

//go:embed tables.yaml
var tablesYAML []byte

type industryTable struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Average  int      `yaml:"average"`
	Top25    int      `yaml:"top25"`
	Top10    int      `yaml:"top10"`
}

type clusterTemplate struct {
	Recommendations struct {
		ShortTerm []string `yaml:"short_term"`
		MidTerm   []string `yaml:"mid_term"`
		LongTerm  []string `yaml:"long_term"`
	} `yaml:"recommendations"`
	ROI struct {
		EstimatedROIPercent int    `yaml:"estimated_roi_percent"`
		PaybackMonths       int    `yaml:"payback_months"`
		Confidence          string `yaml:"confidence"`
	} `yaml:"roi"`
	Insights struct {
		Strengths []string `yaml:"strengths"`
		Gaps      []string `yaml:"gaps"`
	} `yaml:"insights"`
}

type scoringTables struct {
	Dimensions map[string]map[string]string `yaml:"dimensions"`
	Industries []industryTable              `yaml:"industries"`
	Default    industryTable                `yaml:"default"`
	Clusters   map[string]clusterTemplate   `yaml:"clusters"`
}

var tables = mustLoadTables()

func mustLoadTables() scoringTables {
	var t scoringTables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		panic(fmt.Sprintf("scoring: parse embedded tables: %v", err))
	}
	return t
}
